package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique @handle (used for login and identity)
	Username string `bun:",unique,notnull"`

	// Name = display name shown in chats (can be changed freely)
	Name   string `bun:",notnull"`
	Avatar string `bun:",nullzero"`

	// Presence, maintained by the realtime hub on connect/disconnect.
	IsOnline bool      `bun:",default:false"`
	LastSeen time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// DeviceKey is a user's published Curve25519 public key. The private half
// never reaches the server. One row per user in this design: publishing again
// (e.g. after a reinstall) replaces the previous key, and messages encrypted
// to the old key become undecryptable for the new install.
type DeviceKey struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id"`

	PublicKey []byte `bun:",notnull"` // 32 bytes

	PublishedAt time.Time `bun:",default:current_timestamp"`
}
