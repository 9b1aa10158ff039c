package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ChatKind string

const (
	KindIndividual ChatKind = "individual"
	KindGroup      ChatKind = "group"
)

type Chat struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Kind ChatKind `bun:",notnull"`
	Name string   `bun:",nullzero"` // groups only

	// PairKey is the normalized participant pair for individual chats, NULL
	// for groups (nullzero). The unique constraint on it is what makes
	// concurrent ResolveIndividual calls converge on a single chat.
	PairKey string `bun:",nullzero,unique"`

	AdminID       *uuid.UUID `bun:",type:uuid"` // groups only
	LastMessageID *uuid.UUID `bun:",type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	DeletedAt time.Time `bun:",soft_delete,nullzero"`
}

type ChatParticipant struct {
	ChatID uuid.UUID `bun:",pk,type:uuid"`
	Chat   *Chat     `bun:"rel:belongs-to,join:chat_id=id"`

	UserID uuid.UUID `bun:",pk,type:uuid"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// PairKey builds the canonical identity of an unordered user pair. Both
// participants compute the same key regardless of argument order.
func PairKey(a, b uuid.UUID) string {
	if a.String() > b.String() {
		a, b = b, a
	}
	return fmt.Sprintf("%s:%s", a, b)
}
