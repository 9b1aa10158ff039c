package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	TypeText     MessageType = "text"
	TypeImage    MessageType = "image"
	TypeVideo    MessageType = "video"
	TypeAudio    MessageType = "audio"
	TypeDocument MessageType = "document"
)

// Message is stored ciphertext-only. Content, nonce and the sender's public
// key are opaque to the server; only the recipient's device can open them.
// A message never changes after insert — receipts are the only mutable state
// and live in their own rows.
type Message struct {
	ID     uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ChatID uuid.UUID `bun:",notnull,type:uuid"`
	Chat   *Chat     `bun:"rel:belongs-to,join:chat_id=id"`

	SenderID uuid.UUID `bun:",notnull,type:uuid"`

	Ciphertext      []byte      `bun:",notnull"`
	Nonce           []byte      `bun:",notnull"` // 24 bytes, required for decryption, not secret
	SenderPublicKey []byte      `bun:",notnull"` // 32 bytes
	Type            MessageType `bun:",notnull,default:'text'"`

	// Attachment metadata. The blob at FileURL is secretbox ciphertext; its
	// key and nonce ride inside the encrypted message payload, never here.
	FileURL       string `bun:",nullzero"`
	FileName      string `bun:",nullzero"`
	FileSize      int64  `bun:",nullzero"`
	AudioDuration int    `bun:",nullzero"`

	ReplyToID *uuid.UUID `bun:",type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	DeletedAt time.Time `bun:",soft_delete,nullzero"`

	Receipts []*MessageReceipt `bun:"rel:has-many,join:id=message_id"`
}

type ReceiptKind string

const (
	ReceiptDelivered ReceiptKind = "delivered"
	ReceiptRead      ReceiptKind = "read"
)

// MessageReceipt is one entry of a message's deliveredTo/readBy set. The
// composite primary key gives inserts set-union semantics: the same
// acknowledgement applied twice is ON CONFLICT DO NOTHING.
type MessageReceipt struct {
	MessageID uuid.UUID   `bun:",pk,type:uuid"`
	UserID    uuid.UUID   `bun:",pk,type:uuid"`
	Kind      ReceiptKind `bun:",pk"`

	At time.Time `bun:",notnull,default:current_timestamp"`
}
