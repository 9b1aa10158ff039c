package chat

import (
	"time"

	"github.com/fprevidi/Blabbo/internal/chat/model"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase, DTOs travel back out.

type CreateGroupCommand struct {
	CreatorID    uuid.UUID
	Name         string
	Participants []uuid.UUID
}

type SendMessageCommand struct {
	ChatID   uuid.UUID
	SenderID uuid.UUID

	// Opaque cipher triple produced by the sending device.
	Ciphertext      []byte
	Nonce           []byte
	SenderPublicKey []byte

	Type model.MessageType

	FileURL       string
	FileName      string
	FileSize      int64
	AudioDuration int
	ReplyToID     *uuid.UUID
}

type ChatDTO struct {
	ID            uuid.UUID         `json:"id"`
	Kind          model.ChatKind    `json:"kind"`
	Name          string            `json:"name,omitempty"`
	Participants  []uuid.UUID       `json:"participants"`
	AdminID       *uuid.UUID        `json:"groupAdmin,omitempty"`
	LastMessageID *uuid.UUID        `json:"lastMessage,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// MessageDTO carries the wire shape of a stored message plus the receipt
// flags as seen by the requesting user.
type MessageDTO struct {
	ID              uuid.UUID         `json:"id"`
	ChatID          uuid.UUID         `json:"chatId"`
	SenderID        uuid.UUID         `json:"senderId"`
	Content         string            `json:"content"` // base64 ciphertext
	Nonce           string            `json:"nonce"`   // base64
	SenderPublicKey string            `json:"senderPublicKey"`
	Type            model.MessageType `json:"type"`
	FileURL         string            `json:"fileUrl,omitempty"`
	FileName        string            `json:"fileName,omitempty"`
	FileSize        int64             `json:"fileSize,omitempty"`
	AudioDuration   int               `json:"audioDuration,omitempty"`
	ReplyToID       *uuid.UUID        `json:"replyTo,omitempty"`
	Timestamp       time.Time         `json:"timestamp"`
	IsDelivered     bool              `json:"isDelivered"`
	IsRead          bool              `json:"isRead"`
}

type ReceiptDTO struct {
	UserID uuid.UUID         `json:"userId"`
	Kind   model.ReceiptKind `json:"kind"`
	At     time.Time         `json:"at"`
}
