package chat

import (
	"context"

	"github.com/google/uuid"
)

type ChatUsecase interface {
	// ResolveIndividual returns the one individual chat for the unordered
	// pair, creating it on first contact. Safe under concurrent calls from
	// both participants: a creation race converges on the surviving chat.
	ResolveIndividual(ctx context.Context, userA, userB uuid.UUID) (*ChatDTO, error)

	// CreateGroup always creates a new chat; no dedup rule applies to groups.
	CreateGroup(ctx context.Context, cmd CreateGroupCommand) (*ChatDTO, error)

	ListChats(ctx context.Context, userID uuid.UUID) ([]*ChatDTO, error)
	GetChat(ctx context.Context, chatID, requesterID uuid.UUID) (*ChatDTO, error)

	// SendMessage persists an already-encrypted message and bumps the chat's
	// last-message ref. The server never sees plaintext.
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)
	ListMessages(ctx context.Context, chatID, requesterID uuid.UUID, limit int) ([]*MessageDTO, error)

	// MarkRead records a read receipt. Read implies delivered, so a delivered
	// receipt is materialized alongside if the explicit ack was lost.
	MarkRead(ctx context.Context, messageID, userID uuid.UUID) (added bool, chatID uuid.UUID, err error)

	// MarkChatDelivered acknowledges everything not yet delivered to the user
	// in one chat. Runs on every realtime chat join.
	MarkChatDelivered(ctx context.Context, chatID, userID uuid.UUID) ([]uuid.UUID, error)

	ListReceipts(ctx context.Context, messageID, requesterID uuid.UUID) ([]*ReceiptDTO, error)
}
