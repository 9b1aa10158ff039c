package chat

import (
	"context"
	"time"

	"github.com/fprevidi/Blabbo/internal/chat/model"

	"github.com/google/uuid"
)

type ChatRepository interface {
	// CreateChat inserts the chat and its participant rows atomically.
	// A pair-key collision surfaces as pkg/errors.ErrChatAlreadyExists so the
	// resolver can recover by re-resolving.
	CreateChat(ctx context.Context, chat *model.Chat, participants []uuid.UUID) error
	GetChatByID(ctx context.Context, id uuid.UUID) (*model.Chat, error)
	GetIndividualChatByPairKey(ctx context.Context, pairKey string) (*model.Chat, error)
	ListChatsForUser(ctx context.Context, userID uuid.UUID) ([]*model.Chat, error)
	GetParticipants(ctx context.Context, chatID uuid.UUID) ([]uuid.UUID, error)
	IsParticipant(ctx context.Context, chatID, userID uuid.UUID) (bool, error)

	InsertMessage(ctx context.Context, msg *model.Message) error
	GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
	ListMessages(ctx context.Context, chatID uuid.UUID, limit int) ([]*model.Message, error)
	SetLastMessage(ctx context.Context, chatID, messageID uuid.UUID) error

	// AddReceipt has set-union semantics: inserting an acknowledgement that is
	// already present reports added=false and changes nothing.
	AddReceipt(ctx context.Context, receipt *model.MessageReceipt) (added bool, err error)
	ListReceipts(ctx context.Context, messageID uuid.UUID) ([]*model.MessageReceipt, error)

	// MarkChatDelivered re-scans the chat for messages the user has not yet
	// acknowledged and inserts delivered receipts for all of them. This is the
	// recovery path for acknowledgements lost while disconnected; it runs on
	// every chat join. Returns the ids of newly acknowledged messages.
	MarkChatDelivered(ctx context.Context, chatID, userID uuid.UUID, at time.Time) ([]uuid.UUID, error)
}
