package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/fprevidi/Blabbo/internal/chat/model"
	appErrors "github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

// isUniqueViolation reports whether err is a Postgres unique_violation,
// which is how a lost pair-key race announces itself.
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}

func (r *ChatRepository) CreateChat(ctx context.Context, chat *model.Chat, participants []uuid.UUID) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(chat).Returning("*").Exec(ctx); err != nil {
			return err
		}

		rows := make([]model.ChatParticipant, 0, len(participants))
		for _, userID := range participants {
			rows = append(rows, model.ChatParticipant{ChatID: chat.ID, UserID: userID})
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return appErrors.ErrChatAlreadyExists
		}
		return errors.Wrap(err, "chatRepo.CreateChat.Tx: ")
	}
	return nil
}

func (r *ChatRepository) GetChatByID(ctx context.Context, id uuid.UUID) (*model.Chat, error) {
	chat := new(model.Chat)
	err := r.db.NewSelect().Model(chat).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrChatNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetChatByID.Scan: ")
	}
	return chat, nil
}

func (r *ChatRepository) GetIndividualChatByPairKey(ctx context.Context, pairKey string) (*model.Chat, error) {
	chat := new(model.Chat)
	err := r.db.NewSelect().
		Model(chat).
		Where("kind = ?", model.KindIndividual).
		Where("pair_key = ?", pairKey).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrChatNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetIndividualChatByPairKey.Scan: ")
	}
	return chat, nil
}

func (r *ChatRepository) ListChatsForUser(ctx context.Context, userID uuid.UUID) ([]*model.Chat, error) {
	var chats []*model.Chat
	err := r.db.NewSelect().
		Model(&chats).
		Join("JOIN chat_participants AS cp ON cp.chat_id = chat.id").
		Where("cp.user_id = ?", userID).
		Order("chat.updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListChatsForUser.Scan: ")
	}
	return chats, nil
}

func (r *ChatRepository) GetParticipants(ctx context.Context, chatID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewSelect().
		Model((*model.ChatParticipant)(nil)).
		Column("user_id").
		Where("chat_id = ?", chatID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.GetParticipants.Scan: ")
	}
	return ids, nil
}

func (r *ChatRepository) IsParticipant(ctx context.Context, chatID, userID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*model.ChatParticipant)(nil)).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "chatRepo.IsParticipant.Exists: ")
	}
	return exists, nil
}

func (r *ChatRepository) InsertMessage(ctx context.Context, msg *model.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.InsertMessage.Exec: ")
	}
	return nil
}

func (r *ChatRepository) GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).Where("message.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetMessageByID.Scan: ")
	}
	return msg, nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, chatID uuid.UUID, limit int) ([]*model.Message, error) {
	var msgs []*model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Relation("Receipts").
		Where("message.chat_id = ?", chatID).
		Order("message.created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMessages.Scan: ")
	}
	return msgs, nil
}

func (r *ChatRepository) SetLastMessage(ctx context.Context, chatID, messageID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*model.Chat)(nil)).
		Set("last_message_id = ?", messageID).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", chatID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.SetLastMessage.Exec: ")
	}
	return nil
}

func (r *ChatRepository) AddReceipt(ctx context.Context, receipt *model.MessageReceipt) (bool, error) {
	res, err := r.db.NewInsert().
		Model(receipt).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "chatRepo.AddReceipt.Exec: ")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "chatRepo.AddReceipt.RowsAffected: ")
	}
	return n > 0, nil
}

func (r *ChatRepository) ListReceipts(ctx context.Context, messageID uuid.UUID) ([]*model.MessageReceipt, error) {
	var receipts []*model.MessageReceipt
	err := r.db.NewSelect().
		Model(&receipts).
		Where("message_id = ?", messageID).
		Order("at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListReceipts.Scan: ")
	}
	return receipts, nil
}

// MarkChatDelivered inserts delivered receipts for every message in the chat
// the user has not yet acknowledged. One statement, so two concurrent joins
// cannot double-insert; ON CONFLICT covers the rest.
func (r *ChatRepository) MarkChatDelivered(ctx context.Context, chatID, userID uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewRaw(`
		INSERT INTO message_receipts (message_id, user_id, kind, at)
		SELECT m.id, ?, ?, ?
		FROM messages AS m
		WHERE m.chat_id = ? AND m.sender_id <> ? AND m.deleted_at IS NULL
		ON CONFLICT DO NOTHING
		RETURNING message_id`,
		userID, model.ReceiptDelivered, at, chatID, userID,
	).Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.MarkChatDelivered.Scan: ")
	}
	return ids, nil
}
