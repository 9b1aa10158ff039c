package usecase

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/fprevidi/Blabbo/internal/chat"
	"github.com/fprevidi/Blabbo/internal/chat/model"
	"github.com/fprevidi/Blabbo/internal/crypto"
	"github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/google/uuid"
)

type ChatUsecase struct {
	repo   chat.ChatRepository
	logger logger.Logger
}

func NewChatUsecase(repo chat.ChatRepository, logger logger.Logger) *ChatUsecase {
	return &ChatUsecase{repo: repo, logger: logger}
}

// ResolveIndividual finds or creates the single individual chat for the
// unordered pair {userA, userB}. Two devices starting the same conversation
// at once race on the pair-key unique index; the loser re-resolves and both
// converge on the surviving chat. ErrChatAlreadyExists never escapes here.
func (uc *ChatUsecase) ResolveIndividual(ctx context.Context, userA, userB uuid.UUID) (*chat.ChatDTO, error) {
	if userA == uuid.Nil || userB == uuid.Nil {
		return nil, errors.InvalidArg("both participants are required")
	}
	if userA == userB {
		return nil, errors.InvalidArg("cannot open a chat with yourself")
	}

	pairKey := model.PairKey(userA, userB)

	existing, err := uc.repo.GetIndividualChatByPairKey(ctx, pairKey)
	if err == nil {
		return uc.toChatDTO(ctx, existing)
	}
	if !errors.Is(err, errors.ErrChatNotFound) {
		uc.logger.Error("failed to look up individual chat", "pair", pairKey, "err", err)
		return nil, errors.ErrResolveFailed(err)
	}

	created := &model.Chat{
		Kind:    model.KindIndividual,
		PairKey: pairKey,
	}
	err = uc.repo.CreateChat(ctx, created, []uuid.UUID{userA, userB})
	if err == nil {
		return uc.toChatDTO(ctx, created)
	}
	if !errors.Is(err, errors.ErrChatAlreadyExists) {
		uc.logger.Error("failed to create individual chat", "pair", pairKey, "err", err)
		return nil, errors.ErrResolveFailed(err)
	}

	// Lost the race: the other participant's create landed first.
	uc.logger.Debug("individual chat creation raced, re-resolving", "pair", pairKey)
	winner, err := uc.repo.GetIndividualChatByPairKey(ctx, pairKey)
	if err != nil {
		return nil, errors.ErrResolveFailed(err)
	}
	return uc.toChatDTO(ctx, winner)
}

func (uc *ChatUsecase) CreateGroup(ctx context.Context, cmd chat.CreateGroupCommand) (*chat.ChatDTO, error) {
	if cmd.Name == "" {
		return nil, errors.InvalidArg("group name is required")
	}

	participants := cmd.Participants
	if !containsUser(participants, cmd.CreatorID) {
		participants = append(participants, cmd.CreatorID)
	}
	if len(participants) < 2 {
		return nil, errors.ErrEmptyParticipants
	}

	admin := cmd.CreatorID
	created := &model.Chat{
		Kind:    model.KindGroup,
		Name:    cmd.Name,
		AdminID: &admin,
	}
	if err := uc.repo.CreateChat(ctx, created, participants); err != nil {
		uc.logger.Error("failed to create group chat", "name", cmd.Name, "err", err)
		return nil, errors.ErrResolveFailed(err)
	}
	return uc.toChatDTO(ctx, created)
}

func (uc *ChatUsecase) ListChats(ctx context.Context, userID uuid.UUID) ([]*chat.ChatDTO, error) {
	chats, err := uc.repo.ListChatsForUser(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to list chats", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to list chats")
	}
	out := make([]*chat.ChatDTO, 0, len(chats))
	for _, c := range chats {
		dto, err := uc.toChatDTO(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	return out, nil
}

func (uc *ChatUsecase) GetChat(ctx context.Context, chatID, requesterID uuid.UUID) (*chat.ChatDTO, error) {
	if err := uc.requireParticipant(ctx, chatID, requesterID); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return uc.toChatDTO(ctx, c)
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (*chat.MessageDTO, error) {
	if len(cmd.Ciphertext) == 0 {
		return nil, errors.InvalidArg("message content is required")
	}
	if len(cmd.Nonce) != crypto.NonceSize {
		return nil, errors.InvalidArg("nonce must be 24 bytes")
	}
	if len(cmd.SenderPublicKey) != crypto.KeySize {
		return nil, errors.InvalidArg("sender public key must be 32 bytes")
	}
	if err := uc.requireParticipant(ctx, cmd.ChatID, cmd.SenderID); err != nil {
		return nil, err
	}

	msgType := cmd.Type
	if msgType == "" {
		msgType = model.TypeText
	}

	msg := &model.Message{
		ChatID:          cmd.ChatID,
		SenderID:        cmd.SenderID,
		Ciphertext:      cmd.Ciphertext,
		Nonce:           cmd.Nonce,
		SenderPublicKey: cmd.SenderPublicKey,
		Type:            msgType,
		FileURL:         cmd.FileURL,
		FileName:        cmd.FileName,
		FileSize:        cmd.FileSize,
		AudioDuration:   cmd.AudioDuration,
		ReplyToID:       cmd.ReplyToID,
	}
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to insert message", "chat_id", cmd.ChatID, "err", err)
		return nil, errors.ErrSendFailed(err)
	}
	if err := uc.repo.SetLastMessage(ctx, cmd.ChatID, msg.ID); err != nil {
		// The message is already persisted; a stale last-message ref only
		// affects chat list ordering, so log and move on.
		uc.logger.Warn("failed to update last message ref", "chat_id", cmd.ChatID, "err", err)
	}

	return toMessageDTO(msg, cmd.SenderID), nil
}

func (uc *ChatUsecase) ListMessages(ctx context.Context, chatID, requesterID uuid.UUID, limit int) ([]*chat.MessageDTO, error) {
	if err := uc.requireParticipant(ctx, chatID, requesterID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	msgs, err := uc.repo.ListMessages(ctx, chatID, limit)
	if err != nil {
		uc.logger.Error("failed to list messages", "chat_id", chatID, "err", err)
		return nil, errors.Internal("failed to list messages")
	}

	// Repository returns newest first; the client renders oldest first.
	out := make([]*chat.MessageDTO, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		out = append(out, toMessageDTO(msgs[i], requesterID))
	}
	return out, nil
}

func (uc *ChatUsecase) MarkRead(ctx context.Context, messageID, userID uuid.UUID) (bool, uuid.UUID, error) {
	msg, err := uc.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		return false, uuid.Nil, err
	}
	if err := uc.requireParticipant(ctx, msg.ChatID, userID); err != nil {
		return false, uuid.Nil, err
	}
	if msg.SenderID == userID {
		// Own messages carry no receipts.
		return false, msg.ChatID, nil
	}

	now := time.Now()
	// Read implies delivered: materialize the delivered entry first so the
	// sets stay consistent even when the explicit delivered ack was lost.
	if _, err := uc.repo.AddReceipt(ctx, &model.MessageReceipt{
		MessageID: messageID, UserID: userID, Kind: model.ReceiptDelivered, At: now,
	}); err != nil {
		uc.logger.Error("failed to record delivered receipt", "message_id", messageID, "err", err)
		return false, uuid.Nil, errors.Internal("failed to record receipt")
	}

	added, err := uc.repo.AddReceipt(ctx, &model.MessageReceipt{
		MessageID: messageID, UserID: userID, Kind: model.ReceiptRead, At: now,
	})
	if err != nil {
		uc.logger.Error("failed to record read receipt", "message_id", messageID, "err", err)
		return false, uuid.Nil, errors.Internal("failed to record receipt")
	}
	return added, msg.ChatID, nil
}

func (uc *ChatUsecase) MarkChatDelivered(ctx context.Context, chatID, userID uuid.UUID) ([]uuid.UUID, error) {
	if err := uc.requireParticipant(ctx, chatID, userID); err != nil {
		return nil, err
	}
	ids, err := uc.repo.MarkChatDelivered(ctx, chatID, userID, time.Now())
	if err != nil {
		uc.logger.Error("failed to mark chat delivered", "chat_id", chatID, "user_id", userID, "err", err)
		return nil, errors.Internal("failed to record delivery")
	}
	return ids, nil
}

func (uc *ChatUsecase) ListReceipts(ctx context.Context, messageID, requesterID uuid.UUID) ([]*chat.ReceiptDTO, error) {
	msg, err := uc.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireParticipant(ctx, msg.ChatID, requesterID); err != nil {
		return nil, err
	}

	receipts, err := uc.repo.ListReceipts(ctx, messageID)
	if err != nil {
		return nil, errors.Internal("failed to list receipts")
	}
	out := make([]*chat.ReceiptDTO, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, &chat.ReceiptDTO{UserID: r.UserID, Kind: r.Kind, At: r.At})
	}
	return out, nil
}

func (uc *ChatUsecase) requireParticipant(ctx context.Context, chatID, userID uuid.UUID) error {
	ok, err := uc.repo.IsParticipant(ctx, chatID, userID)
	if err != nil {
		uc.logger.Error("failed to check participant", "chat_id", chatID, "err", err)
		return errors.Internal("failed to check chat membership")
	}
	if !ok {
		return errors.ErrNotParticipant
	}
	return nil
}

func (uc *ChatUsecase) toChatDTO(ctx context.Context, c *model.Chat) (*chat.ChatDTO, error) {
	participants, err := uc.repo.GetParticipants(ctx, c.ID)
	if err != nil {
		uc.logger.Error("failed to load participants", "chat_id", c.ID, "err", err)
		return nil, errors.Internal("failed to load participants")
	}
	return &chat.ChatDTO{
		ID:            c.ID,
		Kind:          c.Kind,
		Name:          c.Name,
		Participants:  participants,
		AdminID:       c.AdminID,
		LastMessageID: c.LastMessageID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}

func toMessageDTO(m *model.Message, viewerID uuid.UUID) *chat.MessageDTO {
	dto := &chat.MessageDTO{
		ID:              m.ID,
		ChatID:          m.ChatID,
		SenderID:        m.SenderID,
		Content:         base64.StdEncoding.EncodeToString(m.Ciphertext),
		Nonce:           base64.StdEncoding.EncodeToString(m.Nonce),
		SenderPublicKey: base64.StdEncoding.EncodeToString(m.SenderPublicKey),
		Type:            m.Type,
		FileURL:         m.FileURL,
		FileName:        m.FileName,
		FileSize:        m.FileSize,
		AudioDuration:   m.AudioDuration,
		ReplyToID:       m.ReplyToID,
		Timestamp:       m.CreatedAt,
	}
	for _, r := range m.Receipts {
		if r.UserID != viewerID {
			continue
		}
		switch r.Kind {
		case model.ReceiptDelivered:
			dto.IsDelivered = true
		case model.ReceiptRead:
			dto.IsRead = true
			dto.IsDelivered = true
		}
	}
	return dto
}

func containsUser(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
