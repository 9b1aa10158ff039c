package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fprevidi/Blabbo/internal/chat"
	"github.com/fprevidi/Blabbo/internal/chat/mocks"
	"github.com/fprevidi/Blabbo/internal/chat/model"
	appErrors "github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIndividual(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	pairKey := model.PairKey(alice, bob)
	chatID := uuid.New()

	existing := &model.Chat{
		ID:      chatID,
		Kind:    model.KindIndividual,
		PairKey: pairKey,
	}

	t.Run("happy path - returns existing chat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.GetIndividualChatByPairKey(gomock.Any(), pairKey).Return(existing, nil)
		g.GetParticipants(gomock.Any(), chatID).Return([]uuid.UUID{alice, bob}, nil)

		dto, err := uc.ResolveIndividual(context.Background(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, chatID, dto.ID)
		assert.Equal(t, model.KindIndividual, dto.Kind)
	})

	t.Run("happy path - argument order does not matter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		// Same normalized pair key regardless of who initiates.
		g.GetIndividualChatByPairKey(gomock.Any(), pairKey).Return(existing, nil)
		g.GetParticipants(gomock.Any(), chatID).Return([]uuid.UUID{alice, bob}, nil)

		dto, err := uc.ResolveIndividual(context.Background(), bob, alice)
		require.NoError(t, err)
		assert.Equal(t, chatID, dto.ID)
	})

	t.Run("happy path - creates chat on first contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.GetIndividualChatByPairKey(gomock.Any(), pairKey).Return(nil, appErrors.ErrChatNotFound)
		g.CreateChat(gomock.Any(), gomock.Any(), []uuid.UUID{alice, bob}).
			DoAndReturn(func(_ context.Context, c *model.Chat, _ []uuid.UUID) error {
				assert.Equal(t, model.KindIndividual, c.Kind)
				assert.Equal(t, pairKey, c.PairKey)
				c.ID = chatID
				return nil
			})
		g.GetParticipants(gomock.Any(), chatID).Return([]uuid.UUID{alice, bob}, nil)

		dto, err := uc.ResolveIndividual(context.Background(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, chatID, dto.ID)
	})

	t.Run("race - lost creation converges on the surviving chat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.GetIndividualChatByPairKey(gomock.Any(), pairKey).Return(nil, appErrors.ErrChatNotFound)
		g.CreateChat(gomock.Any(), gomock.Any(), gomock.Any()).Return(appErrors.ErrChatAlreadyExists)
		g.GetIndividualChatByPairKey(gomock.Any(), pairKey).Return(existing, nil)
		g.GetParticipants(gomock.Any(), chatID).Return([]uuid.UUID{alice, bob}, nil)

		dto, err := uc.ResolveIndividual(context.Background(), alice, bob)
		require.NoError(t, err, "the race signal must never surface to the caller")
		assert.Equal(t, chatID, dto.ID)
	})

	t.Run("sad path - self chat rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		_, err := uc.ResolveIndividual(context.Background(), alice, alice)
		assert.Error(t, err)
	})
}

func TestCreateGroup(t *testing.T) {
	creator := uuid.New()
	member := uuid.New()

	t.Run("happy path - creator is always a participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.CreateChat(gomock.Any(), gomock.Any(), []uuid.UUID{member, creator}).
			DoAndReturn(func(_ context.Context, c *model.Chat, _ []uuid.UUID) error {
				assert.Equal(t, model.KindGroup, c.Kind)
				assert.Empty(t, c.PairKey, "groups carry no pair key")
				c.ID = uuid.New()
				return nil
			})
		g.GetParticipants(gomock.Any(), gomock.Any()).Return([]uuid.UUID{member, creator}, nil)

		dto, err := uc.CreateGroup(context.Background(), chat.CreateGroupCommand{
			CreatorID:    creator,
			Name:         "weekend plans",
			Participants: []uuid.UUID{member},
		})
		require.NoError(t, err)
		assert.Equal(t, "weekend plans", dto.Name)
		assert.Equal(t, &creator, dto.AdminID)
	})

	t.Run("sad path - name required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		_, err := uc.CreateGroup(context.Background(), chat.CreateGroupCommand{
			CreatorID:    creator,
			Participants: []uuid.UUID{member},
		})
		assert.Error(t, err)
	})
}

func TestSendMessage(t *testing.T) {
	chatID := uuid.New()
	sender := uuid.New()

	validCmd := chat.SendMessageCommand{
		ChatID:          chatID,
		SenderID:        sender,
		Ciphertext:      []byte("opaque ciphertext"),
		Nonce:           make([]byte, 24),
		SenderPublicKey: make([]byte, 32),
	}

	t.Run("happy path - persists and bumps last message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		msgID := uuid.New()
		g := mockRepo.EXPECT()
		g.IsParticipant(gomock.Any(), chatID, sender).Return(true, nil)
		g.InsertMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *model.Message) error {
				assert.Equal(t, model.TypeText, m.Type, "empty type defaults to text")
				m.ID = msgID
				m.CreatedAt = time.Now()
				return nil
			})
		g.SetLastMessage(gomock.Any(), chatID, msgID).Return(nil)

		dto, err := uc.SendMessage(context.Background(), validCmd)
		require.NoError(t, err)
		assert.Equal(t, msgID, dto.ID)
		assert.False(t, dto.IsDelivered)
		assert.False(t, dto.IsRead)
	})

	t.Run("sad path - non-participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		mockRepo.EXPECT().IsParticipant(gomock.Any(), chatID, sender).Return(false, nil)

		_, err := uc.SendMessage(context.Background(), validCmd)
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})

	t.Run("sad path - malformed nonce", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		cmd := validCmd
		cmd.Nonce = []byte("short")
		_, err := uc.SendMessage(context.Background(), cmd)
		assert.Error(t, err)
	})
}

func TestMarkRead(t *testing.T) {
	chatID := uuid.New()
	sender := uuid.New()
	reader := uuid.New()
	msgID := uuid.New()

	storedMsg := &model.Message{ID: msgID, ChatID: chatID, SenderID: sender}

	t.Run("happy path - read materializes delivered too", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.GetMessageByID(gomock.Any(), msgID).Return(storedMsg, nil)
		g.IsParticipant(gomock.Any(), chatID, reader).Return(true, nil)
		g.AddReceipt(gomock.Any(), receiptMatcher{kind: model.ReceiptDelivered, userID: reader}).Return(true, nil)
		g.AddReceipt(gomock.Any(), receiptMatcher{kind: model.ReceiptRead, userID: reader}).Return(true, nil)

		added, gotChatID, err := uc.MarkRead(context.Background(), msgID, reader)
		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, chatID, gotChatID)
	})

	t.Run("duplicate read is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.GetMessageByID(gomock.Any(), msgID).Return(storedMsg, nil)
		g.IsParticipant(gomock.Any(), chatID, reader).Return(true, nil)
		g.AddReceipt(gomock.Any(), receiptMatcher{kind: model.ReceiptDelivered, userID: reader}).Return(false, nil)
		g.AddReceipt(gomock.Any(), receiptMatcher{kind: model.ReceiptRead, userID: reader}).Return(false, nil)

		added, _, err := uc.MarkRead(context.Background(), msgID, reader)
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("own message carries no receipts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewChatUsecase(mockRepo, logger.Logger{})

		g := mockRepo.EXPECT()
		g.GetMessageByID(gomock.Any(), msgID).Return(storedMsg, nil)
		g.IsParticipant(gomock.Any(), chatID, sender).Return(true, nil)

		added, _, err := uc.MarkRead(context.Background(), msgID, sender)
		require.NoError(t, err)
		assert.False(t, added)
	})
}

func TestMarkChatDelivered(t *testing.T) {
	chatID := uuid.New()
	joiner := uuid.New()
	acked := []uuid.UUID{uuid.New(), uuid.New()}

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockChatRepository(ctrl)
	uc := NewChatUsecase(mockRepo, logger.Logger{})

	g := mockRepo.EXPECT()
	g.IsParticipant(gomock.Any(), chatID, joiner).Return(true, nil)
	g.MarkChatDelivered(gomock.Any(), chatID, joiner, gomock.Any()).Return(acked, nil)

	ids, err := uc.MarkChatDelivered(context.Background(), chatID, joiner)
	require.NoError(t, err)
	assert.Equal(t, acked, ids)
}

// receiptMatcher matches AddReceipt arguments on kind and user, ignoring the
// timestamp the usecase stamps.
type receiptMatcher struct {
	kind   model.ReceiptKind
	userID uuid.UUID
}

func (m receiptMatcher) Matches(x interface{}) bool {
	r, ok := x.(*model.MessageReceipt)
	return ok && r.Kind == m.kind && r.UserID == m.userID
}

func (m receiptMatcher) String() string {
	return "receipt{" + string(m.kind) + "}"
}
