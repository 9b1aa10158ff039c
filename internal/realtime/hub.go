package realtime

import (
	"context"
	"encoding/base64"
	"sync"
	"time"

	"github.com/fprevidi/Blabbo/internal/chat"
	"github.com/fprevidi/Blabbo/internal/chat/model"
	"github.com/fprevidi/Blabbo/internal/user"
	"github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/google/uuid"
)

// Hub tracks live sessions and chat rooms and fans events out. All delivery
// bookkeeping goes through the chat usecase so a receipt recorded over the
// socket is the same receipt the REST API reports.
type Hub struct {
	chatUC chat.ChatUsecase
	userUC user.UserUsecase
	logger logger.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]map[*Session]struct{} // by user
	rooms    map[uuid.UUID]map[*Session]struct{} // by chat
}

func NewHub(chatUC chat.ChatUsecase, userUC user.UserUsecase, logger logger.Logger) *Hub {
	return &Hub{
		chatUC:   chatUC,
		userUC:   userUC,
		logger:   logger,
		sessions: make(map[uuid.UUID]map[*Session]struct{}),
		rooms:    make(map[uuid.UUID]map[*Session]struct{}),
	}
}

// Register adds a session, marks the user online and broadcasts presence.
func (h *Hub) Register(ctx context.Context, s *Session) {
	h.mu.Lock()
	first := len(h.sessions[s.userID]) == 0
	if h.sessions[s.userID] == nil {
		h.sessions[s.userID] = make(map[*Session]struct{})
	}
	h.sessions[s.userID][s] = struct{}{}
	h.mu.Unlock()

	if !first {
		return
	}
	if err := h.userUC.SetPresence(ctx, s.userID, true, time.Now()); err != nil {
		h.logger.Warn("failed to set online presence", "user_id", s.userID, "err", err)
	}
	h.broadcast(EventUserOnline, PresencePayload{UserID: s.userID, Username: s.username}, s)
}

// Unregister drops a session; when it was the user's last one the user goes
// offline and lastSeen is stamped.
func (h *Hub) Unregister(ctx context.Context, s *Session) {
	h.mu.Lock()
	delete(h.sessions[s.userID], s)
	last := len(h.sessions[s.userID]) == 0
	if last {
		delete(h.sessions, s.userID)
	}
	for chatID, members := range h.rooms {
		delete(members, s)
		if len(members) == 0 {
			delete(h.rooms, chatID)
		}
	}
	h.mu.Unlock()

	if !last {
		return
	}
	now := time.Now()
	if err := h.userUC.SetPresence(ctx, s.userID, false, now); err != nil {
		h.logger.Warn("failed to set offline presence", "user_id", s.userID, "err", err)
	}
	h.broadcast(EventUserOffline, PresencePayload{UserID: s.userID, Username: s.username, LastSeen: now}, s)
}

// JoinChat puts the session in the chat room and re-scans the backlog: every
// message the user had not yet acknowledged gets a delivered receipt, and the
// senders in the room hear about it. Reconnecting re-runs the scan and finds
// nothing new.
func (h *Hub) JoinChat(ctx context.Context, s *Session, chatID uuid.UUID) {
	acked, err := h.chatUC.MarkChatDelivered(ctx, chatID, s.userID)
	if err != nil {
		s.sendEvent(EventError, ErrorPayload{Message: "failed to join chat"})
		return
	}

	h.mu.Lock()
	if h.rooms[chatID] == nil {
		h.rooms[chatID] = make(map[*Session]struct{})
	}
	h.rooms[chatID][s] = struct{}{}
	h.mu.Unlock()

	if len(acked) > 0 {
		h.broadcastToRoom(chatID, EventDelivered, DeliveredPayload{
			ChatID:     chatID,
			MessageIDs: acked,
			UserID:     s.userID,
		}, nil)
	}
}

func (h *Hub) LeaveChat(s *Session, chatID uuid.UUID) {
	h.mu.Lock()
	if members := h.rooms[chatID]; members != nil {
		delete(members, s)
		if len(members) == 0 {
			delete(h.rooms, chatID)
		}
	}
	h.mu.Unlock()
}

// HandleSend persists the message and fans it out to the room, sender
// included (the sender renders its own message from the echo).
func (h *Hub) HandleSend(ctx context.Context, s *Session, p *SendMessagePayload) {
	ciphertext, err := base64.StdEncoding.DecodeString(p.Content)
	if err != nil {
		s.sendEvent(EventError, ErrorPayload{Message: "content is not valid base64"})
		return
	}
	nonce, err := base64.StdEncoding.DecodeString(p.Nonce)
	if err != nil {
		s.sendEvent(EventError, ErrorPayload{Message: "nonce is not valid base64"})
		return
	}
	senderKey, err := base64.StdEncoding.DecodeString(p.SenderPublicKey)
	if err != nil {
		s.sendEvent(EventError, ErrorPayload{Message: "sender public key is not valid base64"})
		return
	}

	dto, err := h.chatUC.SendMessage(ctx, chat.SendMessageCommand{
		ChatID:          p.ChatID,
		SenderID:        s.userID,
		Ciphertext:      ciphertext,
		Nonce:           nonce,
		SenderPublicKey: senderKey,
		Type:            model.MessageType(p.Type),
		FileURL:         p.FileURL,
		FileName:        p.FileName,
		FileSize:        p.FileSize,
		AudioDuration:   p.AudioDuration,
		ReplyToID:       p.ReplyToID,
	})
	if err != nil {
		h.logger.Error("failed to send message over socket", "chat_id", p.ChatID, "err", err)
		s.sendEvent(EventError, ErrorPayload{Message: string(errors.CodeOf(err))})
		return
	}

	frame, err := encodeMessage(dto)
	if err != nil {
		h.logger.Error("failed to encode message event", "message_id", dto.ID, "err", err)
		return
	}
	h.sendToRoom(p.ChatID, frame, nil)
}

// HandleMarkRead records the read receipt and, only when the set actually
// grew, tells the rest of the room.
func (h *Hub) HandleMarkRead(ctx context.Context, s *Session, messageID uuid.UUID) {
	added, chatID, err := h.chatUC.MarkRead(ctx, messageID, s.userID)
	if err != nil {
		s.sendEvent(EventError, ErrorPayload{Message: "failed to mark message as read"})
		return
	}
	if !added {
		return
	}
	h.broadcastToRoom(chatID, EventRead, ReadPayload{
		MessageID: messageID,
		ChatID:    chatID,
		UserID:    s.userID,
	}, s)
}

// HandleTyping relays typing state to everyone else in the room. Nothing is
// persisted.
func (h *Hub) HandleTyping(s *Session, eventType EventType, chatID uuid.UUID) {
	h.broadcastToRoom(chatID, eventType, TypingPayload{
		ChatID:   chatID,
		UserID:   s.userID,
		Username: s.username,
	}, s)
}

func (h *Hub) broadcastToRoom(chatID uuid.UUID, eventType EventType, payload any, except *Session) {
	frame, err := Encode(eventType, payload)
	if err != nil {
		h.logger.Error("failed to encode event", "event", string(eventType), "err", err)
		return
	}
	h.sendToRoom(chatID, frame, except)
}

func (h *Hub) sendToRoom(chatID uuid.UUID, frame []byte, except *Session) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.rooms[chatID] {
		if s == except {
			continue
		}
		s.enqueue(frame)
	}
}

// broadcast sends to every connected session, the presence firehose.
func (h *Hub) broadcast(eventType EventType, payload any, except *Session) {
	frame, err := Encode(eventType, payload)
	if err != nil {
		h.logger.Error("failed to encode event", "event", string(eventType), "err", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sessions := range h.sessions {
		for s := range sessions {
			if s == except {
				continue
			}
			s.enqueue(frame)
		}
	}
}
