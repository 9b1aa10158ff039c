package realtime

import (
	"encoding/json"
	"time"

	"github.com/fprevidi/Blabbo/internal/chat"
	"github.com/fprevidi/Blabbo/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventType tags every frame on the wire. Unknown tags are rejected at the
// boundary instead of being passed through duck-typed.
type EventType string

const (
	// client -> server
	EventJoinChat   EventType = "join-chat"
	EventLeaveChat  EventType = "leave-chat"
	EventSend       EventType = "send-message"
	EventMarkRead   EventType = "mark-read"
	EventTyping     EventType = "typing"
	EventStopTyping EventType = "stop-typing"

	// server -> client
	EventMessage     EventType = "message"
	EventDelivered   EventType = "message-delivered"
	EventRead        EventType = "message-read"
	EventUserOnline  EventType = "user-online"
	EventUserOffline EventType = "user-offline"
	EventError       EventType = "error"
)

type Envelope struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Inbound payloads
type JoinChatPayload struct {
	ChatID uuid.UUID `json:"chatId" validate:"required"`
}

type SendMessagePayload struct {
	ChatID          uuid.UUID  `json:"chatId" validate:"required"`
	Content         string     `json:"content" validate:"required,base64"`
	Nonce           string     `json:"nonce" validate:"required,base64"`
	SenderPublicKey string     `json:"senderPublicKey" validate:"required,base64"`
	Type            string     `json:"messageType" validate:"omitempty,oneof=text image video audio document"`
	FileURL         string     `json:"fileUrl,omitempty"`
	FileName        string     `json:"fileName,omitempty"`
	FileSize        int64      `json:"fileSize,omitempty"`
	AudioDuration   int        `json:"audioDuration,omitempty"`
	ReplyToID       *uuid.UUID `json:"replyTo,omitempty"`
}

type MarkReadPayload struct {
	MessageID uuid.UUID `json:"messageId" validate:"required"`
}

type TypingPayload struct {
	ChatID   uuid.UUID `json:"chatId" validate:"required"`
	UserID   uuid.UUID `json:"userId,omitempty"`
	Username string    `json:"username,omitempty"`
}

// Outbound payloads
type DeliveredPayload struct {
	ChatID     uuid.UUID   `json:"chatId"`
	MessageIDs []uuid.UUID `json:"messageIds"`
	UserID     uuid.UUID   `json:"userId"`
}

type ReadPayload struct {
	MessageID uuid.UUID `json:"messageId"`
	ChatID    uuid.UUID `json:"chatId"`
	UserID    uuid.UUID `json:"userId"`
}

type PresencePayload struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username,omitempty"`
	LastSeen time.Time `json:"lastSeen,omitempty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

var validate = validator.New()

// ParseEvent decodes one inbound frame into its typed payload and validates
// it. Outbound-only tags count as unknown here.
func ParseEvent(raw []byte) (EventType, any, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", nil, errors.InvalidArg("malformed event frame")
	}

	var payload any
	switch env.Type {
	case EventJoinChat, EventLeaveChat:
		payload = new(JoinChatPayload)
	case EventSend:
		payload = new(SendMessagePayload)
	case EventMarkRead:
		payload = new(MarkReadPayload)
	case EventTyping, EventStopTyping:
		payload = new(TypingPayload)
	default:
		return "", nil, errors.InvalidArg("unknown event type: " + string(env.Type))
	}

	if err := json.Unmarshal(env.Data, payload); err != nil {
		return "", nil, errors.InvalidArg("malformed event payload")
	}
	if err := validate.Struct(payload); err != nil {
		return "", nil, errors.InvalidArg("invalid event payload: " + err.Error())
	}
	return env.Type, payload, nil
}

// Encode wraps a payload in an envelope, ready to write to the socket.
func Encode(eventType EventType, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: eventType, Data: data})
}

func encodeMessage(dto *chat.MessageDTO) ([]byte, error) {
	return Encode(EventMessage, dto)
}
