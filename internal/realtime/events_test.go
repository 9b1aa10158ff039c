package realtime

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(t *testing.T, eventType EventType, payload any) []byte {
	t.Helper()
	raw, err := Encode(eventType, payload)
	require.NoError(t, err)
	return raw
}

func Test_ParseEvent(t *testing.T) {
	chatID := uuid.New()

	t.Run("join-chat", func(t *testing.T) {
		eventType, payload, err := ParseEvent(frame(t, EventJoinChat, JoinChatPayload{ChatID: chatID}))
		require.NoError(t, err)
		assert.Equal(t, EventJoinChat, eventType)
		assert.Equal(t, chatID, payload.(*JoinChatPayload).ChatID)
	})

	t.Run("send-message", func(t *testing.T) {
		b64 := base64.StdEncoding.EncodeToString([]byte("ciphertext"))
		eventType, payload, err := ParseEvent(frame(t, EventSend, SendMessagePayload{
			ChatID:          chatID,
			Content:         b64,
			Nonce:           b64,
			SenderPublicKey: b64,
		}))
		require.NoError(t, err)
		assert.Equal(t, EventSend, eventType)
		assert.Equal(t, b64, payload.(*SendMessagePayload).Content)
	})

	t.Run("rejects unknown event types", func(t *testing.T) {
		_, _, err := ParseEvent([]byte(`{"type":"eval","data":{}}`))
		assert.Error(t, err)
	})

	t.Run("outbound tags are not accepted inbound", func(t *testing.T) {
		_, _, err := ParseEvent(frame(t, EventMessage, map[string]any{}))
		assert.Error(t, err)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		_, _, err := ParseEvent([]byte(`{"type":"join-chat","data":{}}`))
		assert.Error(t, err)

		_, _, err = ParseEvent(frame(t, EventSend, SendMessagePayload{ChatID: chatID}))
		assert.Error(t, err)
	})

	t.Run("rejects non-base64 content", func(t *testing.T) {
		_, _, err := ParseEvent(frame(t, EventSend, SendMessagePayload{
			ChatID:          chatID,
			Content:         "not base64!!!",
			Nonce:           base64.StdEncoding.EncodeToString([]byte("n")),
			SenderPublicKey: base64.StdEncoding.EncodeToString([]byte("k")),
		}))
		assert.Error(t, err)
	})

	t.Run("rejects unknown message type", func(t *testing.T) {
		b64 := base64.StdEncoding.EncodeToString([]byte("x"))
		_, _, err := ParseEvent(frame(t, EventSend, SendMessagePayload{
			ChatID: chatID, Content: b64, Nonce: b64, SenderPublicKey: b64,
			Type: "hologram",
		}))
		assert.Error(t, err)
	})

	t.Run("rejects malformed frames", func(t *testing.T) {
		_, _, err := ParseEvent([]byte(`{`))
		assert.Error(t, err)

		_, _, err = ParseEvent([]byte(fmt.Sprintf(`{"type":"join-chat","data":"%s"}`, chatID)))
		assert.Error(t, err)
	})
}

func Test_Encode_RoundTrip(t *testing.T) {
	raw, err := Encode(EventRead, ReadPayload{MessageID: uuid.New(), ChatID: uuid.New(), UserID: uuid.New()})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, EventRead, env.Type)
	assert.NotEmpty(t, env.Data)
}
