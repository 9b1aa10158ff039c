package realtime

import (
	"context"
	"sync"
	"testing"

	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Session_EnqueueOverflow(t *testing.T) {
	t.Run("concurrent enqueues on a full queue never panic", func(t *testing.T) {
		s := &Session{
			logger: logger.Logger{},
			userID: uuid.New(),
			send:   make(chan []byte, 1),
			done:   make(chan struct{}),
		}
		s.send <- []byte("backlog")

		// Many fan-out goroutines hit the same saturated session at once,
		// the way room broadcasts do under the hub's read lock. The first
		// overflow drops the session; the rest must fall through silently.
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.enqueue([]byte("frame"))
			}()
		}
		wg.Wait()

		select {
		case <-s.done:
		default:
			t.Fatal("overflow should have closed the session")
		}
	})

	t.Run("enqueue after close is a no-op", func(t *testing.T) {
		s := &Session{
			logger: logger.Logger{},
			userID: uuid.New(),
			send:   make(chan []byte, sendQueueSize),
			done:   make(chan struct{}),
		}
		s.close()
		s.close() // idempotent

		s.enqueue([]byte("late frame"))
		assert.Empty(t, receivedEvents(s))
	})

	t.Run("room broadcast survives a session dropped mid fan-out", func(t *testing.T) {
		ctx := context.Background()
		chatID := uuid.New()

		h, chatUC, _ := newTestHub(t)
		healthy := newTestSession(h, "alice")
		stalled := newTestSession(h, "bob")
		stalled.send = make(chan []byte, 1)
		backlog, err := Encode(EventTyping, TypingPayload{ChatID: chatID})
		require.NoError(t, err)
		stalled.send <- backlog

		chatUC.EXPECT().MarkChatDelivered(gomock.Any(), chatID, gomock.Any()).Return(nil, nil).Times(2)
		h.JoinChat(ctx, healthy, chatID)
		h.JoinChat(ctx, stalled, chatID)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				h.HandleTyping(healthy, EventTyping, chatID)
			}()
		}
		wg.Wait()

		select {
		case <-stalled.done:
		default:
			t.Fatal("stalled session should have been dropped")
		}
		assert.NotEmpty(t, receivedEvents(stalled), "queued backlog stays readable")
	})
}
