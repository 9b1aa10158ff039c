package delivery

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerTransitions(t *testing.T) {
	msgID := uuid.New()
	bob := uuid.New()
	now := time.Now()

	t.Run("happy path - sent to delivered to read", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(msgID, bob)
		assert.Equal(t, StatusSent, tr.Status(msgID, bob))

		assert.True(t, tr.ApplyDelivered(msgID, bob, now))
		assert.Equal(t, StatusDelivered, tr.Status(msgID, bob))

		assert.True(t, tr.ApplyRead(msgID, bob, now))
		assert.Equal(t, StatusRead, tr.Status(msgID, bob))
	})

	t.Run("read implies delivered even without a delivered ack", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(msgID, bob)

		require.True(t, tr.ApplyRead(msgID, bob, now))
		assert.Equal(t, StatusRead, tr.Status(msgID, bob))
		assert.Len(t, tr.DeliveredTo(msgID), 1, "read receipt is evidence of delivery")
	})

	t.Run("states never move backwards", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(msgID, bob)

		require.True(t, tr.ApplyRead(msgID, bob, now))
		assert.False(t, tr.ApplyDelivered(msgID, bob, now.Add(time.Second)))
		assert.Equal(t, StatusRead, tr.Status(msgID, bob))
	})

	t.Run("duplicate acknowledgements are idempotent", func(t *testing.T) {
		tr := NewTracker()
		tr.Track(msgID, bob)

		assert.True(t, tr.ApplyDelivered(msgID, bob, now))
		assert.False(t, tr.ApplyDelivered(msgID, bob, now.Add(time.Minute)))
		assert.Len(t, tr.DeliveredTo(msgID), 1)

		assert.True(t, tr.ApplyRead(msgID, bob, now))
		assert.False(t, tr.ApplyRead(msgID, bob, now.Add(time.Minute)))
		assert.Len(t, tr.ReadBy(msgID), 1)
	})

	t.Run("ack may arrive before the message is tracked", func(t *testing.T) {
		tr := NewTracker()

		// The channel delivers out of order relative to the REST fetch.
		assert.True(t, tr.ApplyDelivered(msgID, bob, now))
		tr.Track(msgID, bob)

		assert.Equal(t, StatusDelivered, tr.Status(msgID, bob))
	})
}

func TestTrackerAggregateStatus(t *testing.T) {
	msgID := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	now := time.Now()

	tr := NewTracker()
	tr.Track(msgID, bob, carol)
	assert.Equal(t, StatusSent, tr.AggregateStatus(msgID))

	tr.ApplyDelivered(msgID, bob, now)
	assert.Equal(t, StatusSent, tr.AggregateStatus(msgID), "one recipient still at sent")

	tr.ApplyDelivered(msgID, carol, now)
	assert.Equal(t, StatusDelivered, tr.AggregateStatus(msgID))

	tr.ApplyRead(msgID, bob, now)
	tr.ApplyRead(msgID, carol, now)
	assert.Equal(t, StatusRead, tr.AggregateStatus(msgID))
}

func TestTrackerUntrackedMessage(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, StatusSent, tr.Status(uuid.New(), uuid.New()))
	assert.Equal(t, StatusSent, tr.AggregateStatus(uuid.New()))
	assert.Nil(t, tr.DeliveredTo(uuid.New()))
}

func TestTrackerConcurrentAcks(t *testing.T) {
	msgID := uuid.New()
	bob := uuid.New()
	now := time.Now()

	tr := NewTracker()
	tr.Track(msgID, bob)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tr.ApplyDelivered(msgID, bob, now)
		}()
		go func() {
			defer wg.Done()
			tr.ApplyRead(msgID, bob, now)
		}()
	}
	wg.Wait()

	assert.Equal(t, StatusRead, tr.Status(msgID, bob))
	assert.Len(t, tr.DeliveredTo(msgID), 1)
	assert.Len(t, tr.ReadBy(msgID), 1)
}

func TestTrackerForget(t *testing.T) {
	msgID := uuid.New()
	bob := uuid.New()

	tr := NewTracker()
	tr.Track(msgID, bob)
	tr.ApplyRead(msgID, bob, time.Now())

	tr.Forget(msgID)
	assert.Equal(t, StatusSent, tr.Status(msgID, bob))
}
