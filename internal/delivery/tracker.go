// Package delivery tracks per-recipient message state on the client:
// Sent → Delivered → Read, driven by acknowledgement events from the
// realtime channel.
package delivery

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status int

const (
	StatusSent Status = iota
	StatusDelivered
	StatusRead
)

func (s Status) String() string {
	switch s {
	case StatusDelivered:
		return "delivered"
	case StatusRead:
		return "read"
	default:
		return "sent"
	}
}

// Receipt records when a specific user acknowledged a message.
type Receipt struct {
	UserID uuid.UUID
	At     time.Time
}

type recipientState struct {
	status      Status
	deliveredAt time.Time
	readAt      time.Time
}

type messageState struct {
	recipients map[uuid.UUID]*recipientState
}

// Tracker advances (message, recipient) pairs through the receipt state
// machine. Transitions are monotonic: a Read never reverts to Delivered and a
// Delivered never reverts to Sent. Applying the same acknowledgement twice is
// a no-op, which makes redelivered events over the channel harmless.
//
// Acknowledgements may arrive before the message itself is known locally; the
// tracker keeps them rather than dropping them, so the state is already
// correct once the content shows up.
type Tracker struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]*messageState
}

func NewTracker() *Tracker {
	return &Tracker{messages: make(map[uuid.UUID]*messageState)}
}

// Track registers a freshly sent message with its recipients, all at Sent.
func (t *Tracker) Track(messageID uuid.UUID, recipients ...uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := t.message(messageID)
	for _, r := range recipients {
		if _, ok := state.recipients[r]; !ok {
			state.recipients[r] = &recipientState{status: StatusSent}
		}
	}
}

// ApplyDelivered records a delivery acknowledgement. Returns true if the
// recipient's state changed.
func (t *Tracker) ApplyDelivered(messageID, userID uuid.UUID, at time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.recipient(messageID, userID)
	if r.status >= StatusDelivered {
		return false
	}
	r.status = StatusDelivered
	r.deliveredAt = at
	return true
}

// ApplyRead records a read acknowledgement. A read receipt is sufficient
// evidence of delivery, so a recipient whose delivered ack was lost still
// reports at least Delivered afterwards.
func (t *Tracker) ApplyRead(messageID, userID uuid.UUID, at time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.recipient(messageID, userID)
	if r.status >= StatusRead {
		return false
	}
	if r.status < StatusDelivered {
		r.deliveredAt = at
	}
	r.status = StatusRead
	r.readAt = at
	return true
}

// Status reports the state of a message for one recipient.
func (t *Tracker) Status(messageID, userID uuid.UUID) Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if m, ok := t.messages[messageID]; ok {
		if r, ok := m.recipients[userID]; ok {
			return r.status
		}
	}
	return StatusSent
}

// AggregateStatus is the minimum state across all tracked recipients — what a
// chat UI renders as the message's single tick/double tick indicator.
func (t *Tracker) AggregateStatus(messageID uuid.UUID) Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	m, ok := t.messages[messageID]
	if !ok || len(m.recipients) == 0 {
		return StatusSent
	}
	agg := StatusRead
	for _, r := range m.recipients {
		if r.status < agg {
			agg = r.status
		}
	}
	return agg
}

// DeliveredTo lists recipients that have at least received the message.
func (t *Tracker) DeliveredTo(messageID uuid.UUID) []Receipt {
	return t.receipts(messageID, StatusDelivered)
}

// ReadBy lists recipients that have read the message.
func (t *Tracker) ReadBy(messageID uuid.UUID) []Receipt {
	return t.receipts(messageID, StatusRead)
}

func (t *Tracker) receipts(messageID uuid.UUID, min Status) []Receipt {
	t.mu.RLock()
	defer t.mu.RUnlock()

	m, ok := t.messages[messageID]
	if !ok {
		return nil
	}
	out := make([]Receipt, 0, len(m.recipients))
	for userID, r := range m.recipients {
		if r.status < min {
			continue
		}
		at := r.deliveredAt
		if min == StatusRead {
			at = r.readAt
		}
		out = append(out, Receipt{UserID: userID, At: at})
	}
	return out
}

// Forget drops a message's state, e.g. after its chat is deleted locally.
func (t *Tracker) Forget(messageID uuid.UUID) {
	t.mu.Lock()
	delete(t.messages, messageID)
	t.mu.Unlock()
}

func (t *Tracker) message(messageID uuid.UUID) *messageState {
	m, ok := t.messages[messageID]
	if !ok {
		m = &messageState{recipients: make(map[uuid.UUID]*recipientState)}
		t.messages[messageID] = m
	}
	return m
}

func (t *Tracker) recipient(messageID, userID uuid.UUID) *recipientState {
	m := t.message(messageID)
	r, ok := m.recipients[userID]
	if !ok {
		r = &recipientState{status: StatusSent}
		m.recipients[userID] = r
	}
	return r
}
