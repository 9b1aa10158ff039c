// Package messenger is the device-side core: it ties the key store, the
// public key directory, the ciphers and the delivery tracker into the
// send/receive flows the UI layer calls.
package messenger

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/fprevidi/Blabbo/internal/chat"
	"github.com/fprevidi/Blabbo/internal/chat/model"
	"github.com/fprevidi/Blabbo/internal/crypto"
	"github.com/fprevidi/Blabbo/internal/delivery"
	"github.com/fprevidi/Blabbo/internal/keys"
	"github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/google/uuid"
)

// Messenger is one device's messaging core. Safe for concurrent use.
type Messenger struct {
	userID    uuid.UUID
	store     *keys.Store
	directory *keys.Directory
	tracker   *delivery.Tracker
	logger    logger.Logger
}

func New(userID uuid.UUID, store *keys.Store, directory *keys.Directory, logger logger.Logger) *Messenger {
	return &Messenger{
		userID:    userID,
		store:     store,
		directory: directory,
		tracker:   delivery.NewTracker(),
		logger:    logger,
	}
}

// Tracker exposes the delivery state machine for status rendering.
func (m *Messenger) Tracker() *delivery.Tracker { return m.tracker }

// PublishIdentity uploads the device's public key, generating the pair first
// if this is a fresh install.
func (m *Messenger) PublishIdentity(ctx context.Context) error {
	pub, err := m.store.PublicKey()
	if err != nil {
		return err
	}
	return m.directory.Publish(ctx, m.userID, pub)
}

// SendEncrypted seals plaintext for the other participant of an individual
// chat and returns the send command ready for the transport. Group chats are
// refused: the box construction binds one recipient key, and silently
// encrypting a "group" message to a single member would misrepresent who can
// read it.
func (m *Messenger) SendEncrypted(ctx context.Context, c *chat.ChatDTO, plaintext []byte) (*chat.SendMessageCommand, error) {
	if c.Kind != model.KindIndividual {
		return nil, errors.ErrGroupNotEncrypted
	}

	recipientID, ok := otherParticipant(c, m.userID)
	if !ok {
		return nil, errors.ErrNotParticipant
	}

	recipientKey, err := m.directory.Resolve(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	pair, err := m.store.EnsureKeyPair()
	if err != nil {
		return nil, err
	}

	sealed, err := crypto.EncryptForRecipient(recipientKey, pair.PrivateKey, plaintext)
	if err != nil {
		return nil, err
	}

	return &chat.SendMessageCommand{
		ChatID:          c.ID,
		SenderID:        m.userID,
		Ciphertext:      sealed.Ciphertext,
		Nonce:           sealed.Nonce,
		SenderPublicKey: pair.PublicKey,
		Type:            model.TypeText,
	}, nil
}

// TrackSent registers a persisted message with the tracker, one entry per
// recipient, all starting at Sent.
func (m *Messenger) TrackSent(dto *chat.MessageDTO, participants []uuid.UUID) {
	recipients := make([]uuid.UUID, 0, len(participants))
	for _, p := range participants {
		if p != m.userID {
			recipients = append(recipients, p)
		}
	}
	m.tracker.Track(dto.ID, recipients...)
}

// Decrypt opens a received message with the sender's public key carried in the
// message itself. On authentication failure the sender's directory entry is
// invalidated so a rotated key (reinstall) is picked up on the next send, and
// ErrDecryptionFailed is returned; the ciphertext is never partially exposed.
func (m *Messenger) Decrypt(msg *chat.MessageDTO) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(msg.Content)
	if err != nil {
		return nil, errors.ErrDecryptionFailed
	}
	nonce, err := base64.StdEncoding.DecodeString(msg.Nonce)
	if err != nil {
		return nil, errors.ErrDecryptionFailed
	}
	senderKey, err := base64.StdEncoding.DecodeString(msg.SenderPublicKey)
	if err != nil {
		return nil, errors.ErrDecryptionFailed
	}

	pair, err := m.store.EnsureKeyPair()
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.DecryptFromSender(ciphertext, nonce, senderKey, pair.PrivateKey)
	if err != nil {
		m.logger.Warn("message failed authentication", "message_id", msg.ID, "sender_id", msg.SenderID)
		m.directory.Invalidate(msg.SenderID)
		return nil, err
	}
	return plaintext, nil
}

// EncryptMedia seals a file body under a fresh one-off key; the returned key
// and nonce travel inside the encrypted message payload, never alongside the
// uploaded blob.
func (m *Messenger) EncryptMedia(data []byte) (*crypto.EncryptedBlob, error) {
	return crypto.EncryptBlob(data)
}

func (m *Messenger) DecryptMedia(blob *crypto.EncryptedBlob) ([]byte, error) {
	return crypto.DecryptBlob(blob.Ciphertext, blob.Key, blob.Nonce)
}

// ApplyDelivered feeds a delivered event from the realtime channel into the
// tracker. Duplicates are no-ops.
func (m *Messenger) ApplyDelivered(messageID, userID uuid.UUID, at time.Time) bool {
	return m.tracker.ApplyDelivered(messageID, userID, at)
}

// ApplyRead feeds a read event into the tracker; delivery is implied.
func (m *Messenger) ApplyRead(messageID, userID uuid.UUID, at time.Time) bool {
	return m.tracker.ApplyRead(messageID, userID, at)
}

// MessageStatus is what the chat UI renders next to an own message.
func (m *Messenger) MessageStatus(messageID uuid.UUID) delivery.Status {
	return m.tracker.AggregateStatus(messageID)
}

func otherParticipant(c *chat.ChatDTO, self uuid.UUID) (uuid.UUID, bool) {
	for _, p := range c.Participants {
		if p != self {
			return p, true
		}
	}
	return uuid.Nil, false
}
