package keys

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"sync"

	"github.com/fprevidi/Blabbo/internal/crypto"
	"github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"
)

// Fixed identifiers the key material is stored under. The public half may be
// uploaded freely; the private half never leaves the device.
const (
	publicKeyFile  = "device_public_key"
	privateKeyFile = "device_private_key"
)

// KeyPair is the device's long-term Curve25519 pair. Exactly one per device,
// generated lazily and reused for the device's lifetime.
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// Store owns the device key pair. All cipher operations read the pair through
// here; the pair is immutable once created, so concurrent reads are safe.
type Store struct {
	dir    string
	logger logger.Logger

	mu     sync.Mutex
	cached *KeyPair
}

func NewStore(dir string, logger logger.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// EnsureKeyPair returns the device key pair, generating and persisting a fresh
// one on first use. Idempotent: once a pair exists it is returned unchanged.
//
// If only one half is present the store is corrupt. Regenerating just the
// missing half would silently desync from the server-published public key, so
// this fails with ErrCorruptKeyStore and leaves recovery to an explicit Reset.
func (s *Store) EnsureKeyPair() (*KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	pub, pubErr := s.readKey(publicKeyFile)
	priv, privErr := s.readKey(privateKeyFile)

	switch {
	case pubErr == nil && privErr == nil:
		s.cached = &KeyPair{PublicKey: pub, PrivateKey: priv}
		return s.cached, nil
	case os.IsNotExist(pubErr) && os.IsNotExist(privErr):
		// fresh device, fall through to generation
	default:
		s.logger.Error("key store holds partial key material", "dir", s.dir)
		return nil, errors.ErrCorruptKeyStore
	}

	pub, priv, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	if err := s.writePair(pub, priv); err != nil {
		return nil, err
	}

	s.logger.Info("generated new device key pair", "dir", s.dir)
	s.cached = &KeyPair{PublicKey: pub, PrivateKey: priv}
	return s.cached, nil
}

// PublicKey returns only the public half, safe to upload to the directory.
func (s *Store) PublicKey() ([]byte, error) {
	pair, err := s.EnsureKeyPair()
	if err != nil {
		return nil, err
	}
	return pair.PublicKey, nil
}

// Reset wipes both halves. Messages encrypted to the old public key become
// permanently unreadable; callers must re-publish the new public key.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = nil
	for _, name := range []string{publicKeyFile, privateKeyFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(errors.CodeInternal, "failed to reset key store", err)
		}
	}
	return nil
}

func (s *Store) readKey(name string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	key, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil || len(key) != crypto.KeySize {
		return nil, errors.ErrCorruptKeyStore
	}
	return key, nil
}

func (s *Store) writePair(pub, priv []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to create key store dir", err)
	}

	encode := func(b []byte) []byte {
		return []byte(base64.StdEncoding.EncodeToString(b))
	}
	// Private half first: if the second write fails we are left with a lone
	// private key, which EnsureKeyPair reports as corrupt instead of leaking
	// a half-published identity.
	if err := os.WriteFile(filepath.Join(s.dir, privateKeyFile), encode(priv), 0o600); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to persist private key", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, publicKeyFile), encode(pub), 0o600); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to persist public key", err)
	}
	return nil
}
