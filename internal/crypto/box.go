package crypto

import (
	"crypto/rand"
	"io"

	"github.com/fprevidi/Blabbo/pkg/errors"

	"golang.org/x/crypto/nacl/box"
)

const (
	// Curve25519 public/private key size.
	KeySize = 32
	// XSalsa20 nonce size. The nonce travels with the ciphertext and is not secret,
	// but it must never repeat for the same key pair.
	NonceSize = 24
)

// SealedMessage is the output of a single asymmetric encryption:
// ciphertext plus the one-time nonce required to open it.
type SealedMessage struct {
	Ciphertext []byte
	Nonce      []byte
}

// EncryptForRecipient seals plaintext so only the holder of the private key
// matching recipientPublic can open it. A fresh random nonce is drawn on every
// call; a failure of the random source aborts rather than degrading.
func EncryptForRecipient(recipientPublic, senderPrivate, plaintext []byte) (*SealedMessage, error) {
	pub, priv, err := checkKeys(recipientPublic, senderPrivate)
	if err != nil {
		return nil, err
	}

	var nonce [NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to draw nonce", err)
	}

	out := box.Seal(nil, plaintext, &nonce, pub, priv)
	return &SealedMessage{Ciphertext: out, Nonce: nonce[:]}, nil
}

// DecryptFromSender opens a sealed message. Authentication failure — wrong key,
// corrupted ciphertext or tampered nonce — returns ErrDecryptionFailed and never
// partial plaintext.
func DecryptFromSender(ciphertext, nonce, senderPublic, recipientPrivate []byte) ([]byte, error) {
	pub, priv, err := checkKeys(senderPublic, recipientPrivate)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceSize {
		return nil, errors.ErrDecryptionFailed
	}

	var n [NonceSize]byte
	copy(n[:], nonce)

	plaintext, ok := box.Open(nil, ciphertext, &n, pub, priv)
	if !ok {
		return nil, errors.ErrDecryptionFailed
	}
	return plaintext, nil
}

// GenerateKeyPair draws a fresh Curve25519 pair from crypto/rand.
func GenerateKeyPair() (publicKey, privateKey []byte, err error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, errors.ErrKeyGenerationFailed
	}
	return pub[:], priv[:], nil
}

func checkKeys(publicKey, privateKey []byte) (*[KeySize]byte, *[KeySize]byte, error) {
	if len(publicKey) != KeySize {
		return nil, nil, errors.InvalidArg("public key must be 32 bytes")
	}
	if len(privateKey) != KeySize {
		return nil, nil, errors.InvalidArg("private key must be 32 bytes")
	}
	var pub, priv [KeySize]byte
	copy(pub[:], publicKey)
	copy(priv[:], privateKey)
	return &pub, &priv, nil
}
