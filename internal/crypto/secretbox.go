package crypto

import (
	"crypto/rand"
	"io"

	"github.com/fprevidi/Blabbo/pkg/errors"

	"golang.org/x/crypto/nacl/secretbox"
)

// EncryptedBlob is an encrypted media payload. Key and nonce are generated
// fresh per blob and are independent of any identity key, so leaking one
// file's pair exposes nothing else. They must travel to the recipient inside
// the encrypted message that references the blob, never beside the ciphertext
// on the storage path.
type EncryptedBlob struct {
	Ciphertext []byte
	Key        []byte
	Nonce      []byte
}

// EncryptBlob seals an arbitrary byte payload under a one-time symmetric key.
func EncryptBlob(plaintext []byte) (*EncryptedBlob, error) {
	var key [KeySize]byte
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, errors.ErrKeyGenerationFailed
	}
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, errors.ErrKeyGenerationFailed
	}

	out := secretbox.Seal(nil, plaintext, &nonce, &key)
	return &EncryptedBlob{Ciphertext: out, Key: key[:], Nonce: nonce[:]}, nil
}

// DecryptBlob opens a blob sealed by EncryptBlob.
func DecryptBlob(ciphertext, key, nonce []byte) ([]byte, error) {
	if len(key) != KeySize || len(nonce) != NonceSize {
		return nil, errors.ErrDecryptionFailed
	}

	var k [KeySize]byte
	var n [NonceSize]byte
	copy(k[:], key)
	copy(n[:], nonce)

	plaintext, ok := secretbox.Open(nil, ciphertext, &n, &k)
	if !ok {
		return nil, errors.ErrDecryptionFailed
	}
	return plaintext, nil
}
