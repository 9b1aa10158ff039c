package crypto

import (
	"crypto/rand"
	"testing"

	appErrors "github.com/fprevidi/Blabbo/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobRoundTrip(t *testing.T) {
	// 1 MB, the typical upper bound for an image attachment.
	plaintext := make([]byte, 1<<20)
	_, err := rand.Read(plaintext)
	require.NoError(t, err)

	blob, err := EncryptBlob(plaintext)
	require.NoError(t, err)
	require.Len(t, blob.Key, KeySize)
	require.Len(t, blob.Nonce, NonceSize)

	opened, err := DecryptBlob(blob.Ciphertext, blob.Key, blob.Nonce)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestBlobKeysAreIndependent(t *testing.T) {
	a, err := EncryptBlob([]byte("file one"))
	require.NoError(t, err)
	b, err := EncryptBlob([]byte("file two"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
	assert.NotEqual(t, a.Nonce, b.Nonce)

	// One file's key must not open another file.
	_, err = DecryptBlob(b.Ciphertext, a.Key, b.Nonce)
	assert.ErrorIs(t, err, appErrors.ErrDecryptionFailed)
}

func TestBlobTamperingFails(t *testing.T) {
	blob, err := EncryptBlob([]byte("confidential attachment"))
	require.NoError(t, err)

	blob.Ciphertext[0] ^= 0x01
	_, err = DecryptBlob(blob.Ciphertext, blob.Key, blob.Nonce)
	assert.ErrorIs(t, err, appErrors.ErrDecryptionFailed)
}

func TestBlobRejectsBadLengths(t *testing.T) {
	blob, err := EncryptBlob([]byte("x"))
	require.NoError(t, err)

	_, err = DecryptBlob(blob.Ciphertext, blob.Key[:8], blob.Nonce)
	assert.ErrorIs(t, err, appErrors.ErrDecryptionFailed)

	_, err = DecryptBlob(blob.Ciphertext, blob.Key, blob.Nonce[:8])
	assert.ErrorIs(t, err, appErrors.ErrDecryptionFailed)
}
