package crypto

import (
	"crypto/rand"
	"testing"

	appErrors "github.com/fprevidi/Blabbo/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	alicePub, alicePriv, err := GenerateKeyPair()
	require.NoError(t, err)
	bobPub, bobPriv, err := GenerateKeyPair()
	require.NoError(t, err)

	plaintext := []byte("hello")

	sealed, err := EncryptForRecipient(bobPub, alicePriv, plaintext)
	require.NoError(t, err)
	require.Len(t, sealed.Nonce, NonceSize)
	assert.NotEqual(t, plaintext, sealed.Ciphertext)

	// Recipient opens with the sender's public half and their own private half.
	opened, err := DecryptFromSender(sealed.Ciphertext, sealed.Nonce, alicePub, bobPriv)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestEncryptEmptyAndLargePlaintext(t *testing.T) {
	alicePub, alicePriv, _ := GenerateKeyPair()
	bobPub, bobPriv, _ := GenerateKeyPair()

	for _, size := range []int{0, 1, 4096} {
		plaintext := make([]byte, size)
		_, err := rand.Read(plaintext)
		require.NoError(t, err)

		sealed, err := EncryptForRecipient(bobPub, alicePriv, plaintext)
		require.NoError(t, err)

		opened, err := DecryptFromSender(sealed.Ciphertext, sealed.Nonce, alicePub, bobPriv)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	}
}

func TestNoncesAreUnique(t *testing.T) {
	bobPub, _, _ := GenerateKeyPair()
	_, alicePriv, _ := GenerateKeyPair()

	const trials = 10000
	seen := make(map[[NonceSize]byte]struct{}, trials)
	for i := 0; i < trials; i++ {
		sealed, err := EncryptForRecipient(bobPub, alicePriv, []byte("same plaintext"))
		require.NoError(t, err)

		var n [NonceSize]byte
		copy(n[:], sealed.Nonce)
		if _, dup := seen[n]; dup {
			t.Fatalf("nonce repeated after %d encryptions", i)
		}
		seen[n] = struct{}{}
	}
}

func TestTamperingFailsDecryption(t *testing.T) {
	alicePub, alicePriv, _ := GenerateKeyPair()
	bobPub, bobPriv, _ := GenerateKeyPair()

	sealed, err := EncryptForRecipient(bobPub, alicePriv, []byte("attack at dawn"))
	require.NoError(t, err)

	flip := func(b []byte, i int) []byte {
		out := make([]byte, len(b))
		copy(out, b)
		out[i] ^= 0x01
		return out
	}

	t.Run("tampered ciphertext", func(t *testing.T) {
		for i := range sealed.Ciphertext {
			_, err := DecryptFromSender(flip(sealed.Ciphertext, i), sealed.Nonce, alicePub, bobPriv)
			require.ErrorIs(t, err, appErrors.ErrDecryptionFailed)
		}
	})

	t.Run("tampered nonce", func(t *testing.T) {
		for i := range sealed.Nonce {
			_, err := DecryptFromSender(sealed.Ciphertext, flip(sealed.Nonce, i), alicePub, bobPriv)
			require.ErrorIs(t, err, appErrors.ErrDecryptionFailed)
		}
	})

	t.Run("wrong sender public key", func(t *testing.T) {
		for i := range alicePub {
			_, err := DecryptFromSender(sealed.Ciphertext, sealed.Nonce, flip(alicePub, i), bobPriv)
			require.ErrorIs(t, err, appErrors.ErrDecryptionFailed)
		}
	})

	t.Run("wrong recipient", func(t *testing.T) {
		_, evePriv, _ := GenerateKeyPair()
		_, err := DecryptFromSender(sealed.Ciphertext, sealed.Nonce, alicePub, evePriv)
		require.ErrorIs(t, err, appErrors.ErrDecryptionFailed)
	})
}

func TestRejectsBadKeyLengths(t *testing.T) {
	bobPub, _, _ := GenerateKeyPair()
	_, alicePriv, _ := GenerateKeyPair()

	_, err := EncryptForRecipient(bobPub[:16], alicePriv, []byte("x"))
	assert.Error(t, err)

	_, err = EncryptForRecipient(bobPub, alicePriv[:16], []byte("x"))
	assert.Error(t, err)

	_, err = DecryptFromSender([]byte("ct"), make([]byte, 7), bobPub, alicePriv)
	assert.ErrorIs(t, err, appErrors.ErrDecryptionFailed)
}
