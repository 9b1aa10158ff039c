package keys

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fprevidi/Blabbo/internal/crypto"
	appErrors "github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryResolve(t *testing.T) {
	userID := uuid.New()
	published, _, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	t.Run("happy path - resolves published key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, fmt.Sprintf("/api/users/%s/public-key", userID), r.URL.Path)
			json.NewEncoder(w).Encode(map[string]string{
				"publicKey": base64.StdEncoding.EncodeToString(published),
			})
		}))
		defer srv.Close()

		dir := NewDirectory(srv.URL, time.Second, 0, logger.Logger{})
		key, err := dir.Resolve(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, published, key)
	})

	t.Run("sad path - unpublished key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		dir := NewDirectory(srv.URL, time.Second, 0, logger.Logger{})
		_, err := dir.Resolve(context.Background(), userID)
		assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)
	})

	t.Run("sad path - server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		dir := NewDirectory(srv.URL, time.Second, 0, logger.Logger{})
		_, err := dir.Resolve(context.Background(), userID)
		assert.ErrorIs(t, err, appErrors.ErrDirectoryUnavailable)
	})

	t.Run("sad path - unreachable directory", func(t *testing.T) {
		dir := NewDirectory("http://127.0.0.1:1", 100*time.Millisecond, 0, logger.Logger{})
		_, err := dir.Resolve(context.Background(), userID)
		assert.ErrorIs(t, err, appErrors.ErrDirectoryUnavailable)
	})

	t.Run("sad path - malformed key material", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"publicKey": "dG9vIHNob3J0"})
		}))
		defer srv.Close()

		dir := NewDirectory(srv.URL, time.Second, 0, logger.Logger{})
		_, err := dir.Resolve(context.Background(), userID)
		assert.ErrorIs(t, err, appErrors.ErrKeyNotFound)
	})
}

func TestDirectoryCache(t *testing.T) {
	userID := uuid.New()
	published, _, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode(map[string]string{
			"publicKey": base64.StdEncoding.EncodeToString(published),
		})
	}))
	defer srv.Close()

	dir := NewDirectory(srv.URL, time.Second, time.Minute, logger.Logger{})

	for i := 0; i < 3; i++ {
		_, err := dir.Resolve(context.Background(), userID)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, hits, "cached resolves must not hit the network")

	// Invalidate models a DecryptionFailed upstream: next send re-resolves.
	dir.Invalidate(userID)
	_, err = dir.Resolve(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestDirectoryCacheIsolation(t *testing.T) {
	userID := uuid.New()
	published, _, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"publicKey": base64.StdEncoding.EncodeToString(published),
		})
	}))
	defer srv.Close()

	dir := NewDirectory(srv.URL, time.Second, time.Minute, logger.Logger{})

	// A caller scribbling over a resolved key must not corrupt what later
	// callers get from the cache.
	first, err := dir.Resolve(context.Background(), userID)
	require.NoError(t, err)
	for i := range first {
		first[i] = 0
	}

	second, err := dir.Resolve(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, published, second)

	for i := range second {
		second[i] ^= 0xff
	}
	third, err := dir.Resolve(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, published, third)
}

func TestDirectoryPublish(t *testing.T) {
	userID := uuid.New()
	published, _, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	var got publicKeyPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	dir := NewDirectory(srv.URL, time.Second, 0, logger.Logger{})
	require.NoError(t, dir.Publish(context.Background(), userID, published))
	assert.Equal(t, base64.StdEncoding.EncodeToString(published), got.PublicKey)
}
