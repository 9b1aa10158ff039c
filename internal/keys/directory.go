package keys

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fprevidi/Blabbo/internal/crypto"
	"github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/google/uuid"
)

// publicKeyPayload is the wire shape for key publication and resolution.
type publicKeyPayload struct {
	PublicKey string `json:"publicKey"`
}

// Directory resolves a user id to their published public key over the REST
// service. Results may be cached for a bounded TTL in memory only; nothing
// survives a process restart, and a DecryptionFailed upstream should call
// Invalidate so a rotated key is picked up on the next send.
type Directory struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger

	ttl   time.Duration
	mu    sync.Mutex
	cache map[uuid.UUID]cachedKey
}

type cachedKey struct {
	key       []byte
	fetchedAt time.Time
}

func NewDirectory(baseURL string, timeout, cacheTTL time.Duration, logger logger.Logger) *Directory {
	return &Directory{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		ttl:     cacheTTL,
		cache:   make(map[uuid.UUID]cachedKey),
	}
}

// Resolve fetches userID's published public key. Fails with ErrKeyNotFound if
// the user never published one and ErrDirectoryUnavailable on transport errors.
func (d *Directory) Resolve(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if d.ttl > 0 {
		d.mu.Lock()
		entry, ok := d.cache[userID]
		d.mu.Unlock()
		if ok && time.Since(entry.fetchedAt) < d.ttl {
			// Hand out a copy so a caller scribbling on the slice cannot
			// poison the cached key.
			return append([]byte(nil), entry.key...), nil
		}
	}

	url := fmt.Sprintf("%s/api/users/%s/public-key", d.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "directory.Resolve.NewRequest", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Warn("public key directory unreachable", "user_id", userID, "err", err)
		return nil, errors.ErrDirectoryUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.ErrKeyNotFound
	case resp.StatusCode != http.StatusOK:
		d.logger.Warn("public key directory returned error", "user_id", userID, "status", resp.StatusCode)
		return nil, errors.ErrDirectoryUnavailable
	}

	var payload publicKeyPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.ErrDirectoryUnavailable
	}
	key, err := base64.StdEncoding.DecodeString(payload.PublicKey)
	if err != nil || len(key) != crypto.KeySize {
		return nil, errors.ErrKeyNotFound
	}

	if d.ttl > 0 {
		d.mu.Lock()
		d.cache[userID] = cachedKey{key: append([]byte(nil), key...), fetchedAt: time.Now()}
		d.mu.Unlock()
	}
	return key, nil
}

// Invalidate drops a cached key, forcing the next Resolve to hit the network.
// The messenger calls this whenever a decryption fails so a reinstalled
// recipient's new key is picked up without manual intervention.
func (d *Directory) Invalidate(userID uuid.UUID) {
	d.mu.Lock()
	delete(d.cache, userID)
	d.mu.Unlock()
}

// Publish uploads the local device's public key under userID.
func (d *Directory) Publish(ctx context.Context, userID uuid.UUID, publicKey []byte) error {
	body, err := json.Marshal(publicKeyPayload{
		PublicKey: base64.StdEncoding.EncodeToString(publicKey),
	})
	if err != nil {
		return errors.Wrap(errors.CodeInternal, "directory.Publish.Marshal", err)
	}

	url := fmt.Sprintf("%s/api/users/%s/public-key", d.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(errors.CodeInternal, "directory.Publish.NewRequest", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return errors.ErrDirectoryUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return errors.ErrDirectoryUnavailable
	}
	return nil
}
