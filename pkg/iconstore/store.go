// Package iconstore provides persistent byte stores for fetched icon
// documents, keyed by the fully resolved icon URL. Stores are deliberately
// dumb: no TTL or eviction in the default disk implementation, overwrite on
// demand, and idempotent concurrent writes (the same URL always maps to the
// same bytes).
package iconstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrNotFound is returned by Fetch when no entry exists for the key.
var ErrNotFound = errors.New("icon not found in store")

// Store is the contract for a persistent icon byte cache.
type Store interface {
	// Fetch retrieves the raw bytes stored under the URL, or ErrNotFound.
	Fetch(ctx context.Context, url string) ([]byte, error)
	// Write stores raw bytes under the URL, overwriting any existing entry.
	Write(ctx context.Context, url string, data []byte) error
	// Close releases any resources held by the store.
	Close() error
}

// objectKey derives a flat, filesystem- and document-ID-safe key from a URL.
func objectKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}
