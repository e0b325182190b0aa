package blobstore

import "context"

// Store is an opaque key-value blob store. The ledger writes its full
// snapshot under a fixed key and reloads it at startup; save failures are
// surfaced to the caller but the ledger treats them as best-effort.
type Store interface {
	// Load returns the blob stored under key. The second return is false
	// when no blob exists for the key.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save stores blob under key, replacing any previous value.
	Save(ctx context.Context, key string, blob []byte) error
}
