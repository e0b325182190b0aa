package blobstore

import (
	"context"
	"sync"
)

// MemoryStore is the fallback when neither REDIS_URL nor DATABASE_URL is
// set (local dev, tests). State does not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, len(blob))
	copy(b, blob)
	s.blobs[key] = b
	return nil
}
