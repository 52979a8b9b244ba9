package storage

import (
	"context"
	"sync"
)

// MemBackend is an in-memory Backend for tests and ephemeral sessions.
type MemBackend struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemBackend() *MemBackend {
	return &MemBackend{m: map[string][]byte{}}
}

func (b *MemBackend) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	blob, ok := b.m[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, true, nil
}

func (b *MemBackend) Write(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	cp := make([]byte, len(blob))
	copy(cp, blob)
	b.m[key] = cp
	return nil
}
