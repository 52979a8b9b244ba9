package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend keeps one file per key inside a directory. Writes go to a
// temp file first and are renamed over the target, so a failed write
// never corrupts a previously stored blob. Writes to the same key are
// serialized.
type FileBackend struct {
	mu  sync.Mutex
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	const op = "NewFileBackend"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Read(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "FileBackend.Read"

	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	blob, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return blob, true, nil
}

func (b *FileBackend) Write(ctx context.Context, key string, blob []byte) error {
	const op = "FileBackend.Write"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tmp, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), b.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".bin")
}
