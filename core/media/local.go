package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrymomot/comingsoon/core/sanitizer"
)

// LocalLoader reads objects from a directory. Keys can never resolve outside it.
type LocalLoader struct {
	root    *os.Root
	maxSize int64
}

// NewLocalLoader opens dir as the loader root.
func NewLocalLoader(dir string, maxSize int64) (*LocalLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty directory", ErrInvalidConfig)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrInvalidConfig, dir, err)
	}
	return &LocalLoader{root: root, maxSize: maxSize}, nil
}

// Load reads the file named by key.
func (l *LocalLoader) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOperationCanceled, err)
	}

	clean := sanitizer.ObjectKey(key)
	if clean == "" || clean != key {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}

	f, err := l.root.Open(clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, clean)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, clean)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, clean, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("media: stat %s: %w", clean, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidPath, clean)
	}
	if l.maxSize > 0 && info.Size() > l.maxSize {
		return nil, ErrTooLarge
	}

	return ReadLimited(f, l.maxSize)
}

// Close releases the root directory handle.
func (l *LocalLoader) Close() error {
	return l.root.Close()
}
