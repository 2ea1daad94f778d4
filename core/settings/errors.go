package settings

import "errors"

var (
	// ErrNotFound means the backend holds no settings yet. Callers use Defaults.
	ErrNotFound = errors.New("settings: not found")

	ErrUnknownBackend = errors.New("settings: unknown backend")
	ErrNilClient      = errors.New("settings: backend client is nil")
	ErrLoadFailed     = errors.New("settings: load failed")
	ErrSaveFailed     = errors.New("settings: save failed")
)
