package preview

import "errors"

var (
	ErrNoSecret     = errors.New("preview: signing secret is empty")
	ErrInvalidToken = errors.New("preview: invalid token")
	ErrInvalidTTL   = errors.New("preview: ttl must be positive")
)
