package cookie

import (
	"errors"
	"fmt"
)

var (
	ErrNoSecret       = errors.New("cookie: no signing secret")
	ErrSecretTooShort = errors.New("cookie: secret must be at least 32 characters long")
	ErrCookieNotFound = errors.New("cookie: not found in request")

	// ErrInvalidSignature means the value was signed with an unknown key or
	// altered. The gate treats it like a missing cookie.
	ErrInvalidSignature = errors.New("cookie: signature verification failed")
	ErrInvalidFormat    = errors.New("cookie: invalid signed value")
)

// ErrCookieTooLarge is returned by Set when the encoded cookie would exceed
// the browser limit.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
