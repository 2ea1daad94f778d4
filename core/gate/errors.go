package gate

import "errors"

var (
	// ErrIncorrectPassword is returned for any failed challenge.
	// Wrong credential and failed anti-forgery check are indistinguishable.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrUnlockFailed means the credential matched but no token could be
	// issued or persisted.
	ErrUnlockFailed = errors.New("unlock failed")

	// ErrNoSigningKey is returned by DeriveKeys for an empty application key.
	ErrNoSigningKey = errors.New("gate: signing key is empty")
)

// Message returns the visitor-facing text for a Result error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIncorrectPassword):
		return "Incorrect password. Please try again."
	default:
		return "We could not unlock the site right now. Please try again."
	}
}
