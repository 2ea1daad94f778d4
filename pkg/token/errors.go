package token

import "errors"

var (
	// ErrNoSigningKey indicates the codec was created without key material.
	ErrNoSigningKey = errors.New("token: signing key is not configured")
)
