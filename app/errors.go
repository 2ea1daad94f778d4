package app

import "errors"

var (
	ErrWeakSigningKey     = errors.New("app: APP_SIGNING_KEY must be at least 32 characters")
	ErrUnknownLogoBackend = errors.New("app: unknown logo backend")
)
