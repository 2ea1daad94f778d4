package csrf

import "errors"

var (
	ErrNoKey        = errors.New("csrf: no signing key")
	ErrTokenMissing = errors.New("csrf: token missing")
	ErrTokenInvalid = errors.New("csrf: token invalid")
	ErrTokenExpired = errors.New("csrf: token expired")
	ErrSeedMissing  = errors.New("csrf: seed cookie missing")
)
