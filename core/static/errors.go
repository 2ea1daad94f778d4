package static

import "errors"

// ErrInvalidRoot is returned when the served directory is missing or not a directory.
var ErrInvalidRoot = errors.New("static: invalid root")
