package media

import "errors"

var (
	ErrFileNotFound       = errors.New("media: file not found")
	ErrInvalidPath        = errors.New("media: invalid path")
	ErrTooLarge           = errors.New("media: file exceeds size limit")
	ErrInvalidConfig      = errors.New("media: invalid configuration")
	ErrAccessDenied       = errors.New("media: access denied")
	ErrBucketNotFound     = errors.New("media: bucket not found")
	ErrOperationTimeout   = errors.New("media: operation timed out")
	ErrOperationCanceled  = errors.New("media: operation canceled")
	ErrServiceUnavailable = errors.New("media: service unavailable")
	ErrInvalidObjectState = errors.New("media: invalid object state")
)
