package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/comingsoon/core/media"
)

// classifyS3Error converts S3 errors to media errors so callers can branch with errors.Is.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", media.ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", media.ErrOperationCanceled, operation)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", media.ErrFileNotFound, err)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return media.ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch code {
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s operation", media.ErrAccessDenied, operation)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s operation", media.ErrOperationTimeout, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s operation", media.ErrServiceUnavailable, operation)
		case "InvalidObjectState":
			return fmt.Errorf("%w: %s operation", media.ErrInvalidObjectState, operation)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", media.ErrFileNotFound, err)
		case "NoSuchBucket":
			return media.ErrBucketNotFound
		default:
			return fmt.Errorf("%s operation failed (code: %s): %w", operation, code, err)
		}
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}
