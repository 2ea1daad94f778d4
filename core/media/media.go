package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxSize caps logo reads at 10 MiB.
const DefaultMaxSize int64 = 10 << 20

// Loader reads stored objects by key.
type Loader interface {
	Load(ctx context.Context, key string) ([]byte, error)
}

// ReadLimited reads r fully, failing with ErrTooLarge past limit bytes.
// A non-positive limit selects DefaultMaxSize.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("media: read: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}

// ContentType sniffs the MIME type of data. SVG is reported as image/svg+xml.
func ContentType(data []byte) string {
	ct := http.DetectContentType(data)
	if ct == "text/xml; charset=utf-8" || ct == "text/plain; charset=utf-8" {
		if looksLikeSVG(data) {
			return "image/svg+xml"
		}
	}
	return ct
}

func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	for i := 0; i+4 <= len(head); i++ {
		if head[i] == '<' && (string(head[i:i+4]) == "<svg" || string(head[i:i+4]) == "<SVG") {
			return true
		}
	}
	return false
}
