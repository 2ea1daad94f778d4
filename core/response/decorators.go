package response

import (
	"net/http"
	"strconv"
	"time"
)

// WithHeaders wraps a response with custom HTTP headers.
// Headers are set before the wrapped response is rendered.
func WithHeaders(response Response, headers map[string]string) Response {
	if response == nil || len(headers) == 0 {
		return response
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		return response(w, r)
	}
}

// NoCache sets the headers that keep browsers and proxies from storing the response.
func NoCache(h http.Header) {
	h.Set("Cache-Control", "no-cache, must-revalidate, max-age=0")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "Wed, 11 Jan 1984 05:00:00 GMT")
}

// WithNoCache wraps a response with NoCache headers.
func WithNoCache(response Response) Response {
	if response == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		NoCache(w.Header())
		return response(w, r)
	}
}

// WithRetryAfter adds a Retry-After header in whole seconds.
func WithRetryAfter(response Response, after time.Duration) Response {
	if response == nil || after <= 0 {
		return response
	}
	return WithHeaders(response, map[string]string{
		"Retry-After": strconv.Itoa(int(after.Seconds())),
	})
}
