package response

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/comingsoon/core/logger"
)

// Response renders itself to w. Returning an error before anything is written
// lets Handler answer with a 500 instead.
type Response func(w http.ResponseWriter, r *http.Request) error

// Handler adapts fn to http.Handler. Render errors are logged and, when fn
// returned nil or failed, the client receives 500.
func Handler(log *slog.Logger, fn func(r *http.Request) Response) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Render(w, r, log, fn(r))
	})
}

// Render writes resp, falling back to 500 on failure.
func Render(w http.ResponseWriter, r *http.Request, log *slog.Logger, resp Response) {
	if resp == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := resp(w, r); err != nil {
		if log != nil {
			log.ErrorContext(r.Context(), "failed to render response",
				logger.Component("response"), logger.Path(r.URL.Path), logger.Error(err))
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// StringWithStatus creates a text/plain response.
func StringWithStatus(content string, status int) Response {
	return BytesWithStatus([]byte(content), "text/plain; charset=utf-8", status)
}

// BytesWithStatus creates a response with raw content and the given content type.
func BytesWithStatus(content []byte, contentType string, status int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if r.Method == http.MethodHead {
			return nil
		}
		_, err := w.Write(content)
		return err
	}
}

// Status creates a response with just a status code and its text as the body.
func Status(code int) Response {
	return StringWithStatus(http.StatusText(code), code)
}
