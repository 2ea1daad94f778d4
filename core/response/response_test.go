package response_test

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comingsoon/core/response"
)

func TestTemplateNameWithStatus(t *testing.T) {
	tmpl := template.Must(template.New("p").Parse(`<h1>{{.}}</h1>`))

	t.Run("renders", func(t *testing.T) {
		w := httptest.NewRecorder()
		response.Render(w, httptest.NewRequest(http.MethodGet, "/", nil), nil,
			response.TemplateNameWithStatus(tmpl, "", "<hi>", http.StatusServiceUnavailable))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<h1>&lt;hi&gt;</h1>", w.Body.String())
	})

	t.Run("head has no body", func(t *testing.T) {
		w := httptest.NewRecorder()
		response.Render(w, httptest.NewRequest(http.MethodHead, "/", nil), nil, response.TemplateNameWithStatus(tmpl, "p", "x", 0))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("failing template writes 500 only", func(t *testing.T) {
		bad := template.Must(template.New("p").Parse(`{{.Missing.Field}}`))
		w := httptest.NewRecorder()
		response.Render(w, httptest.NewRequest(http.MethodGet, "/", nil), nil, response.TemplateNameWithStatus(bad, "", 42, http.StatusOK))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDecorators(t *testing.T) {
	w := httptest.NewRecorder()
	resp := response.WithRetryAfter(response.WithNoCache(response.Status(http.StatusServiceUnavailable)), 90*time.Minute)
	response.Render(w, httptest.NewRequest(http.MethodGet, "/", nil), nil, resp)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "5400", w.Header().Get("Retry-After"))
	assert.Equal(t, "no-cache, must-revalidate, max-age=0", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("Expires"))
}

func TestRedirectSeeOther(t *testing.T) {
	w := httptest.NewRecorder()
	response.Render(w, httptest.NewRequest(http.MethodPost, "/a?b=1", nil), nil, response.RedirectSeeOther("/a?b=1"))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/a?b=1", w.Header().Get("Location"))
}

func TestHandler(t *testing.T) {
	h := response.Handler(nil, func(r *http.Request) response.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			return errors.New("boom")
		}
	})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	h = response.Handler(nil, func(r *http.Request) response.Response { return nil })
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
