package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/comingsoon/core/cookie"
	"github.com/dmitrymomot/comingsoon/core/gate"
	"github.com/dmitrymomot/comingsoon/core/preview"
	"github.com/dmitrymomot/comingsoon/core/response"
)

const (
	// PreviewCookie holds a preview token once a privileged caller has presented it.
	PreviewCookie = "comingsoon_preview"
	// PreviewQueryParam lets an administrator open a preview link.
	PreviewQueryParam = "preview_token"
)

// PrivilegeChecker reports whether a request comes from a caller allowed to
// bypass the coming-soon page.
type PrivilegeChecker interface {
	IsPrivileged(r *http.Request) bool
}

// PrivilegeFunc adapts a function to PrivilegeChecker.
type PrivilegeFunc func(r *http.Request) bool

func (f PrivilegeFunc) IsPrivileged(r *http.Request) bool { return f(r) }

// Never is a PrivilegeChecker that treats every caller as a visitor.
var Never PrivilegeChecker = PrivilegeFunc(func(*http.Request) bool { return false })

// TokenVerifier validates preview tokens.
type TokenVerifier interface {
	Verify(raw string) (*preview.Claims, error)
}

// JWTPrivilege grants the bypass to callers presenting a valid preview JWT in
// the Authorization header, the preview cookie or the preview query parameter.
type JWTPrivilege struct {
	verifier TokenVerifier
}

// NewJWTPrivilege creates a JWT-backed PrivilegeChecker.
func NewJWTPrivilege(v TokenVerifier) *JWTPrivilege {
	return &JWTPrivilege{verifier: v}
}

// IsPrivileged implements PrivilegeChecker.
func (p *JWTPrivilege) IsPrivileged(r *http.Request) bool {
	for _, raw := range previewTokens(r) {
		if _, err := p.verifier.Verify(raw); err == nil {
			return true
		}
	}
	return false
}

// PreviewLink moves a valid preview token from the query string into the
// preview cookie and redirects to the same URL without it, keeping the token
// out of browser history and referrers. Invalid tokens are ignored.
func PreviewLink(v TokenVerifier, cookies gate.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.URL.Query().Get(PreviewQueryParam)
			if raw == "" || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			opts := []cookie.Option{cookie.WithPath("/")}
			if claims.ExpiresAt != nil {
				if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
					opts = append(opts, cookie.WithMaxAge(int(ttl.Seconds())))
				}
			}
			if err := cookies.Set(w, r, PreviewCookie, raw, opts...); err != nil {
				next.ServeHTTP(w, r)
				return
			}

			u := *r.URL
			q := u.Query()
			q.Del(PreviewQueryParam)
			u.RawQuery = q.Encode()
			response.Render(w, r, nil, response.RedirectSeeOther(u.RequestURI()))
		})
	}
}

func previewTokens(r *http.Request) []string {
	var tokens []string
	if auth := r.Header.Get("Authorization"); len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		tokens = append(tokens, strings.TrimSpace(auth[7:]))
	}
	if c, err := r.Cookie(PreviewCookie); err == nil && c.Value != "" {
		tokens = append(tokens, c.Value)
	}
	if q := r.URL.Query().Get(PreviewQueryParam); q != "" {
		tokens = append(tokens, q)
	}
	return tokens
}
