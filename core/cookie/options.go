package cookie

import "net/http"

// Options are the attributes written with a cookie. The Manager holds the
// defaults; per-call Option values override them.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite

	// AutoSecure sets Secure when the request arrived over TLS or through a
	// proxy reporting https.
	AutoSecure bool
}

// Option overrides one cookie attribute.
type Option func(*Options)

func WithPath(path string) Option { return func(o *Options) { o.Path = path } }
func WithDomain(domain string) Option { return func(o *Options) { o.Domain = domain } }
func WithSecure(secure bool) Option { return func(o *Options) { o.Secure = secure } }
func WithAutoSecure(auto bool) Option { return func(o *Options) { o.AutoSecure = auto } }
func WithHTTPOnly(httpOnly bool) Option { return func(o *Options) { o.HttpOnly = httpOnly } }

// WithMaxAge sets Max-Age in seconds. Zero leaves a session cookie and a
// negative value deletes the cookie.
func WithMaxAge(seconds int) Option { return func(o *Options) { o.MaxAge = seconds } }

func WithSameSite(mode http.SameSite) Option { return func(o *Options) { o.SameSite = mode } }

func applyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
