package middleware

import (
	"net/http"
)

// PagePolicy is the Content-Security-Policy of the coming-soon page: no
// scripts, one inline style block, the same-origin logo and a form that posts
// back to the page.
const PagePolicy = "default-src 'none'; style-src 'unsafe-inline'; img-src 'self'; form-action 'self'; frame-ancestors 'none'; base-uri 'none'"

// SecurityHeadersConfig lists the headers added to every response.
// Empty fields are not sent.
type SecurityHeadersConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	ContentTypeOptions      string // X-Content-Type-Options
	FrameOptions            string // X-Frame-Options
	StrictTransportSecurity string // Strict-Transport-Security, dropped when IsDevelopment
	ReferrerPolicy          string // Referrer-Policy
	PermissionsPolicy       string // Permissions-Policy
	CrossOriginOpenerPolicy string // Cross-Origin-Opener-Policy

	// ContentSecurityPolicy applies to the site behind the gate as well.
	// Leave it empty when that site sets its own policy.
	ContentSecurityPolicy string

	// CustomHeaders are added last and win over the fields above.
	CustomHeaders map[string]string

	IsDevelopment bool
}

var (
	// SiteSecurity sends no Content-Security-Policy, so it is safe in front of
	// any site. The coming-soon page adds PagePolicy itself.
	SiteSecurity = SecurityHeadersConfig{
		ContentTypeOptions:      "nosniff",
		FrameOptions:            "SAMEORIGIN",
		StrictTransportSecurity: "max-age=31536000; includeSubDomains",
		ReferrerPolicy:          "strict-origin-when-cross-origin",
		PermissionsPolicy:       "camera=(), microphone=(), geolocation=()",
		CrossOriginOpenerPolicy: "same-origin-allow-popups",
	}

	// StrictSecurity suits a static site with no inline assets that is never framed.
	StrictSecurity = SecurityHeadersConfig{
		ContentTypeOptions:      "nosniff",
		FrameOptions:            "DENY",
		StrictTransportSecurity: "max-age=63072000; includeSubDomains; preload",
		ReferrerPolicy:          "no-referrer",
		PermissionsPolicy:       "accelerometer=(), camera=(), geolocation=(), gyroscope=(), microphone=(), payment=(), usb=()",
		CrossOriginOpenerPolicy: "same-origin",
		ContentSecurityPolicy:   "default-src 'self'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'",
	}

	// DevelopmentSecurity never sends HSTS, which would pin localhost to HTTPS.
	DevelopmentSecurity = SecurityHeadersConfig{
		ContentTypeOptions: "nosniff",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      true,
	}
)

// SecurityHeaders creates a security headers middleware with SiteSecurity.
func SecurityHeaders() func(http.Handler) http.Handler {
	return SecurityHeadersWithConfig(SiteSecurity)
}

// SecurityHeadersStrict creates a security headers middleware with StrictSecurity.
func SecurityHeadersStrict() func(http.Handler) http.Handler {
	return SecurityHeadersWithConfig(StrictSecurity)
}

// SecurityHeadersForEnv picks DevelopmentSecurity for development environments
// and SiteSecurity otherwise.
func SecurityHeadersForEnv(env string) func(http.Handler) http.Handler {
	switch env {
	case "", "development", "dev", "local":
		return SecurityHeadersWithConfig(DevelopmentSecurity)
	default:
		return SecurityHeadersWithConfig(SiteSecurity)
	}
}

// SecurityHeadersWithConfig creates a security headers middleware with custom configuration.
// Headers are set before the handler runs so they also apply to error pages.
func SecurityHeadersWithConfig(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	if cfg.IsDevelopment {
		cfg.StrictTransportSecurity = ""
	}

	headers := make(http.Header)
	add := func(name, value string) {
		if value != "" {
			headers.Set(name, value)
		}
	}
	add("X-Content-Type-Options", cfg.ContentTypeOptions)
	add("X-Frame-Options", cfg.FrameOptions)
	add("Strict-Transport-Security", cfg.StrictTransportSecurity)
	add("Referrer-Policy", cfg.ReferrerPolicy)
	add("Permissions-Policy", cfg.PermissionsPolicy)
	add("Cross-Origin-Opener-Policy", cfg.CrossOriginOpenerPolicy)
	add("Content-Security-Policy", cfg.ContentSecurityPolicy)
	for name, value := range cfg.CustomHeaders {
		add(name, value)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip == nil || !cfg.Skip(r) {
				h := w.Header()
				for name, values := range headers {
					h.Set(name, values[0])
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
