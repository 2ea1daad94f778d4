// Package cookie provides HTTP cookie management with HMAC signing and key rotation.
//
// The manager applies secure defaults to every cookie (HttpOnly, SameSite=Lax,
// path "/") and sets the Secure flag automatically when a request reached the
// application over TLS, directly or behind a proxy that sets X-Forwarded-Proto.
//
// # Basic Usage
//
//	manager, err := cookie.New([]string{"your-32-char-secret-key-here!!!!"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = manager.Set(w, r, "comingsoon_access", token, cookie.WithMaxAge(7*24*3600))
//
//	value, err := manager.Get(r, "comingsoon_access")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// not unlocked yet
//	}
//
//	manager.Delete(w, "comingsoon_access")
//
// # Signed Cookies
//
// SetSigned appends an HMAC-SHA256 signature to the value. GetSigned verifies it
// against every configured secret, so secrets can be rotated by prepending a new
// one:
//
//	err := manager.SetSigned(w, r, "comingsoon_seed", seed)
//	seed, err := manager.GetSigned(r, "comingsoon_seed")
//	if errors.Is(err, cookie.ErrInvalidSignature) {
//		// tampered
//	}
//
// # Configuration
//
// Config is loaded from COOKIE_* environment variables:
//
//	var cfg cookie.Config
//	config.MustLoad(&cfg)
//	manager, err := cookie.NewFromConfig(cfg, []string{derivedKey})
//
// Cookies larger than 4KB are rejected with ErrCookieTooLarge.
package cookie
