// Package token provides deterministic access tokens bound to a shared secret.
//
// A token is the lowercase hex HMAC-SHA256 of a namespaced message built from the
// shared secret, keyed with a process-wide signing key:
//
//	token = hex(HMAC-SHA256(key, "comingsoon-access|" + secret))
//
// The same secret and key always produce the same token, so a token can be stored
// client-side (for example in a cookie) and checked on every request without any
// server-side session storage. Changing the secret invalidates every token issued
// for the previous value.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/comingsoon/pkg/token"
//
//	codec := token.NewCodec(signingKey)
//
//	// Mint a token after a successful challenge
//	tok, err := codec.Sign(password)
//	if err != nil {
//		// ErrNoSigningKey: treat as not authorized
//	}
//
//	// Check a stored token on later requests
//	if codec.Verify(storedToken, password) {
//		// caller is authorized
//	}
//
// # Error Handling
//
// Sign returns ErrNoSigningKey when the codec has no key. Verify never returns an
// error: a missing key, a malformed token or a signature mismatch all report false.
//
// # Security Notes
//
// Verify compares the encoded tokens with crypto/subtle in constant time. The
// signing key must never be logged; the codec does not expose it.
package token
