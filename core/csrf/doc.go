// Package csrf issues and validates stateless, action-scoped anti-forgery tokens.
//
// A token is an HMAC-SHA256 over the issue time, a random nonce, the action name
// and a per-browser seed kept in a cookie. Validation recomputes the MAC, checks
// that the action and seed match and that the token is younger than the TTL.
// No server-side storage is involved.
//
//	p, err := csrf.New(key, cookies)
//	tok, err := p.Issue(w, r, "challenge-entry")
//	// render tok into a hidden "_csrf" field
//
//	if err := p.Validate(r, "challenge-entry", r.PostFormValue("_csrf")); err != nil {
//		// reject
//	}
package csrf
