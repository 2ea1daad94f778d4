// Package gate implements the shared-password access gate.
//
// A visitor who submits the configured password receives a token in the
// comingsoon_access cookie. The token is an HMAC of the password under a
// server key (see pkg/token), so the gate keeps no session state: any request
// carrying a token that still matches the current password is let through, and
// changing the password revokes every token at once.
//
// Evaluate is the pure decision:
//
//	res := g.Evaluate(gate.Input{
//		Secret:        settings.Password,
//		StoredToken:   cookieValue,
//		Submitted:     true,
//		Credential:    r.PostFormValue(gate.FieldPassword),
//		AntiForgeryOK: true,
//	})
//
// Handle wraps it for HTTP: it reads the cookie and the challenge form,
// validates the anti-forgery token for Action and writes the cookie when a new
// token is issued. A Result with Redirect set must be answered with a redirect
// to the same URL; protected content is never rendered in that response.
//
// Failed challenges all report ErrIncorrectPassword. Use Message to turn a
// Result error into visitor-facing text.
//
// DeriveKeys splits the application signing key into independent keys for
// access tokens, anti-forgery tokens and cookie signatures.
package gate
