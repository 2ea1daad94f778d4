package gate

import (
	"crypto/sha256"
	"crypto/subtle"
)

// State is the outcome of evaluating the gate for one request.
type State int

const (
	// Disabled means no secret is configured and every caller is authorized.
	Disabled State = iota
	// Locked means the caller must pass the challenge first.
	Locked
	// Unlocked means the caller holds a valid token or just passed the challenge.
	Unlocked
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// Input is everything Evaluate needs from one request.
type Input struct {
	Secret        string
	StoredToken   string
	Submitted     bool
	Credential    string
	AntiForgeryOK bool
}

// Result tells the caller how to respond.
// When IssueToken is set the caller persists it and redirects (post-redirect-get);
// protected content is never rendered in the same response.
type Result struct {
	State      State
	IssueToken string
	Redirect   bool
	Error      error
}

// Authorized reports whether protected content may be served.
func (r Result) Authorized() bool {
	return r.State != Locked && !r.Redirect
}

// Evaluate decides the gate state. It is stateless between calls.
func (g *Gate) Evaluate(in Input) Result {
	if in.Secret == "" {
		return Result{State: Disabled}
	}

	if in.StoredToken != "" && g.codec.Verify(in.StoredToken, in.Secret) {
		return Result{State: Unlocked}
	}

	if !in.Submitted {
		return Result{State: Locked}
	}

	// Both checks run so the anti-forgery outcome does not change timing.
	match := credentialsMatch(in.Credential, in.Secret)
	if !in.AntiForgeryOK || !match {
		return Result{State: Locked, Error: ErrIncorrectPassword}
	}

	tok, err := g.codec.Sign(in.Secret)
	if err != nil {
		return Result{State: Locked, Error: ErrUnlockFailed}
	}

	return Result{State: Unlocked, IssueToken: tok, Redirect: true}
}

// credentialsMatch compares fixed-size digests so the comparison time does not
// depend on where the inputs differ or on their lengths.
func credentialsMatch(given, secret string) bool {
	a := sha256.Sum256([]byte(given))
	b := sha256.Sum256([]byte(secret))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
