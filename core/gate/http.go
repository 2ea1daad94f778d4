package gate

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/comingsoon/core/cookie"
	"github.com/dmitrymomot/comingsoon/core/logger"
	"github.com/dmitrymomot/comingsoon/pkg/token"
)

// CookieStore is the subset of cookie.Manager the gate needs.
type CookieStore interface {
	Set(w http.ResponseWriter, r *http.Request, name, value string, opts ...cookie.Option) error
	Get(r *http.Request, name string) (string, error)
}

// AntiForgery issues and validates action-scoped tokens.
type AntiForgery interface {
	Issue(w http.ResponseWriter, r *http.Request, action string) (string, error)
	Validate(r *http.Request, action, token string) error
}

// Gate binds token evaluation to HTTP requests. Safe for concurrent use.
type Gate struct {
	codec   *token.Codec
	cookies CookieStore
	forms   AntiForgery
	cfg     Config
	logger  *slog.Logger
}

// New creates a Gate.
func New(codec *token.Codec, cookies CookieStore, forms AntiForgery, opts ...Option) *Gate {
	g := &Gate{
		codec:   codec,
		cookies: cookies,
		forms:   forms,
		cfg:     DefaultConfig(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Handle evaluates the gate for r. On a successful challenge it writes the access
// cookie; the caller must then redirect instead of rendering content. The access
// cookie is always HttpOnly and SameSite=Lax, and Secure on encrypted requests,
// whatever the cookie manager defaults are.
func (g *Gate) Handle(w http.ResponseWriter, r *http.Request, secret string) Result {
	in := Input{Secret: secret}
	if secret == "" {
		return g.Evaluate(in)
	}

	if stored, err := g.cookies.Get(r, g.cfg.CookieName); err == nil {
		in.StoredToken = stored
	}

	// Only a locked visitor's POST is read, so forms of the unlocked site keep their body.
	if r.Method == http.MethodPost && !g.codec.Verify(in.StoredToken, secret) {
		g.readChallenge(w, r, &in)
	}

	res := g.Evaluate(in)

	if res.IssueToken != "" {
		err := g.cookies.Set(w, r, g.cfg.CookieName, res.IssueToken,
			cookie.WithPath(g.cfg.CookiePath),
			cookie.WithMaxAge(int(g.cfg.TokenTTL.Seconds())),
			cookie.WithHTTPOnly(true),
			cookie.WithSameSite(http.SameSiteLaxMode),
			cookie.WithAutoSecure(true),
		)
		if err != nil {
			g.logger.ErrorContext(r.Context(), "failed to persist access cookie",
				logger.Component("gate"), logger.Error(err))
			res = Result{State: Locked, Error: ErrUnlockFailed}
		}
	}

	if in.Submitted {
		g.logger.InfoContext(r.Context(), "challenge evaluated",
			logger.Component("gate"),
			logger.GateState(res.State.String()),
			logger.Result(resultName(res)),
		)
	}

	return res
}

// ChallengeToken returns an anti-forgery token for the challenge form.
func (g *Gate) ChallengeToken(w http.ResponseWriter, r *http.Request) (string, error) {
	return g.forms.Issue(w, r, Action)
}

func (g *Gate) readChallenge(w http.ResponseWriter, r *http.Request, in *Input) {
	r.Body = http.MaxBytesReader(w, r.Body, g.cfg.MaxFormBytes)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			in.Submitted = true
		}
		return
	}

	if r.PostForm.Get(FieldSubmit) == "" {
		return
	}

	in.Submitted = true
	in.Credential = r.PostForm.Get(FieldPassword)
	in.AntiForgeryOK = g.forms.Validate(r, Action, r.PostForm.Get(FieldAntiForgery)) == nil
}

func resultName(res Result) string {
	switch {
	case res.IssueToken != "":
		return "unlocked"
	case errors.Is(res.Error, ErrIncorrectPassword):
		return "rejected"
	case res.Error != nil:
		return "failed"
	default:
		return "none"
	}
}
