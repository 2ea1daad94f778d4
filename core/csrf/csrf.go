package csrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/comingsoon/core/cookie"
)

const nonceSize = 16

// CookieStore is the subset of cookie.Manager used to persist the seed.
type CookieStore interface {
	Set(w http.ResponseWriter, r *http.Request, name, value string, opts ...cookie.Option) error
	Get(r *http.Request, name string) (string, error)
}

// Protector issues and validates anti-forgery tokens. Safe for concurrent use.
type Protector struct {
	key        []byte
	cookies    CookieStore
	cookieName string
	ttl        time.Duration
	now        func() time.Time
}

// New creates a Protector signing with key and storing seeds through cookies.
func New(key []byte, cookies CookieStore, opts ...Option) (*Protector, error) {
	if len(key) == 0 {
		return nil, ErrNoKey
	}
	if cookies == nil {
		return nil, fmt.Errorf("csrf: cookie store is required")
	}

	cfg := DefaultConfig()
	p := &Protector{
		key:        append([]byte(nil), key...),
		cookies:    cookies,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Issue returns a token for action, creating the seed cookie when the browser
// does not carry one yet.
func (p *Protector) Issue(w http.ResponseWriter, r *http.Request, action string) (string, error) {
	seed, err := p.seed(r)
	if err != nil {
		seed = uuid.NewString()
		if err := p.cookies.Set(w, r, p.cookieName, seed); err != nil {
			return "", fmt.Errorf("csrf: store seed: %w", err)
		}
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("csrf: generate nonce: %w", err)
	}

	payload := strings.Join([]string{
		strconv.FormatInt(p.now().UTC().Unix(), 10),
		hex.EncodeToString(nonce),
	}, ":")

	sig := p.mac(payload, action, seed)
	return base64.RawURLEncoding.EncodeToString([]byte(payload + ":" + hex.EncodeToString(sig))), nil
}

// Validate checks token against action and the seed cookie on r.
func (p *Protector) Validate(r *http.Request, action, token string) error {
	if token == "" {
		return ErrTokenMissing
	}

	seed, err := p.seed(r)
	if err != nil {
		return ErrSeedMissing
	}

	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return ErrTokenInvalid
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 3 {
		return ErrTokenInvalid
	}

	issuedAt, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return ErrTokenInvalid
	}

	sig, err := hex.DecodeString(parts[2])
	if err != nil {
		return ErrTokenInvalid
	}

	if !hmac.Equal(sig, p.mac(parts[0]+":"+parts[1], action, seed)) {
		return ErrTokenInvalid
	}

	if p.now().UTC().After(time.Unix(issuedAt, 0).Add(p.ttl)) {
		return ErrTokenExpired
	}

	return nil
}

func (p *Protector) seed(r *http.Request) (string, error) {
	seed, err := p.cookies.Get(r, p.cookieName)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(seed); err != nil {
		return "", err
	}
	return seed, nil
}

func (p *Protector) mac(payload, action, seed string) []byte {
	m := hmac.New(sha256.New, p.key)
	m.Write([]byte(payload))
	m.Write([]byte{0})
	m.Write([]byte(action))
	m.Write([]byte{0})
	m.Write([]byte(seed))
	return m.Sum(nil)
}
