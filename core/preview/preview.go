package preview

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	Issuer   = "comingsoon"
	Audience = "comingsoon-preview"
	Scope    = "preview"
)

// Config holds preview token settings.
type Config struct {
	Secret string        `env:"PREVIEW_JWT_SECRET"`
	TTL    time.Duration `env:"PREVIEW_TTL" envDefault:"24h"`
}

// Claims identify a caller allowed to see the site while it is gated.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// Service mints and verifies HS256 preview tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns a Service. Tokens minted without an explicit TTL use cfg.TTL.
func New(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrNoSecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{secret: []byte(cfg.Secret), ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy of s using now as the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	c := *s
	c.now = now
	return &c
}

// Mint issues a token for subject. A zero ttl selects the configured default.
func (s *Service) Mint(subject string, ttl time.Duration) (string, time.Time, error) {
	if ttl == 0 {
		ttl = s.ttl
	}
	if ttl < 0 {
		return "", time.Time{}, ErrInvalidTTL
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Scope: Scope,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("preview: sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses raw and checks signature, issuer, audience, expiry and scope.
func (s *Service) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims.Scope != Scope {
		return nil, fmt.Errorf("%w: scope %q", ErrInvalidToken, claims.Scope)
	}
	return claims, nil
}
