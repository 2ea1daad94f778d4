package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const (
	// MaxCookieSize is the maximum size for a cookie (4KB).
	MaxCookieSize = 4096
	// minSecretLength is the minimum secret length for HMAC keys.
	minSecretLength = 32
)

// Manager handles HTTP cookie operations with signing and key rotation.
// Safe for concurrent use.
type Manager struct {
	secrets  []string
	defaults Options
	maxSize  int
}

// New creates a cookie manager. The first secret signs new cookies; all secrets
// are accepted when verifying, newest first.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i := range len(secrets) {
		if len(secrets[i]) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d",
				ErrSecretTooShort, i, len(secrets[i]), minSecretLength)
		}
	}

	defaults := applyOptions(Options{
		Path:       "/",
		HttpOnly:   true,
		SameSite:   http.SameSiteLaxMode,
		AutoSecure: true,
	}, opts)

	return &Manager{
		secrets:  secrets,
		defaults: defaults,
		maxSize:  MaxCookieSize,
	}, nil
}

// Defaults returns the attributes applied to every cookie.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Set stores a raw cookie value.
func (m *Manager) Set(w http.ResponseWriter, r *http.Request, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure || (options.AutoSecure && IsSecureRequest(r)),
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if options.MaxAge > 0 {
		c.Expires = time.Now().Add(time.Duration(options.MaxAge) * time.Second).UTC()
	}

	if size := len(c.String()); size > m.maxSize {
		return ErrCookieTooLarge{Name: name, Size: size, Max: m.maxSize}
	}

	http.SetCookie(w, c)
	return nil
}

// Get retrieves a raw cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// SetSigned stores value with an HMAC-SHA256 signature appended.
func (m *Manager) SetSigned(w http.ResponseWriter, r *http.Request, name, value string, opts ...Option) error {
	return m.Set(w, r, name, m.sign(value), opts...)
}

// GetSigned retrieves and verifies a signed cookie value.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

// IsSecureRequest reports whether r reached the application over TLS, either
// directly or through a proxy that set X-Forwarded-Proto.
func IsSecureRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func (m *Manager) sign(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "." + signature(m.secrets[0], []byte(value))
}

func (m *Manager) verify(signed string) (string, error) {
	encodedValue, sig, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.RawURLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	valid := slices.ContainsFunc(m.secrets, func(secret string) bool {
		return subtle.ConstantTimeCompare([]byte(sig), []byte(signature(secret, value))) == 1
	})
	if !valid {
		return "", ErrInvalidSignature
	}

	return string(value), nil
}

func signature(secret string, value []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(value)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
