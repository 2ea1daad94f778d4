package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Namespace separates access tokens from any other HMAC computed with the same key.
const Namespace = "comingsoon-access"

// Size is the length of an encoded token in characters.
const Size = sha256.Size * 2

// Codec signs and verifies access tokens. Immutable after construction and safe
// for concurrent use.
type Codec struct {
	key []byte
}

// NewCodec creates a codec keyed with the given signing key.
// An empty key yields a codec that fails closed.
func NewCodec(key []byte) *Codec {
	k := make([]byte, len(key))
	copy(k, key)
	return &Codec{key: k}
}

// Sign returns the token for secret.
func (c *Codec) Sign(secret string) (string, error) {
	if c == nil || len(c.key) == 0 {
		return "", ErrNoSigningKey
	}

	m := hmac.New(sha256.New, c.key)
	m.Write([]byte(Namespace + "|" + secret))
	return hex.EncodeToString(m.Sum(nil)), nil
}

// Verify reports whether token was produced by Sign for the same secret and key.
// The encoded form is compared, so a token differing only in letter case is rejected.
func (c *Codec) Verify(token, secret string) bool {
	expected, err := c.Sign(secret)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}
