package gate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	infoToken       = "comingsoon/access-token"
	infoAntiForgery = "comingsoon/anti-forgery"
	infoCookie      = "comingsoon/cookie"
	derivedKeySize  = 32
)

// Keys holds the purpose-separated keys derived from the application signing key.
type Keys struct {
	Token       []byte
	AntiForgery []byte
	Cookie      []byte
}

// CookieSecret returns the cookie key in the string form cookie.New expects.
func (k Keys) CookieSecret() string {
	return hex.EncodeToString(k.Cookie)
}

// DeriveKeys expands signingKey with HKDF-SHA256 into one key per purpose, so a
// leaked anti-forgery token never helps forge an access token.
func DeriveKeys(signingKey []byte) (Keys, error) {
	if len(signingKey) == 0 {
		return Keys{}, ErrNoSigningKey
	}

	var keys Keys
	for _, k := range []struct {
		info string
		dst  *[]byte
	}{
		{infoToken, &keys.Token},
		{infoAntiForgery, &keys.AntiForgery},
		{infoCookie, &keys.Cookie},
	} {
		buf := make([]byte, derivedKeySize)
		if _, err := io.ReadFull(hkdf.New(sha256.New, signingKey, nil, []byte(k.info)), buf); err != nil {
			return Keys{}, fmt.Errorf("gate: derive %s key: %w", k.info, err)
		}
		*k.dst = buf
	}
	return keys, nil
}
