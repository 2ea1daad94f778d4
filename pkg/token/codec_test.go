package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comingsoon/pkg/token"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestCodec_SignVerify(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec(testKey)

	t.Run("round trip", func(t *testing.T) {
		for _, secret := range []string{"letmein", "a", "pässwörd", strings.Repeat("x", 1024)} {
			tok, err := codec.Sign(secret)
			require.NoError(t, err)
			assert.Len(t, tok, token.Size)
			assert.Equal(t, strings.ToLower(tok), tok)
			assert.True(t, codec.Verify(tok, secret), secret)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := codec.Sign("letmein")
		require.NoError(t, err)
		b, err := token.NewCodec(testKey).Sign("letmein")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("different secret rejected", func(t *testing.T) {
		tok, err := codec.Sign("letmein")
		require.NoError(t, err)
		assert.False(t, codec.Verify(tok, "letmein2"))
		assert.False(t, codec.Verify(tok, ""))
	})

	t.Run("different key rejected", func(t *testing.T) {
		tok, err := codec.Sign("letmein")
		require.NoError(t, err)
		other := token.NewCodec([]byte("another-key-another-key-another!"))
		assert.False(t, other.Verify(tok, "letmein"))
	})

	t.Run("any single character mutation rejected", func(t *testing.T) {
		tok, err := codec.Sign("letmein")
		require.NoError(t, err)

		for i := range len(tok) {
			for _, c := range []byte{'0', 'f', 'A', 'z'} {
				if tok[i] == c {
					continue
				}
				mutated := tok[:i] + string(c) + tok[i+1:]
				assert.False(t, codec.Verify(mutated, "letmein"), "position %d char %q", i, c)
			}
		}
	})

	t.Run("truncated and empty tokens rejected", func(t *testing.T) {
		tok, err := codec.Sign("letmein")
		require.NoError(t, err)
		assert.False(t, codec.Verify(tok[:len(tok)-1], "letmein"))
		assert.False(t, codec.Verify(tok+"0", "letmein"))
		assert.False(t, codec.Verify("", "letmein"))
	})
}

func TestCodec_NoKey(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec(nil)

	_, err := codec.Sign("letmein")
	assert.ErrorIs(t, err, token.ErrNoSigningKey)

	tok, err := token.NewCodec(testKey).Sign("letmein")
	require.NoError(t, err)
	assert.False(t, codec.Verify(tok, "letmein"))

	var nilCodec *token.Codec
	assert.False(t, nilCodec.Verify(tok, "letmein"))
}

func TestNewCodec_CopiesKey(t *testing.T) {
	t.Parallel()

	key := append([]byte(nil), testKey...)
	codec := token.NewCodec(key)
	tok, err := codec.Sign("letmein")
	require.NoError(t, err)

	key[0] ^= 0xff
	assert.True(t, codec.Verify(tok, "letmein"))
}
