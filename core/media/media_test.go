package media_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comingsoon/core/media"
)

func TestLocalLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "brand"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brand", "logo.png"), []byte("png-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.bin"), bytes.Repeat([]byte("x"), 64), 0o644))

	outside := filepath.Join(filepath.Dir(dir), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	loader, err := media.NewLocalLoader(dir, 32)
	require.NoError(t, err)
	t.Cleanup(func() { loader.Close() })

	ctx := context.Background()

	t.Run("reads file", func(t *testing.T) {
		data, err := loader.Load(ctx, "brand/logo.png")
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(ctx, "brand/none.png")
		assert.ErrorIs(t, err, media.ErrFileNotFound)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := loader.Load(ctx, "big.bin")
		assert.ErrorIs(t, err, media.ErrTooLarge)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := loader.Load(ctx, "brand")
		assert.ErrorIs(t, err, media.ErrInvalidPath)
	})

	t.Run("rejects unclean keys", func(t *testing.T) {
		for _, key := range []string{"", "../outside.txt", "/brand/logo.png", `brand\logo.png`, "brand/../brand/logo.png", "brand//logo.png"} {
			_, err := loader.Load(ctx, key)
			assert.ErrorIs(t, err, media.ErrInvalidPath, key)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := loader.Load(ctx, "brand/logo.png")
		assert.ErrorIs(t, err, media.ErrOperationCanceled)
	})
}

func TestNewLocalLoader(t *testing.T) {
	_, err := media.NewLocalLoader("", 0)
	assert.ErrorIs(t, err, media.ErrInvalidConfig)

	_, err = media.NewLocalLoader(filepath.Join(t.TempDir(), "missing"), 0)
	assert.ErrorIs(t, err, media.ErrInvalidConfig)
}

func TestReadLimited(t *testing.T) {
	data, err := media.ReadLimited(strings.NewReader("12345"), 5)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(data))

	_, err = media.ReadLimited(strings.NewReader("123456"), 5)
	assert.ErrorIs(t, err, media.ErrTooLarge)
}

func TestContentType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	assert.Equal(t, "image/png", media.ContentType(png))
	assert.Equal(t, "image/svg+xml", media.ContentType([]byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`)))
	assert.Equal(t, "text/plain; charset=utf-8", media.ContentType([]byte("hello")))
}
