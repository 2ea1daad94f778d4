package branding_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comingsoon/core/branding"
	"github.com/dmitrymomot/comingsoon/core/media"
	"github.com/dmitrymomot/comingsoon/pkg/accent"
)

type countingLoader struct {
	calls atomic.Int32
	data  map[string][]byte
	err   error
}

func (l *countingLoader) Load(_ context.Context, key string) ([]byte, error) {
	l.calls.Add(1)
	if l.err != nil {
		return nil, l.err
	}
	data, ok := l.data[key]
	if !ok {
		return nil, media.ErrFileNotFound
	}
	return data, nil
}

func solidPNG(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSource_Logo(t *testing.T) {
	data := solidPNG(t, color.RGBA{R: 200, G: 30, B: 30, A: 255})
	loader := &countingLoader{data: map[string][]byte{"logo.png": data}}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	src := branding.New(loader, branding.WithTTL(time.Minute), branding.WithClock(func() time.Time { return now }))

	logo, err := src.Logo(context.Background(), "logo.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", logo.ContentType)
	assert.Equal(t, data, logo.Data)
	assert.True(t, logo.Accent.Derived)
	assert.Equal(t, int32(1), loader.calls.Load())

	t.Run("cached", func(t *testing.T) {
		_, err := src.Logo(context.Background(), "logo.png")
		require.NoError(t, err)
		assert.Equal(t, int32(1), loader.calls.Load())
	})

	t.Run("expired", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		_, err := src.Logo(context.Background(), "logo.png")
		require.NoError(t, err)
		assert.Equal(t, int32(2), loader.calls.Load())
	})

	t.Run("invalidate", func(t *testing.T) {
		src.Invalidate()
		_, err := src.Logo(context.Background(), "logo.png")
		require.NoError(t, err)
		assert.Equal(t, int32(3), loader.calls.Load())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := src.Logo(context.Background(), "nope.png")
		assert.ErrorIs(t, err, media.ErrFileNotFound)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := src.Logo(context.Background(), "")
		assert.ErrorIs(t, err, media.ErrFileNotFound)
	})
}

func TestSource_Accent(t *testing.T) {
	t.Run("falls back on error", func(t *testing.T) {
		src := branding.New(&countingLoader{err: errors.New("boom")})
		assert.Equal(t, accent.DefaultAccent(), src.Accent(context.Background(), "logo.png"))
	})

	t.Run("nil loader", func(t *testing.T) {
		src := branding.New(nil)
		assert.Equal(t, accent.DefaultAccent(), src.Accent(context.Background(), "logo.png"))
	})

	t.Run("undecodable logo", func(t *testing.T) {
		src := branding.New(&countingLoader{data: map[string][]byte{"x": []byte("not an image")}})
		assert.Equal(t, accent.DefaultAccent(), src.Accent(context.Background(), "x"))
	})

	t.Run("derived", func(t *testing.T) {
		data := solidPNG(t, color.RGBA{R: 10, G: 120, B: 60, A: 255})
		src := branding.New(&countingLoader{data: map[string][]byte{"logo.png": data}})
		got := src.Accent(context.Background(), "logo.png")
		assert.Equal(t, accent.Derive(data), got)
	})
}

func TestSource_ConcurrentLoads(t *testing.T) {
	data := solidPNG(t, color.RGBA{R: 50, G: 50, B: 200, A: 255})
	loader := &countingLoader{data: map[string][]byte{"logo.png": data}}
	src := branding.New(loader)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := src.Logo(context.Background(), "logo.png")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, loader.calls.Load(), int32(16))
	assert.GreaterOrEqual(t, loader.calls.Load(), int32(1))
}
