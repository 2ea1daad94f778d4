package settings_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comingsoon/core/settings"
)

func sample() settings.Settings {
	return settings.Settings{
		Enabled:  true,
		Title:    "Launching soon",
		Message:  "See you **Monday**.",
		LogoKey:  "brand/logo.png",
		Password: "open-sesame",
	}
}

func TestDefaults(t *testing.T) {
	d := settings.Defaults()
	assert.False(t, d.Enabled)
	assert.Equal(t, "Coming Soon", d.Title)
	assert.Equal(t, "We are putting the finishing touches on something great. Stay tuned!", d.Message)
	assert.Empty(t, d.LogoKey)
	assert.Empty(t, d.Password)
}

func TestSanitize(t *testing.T) {
	s := settings.Sanitize(settings.Settings{
		Title:    "  <script>x</script>Big\n launch ",
		Message:  "  hello\x00 world  ",
		LogoKey:  "../../etc/passwd",
		Password: "pa\x07ss word ",
	})
	assert.Equal(t, "xBig launch", s.Title)
	assert.Equal(t, "hello world", s.Message)
	assert.Equal(t, "etc/passwd", s.LogoKey)
	assert.Equal(t, "pass word ", s.Password)

	t.Run("empty title falls back", func(t *testing.T) {
		assert.Equal(t, settings.DefaultTitle, settings.Sanitize(settings.Settings{Title: " <b></b> "}).Title)
	})

	t.Run("long title is truncated", func(t *testing.T) {
		s := settings.Sanitize(settings.Settings{Title: strings.Repeat("a", 500)})
		assert.Len(t, s.Title, 120)
	})
}

// storeContract runs the behaviour every Store must share.
func storeContract(t *testing.T, store settings.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, settings.ErrNotFound)

	saved, err := settings.Save(ctx, store, sample())
	require.NoError(t, err)
	assert.Equal(t, sample(), saved)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	next := sample()
	next.Enabled = false
	next.Password = ""
	require.NoError(t, store.Save(ctx, next))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, got)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, settings.NewMemoryStore())

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := settings.NewMemoryStore().Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileStore(t *testing.T) {
	t.Run("contract", func(t *testing.T) {
		storeContract(t, settings.NewFileStore(filepath.Join(t.TempDir(), "nested", "settings.toml")))
	})

	t.Run("written file is toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		require.NoError(t, settings.NewFileStore(path).Save(context.Background(), sample()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `title = "Launching soon"`)
		assert.Contains(t, string(data), "enabled = true")

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		require.NoError(t, os.WriteFile(path, []byte("enabled = true\n"), 0o600))

		s, err := settings.NewFileStore(path).Load(context.Background())
		require.NoError(t, err)
		assert.True(t, s.Enabled)
		assert.Equal(t, settings.DefaultTitle, s.Title)
		assert.Equal(t, settings.DefaultMessage, s.Message)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		require.NoError(t, os.WriteFile(path, []byte("enabled = = true"), 0o600))

		_, err := settings.NewFileStore(path).Load(context.Background())
		assert.ErrorIs(t, err, settings.ErrLoadFailed)
	})
}

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	if f.data == nil {
		f.data = map[string]string{}
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStore(t *testing.T) {
	t.Run("contract", func(t *testing.T) {
		store, err := settings.NewRedisStore(&fakeRedis{}, "")
		require.NoError(t, err)
		storeContract(t, store)
	})

	t.Run("stores json under the key", func(t *testing.T) {
		client := &fakeRedis{}
		store, err := settings.NewRedisStore(client, "site:settings")
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), sample()))
		assert.JSONEq(t, `{"enabled":true,"title":"Launching soon","message":"See you **Monday**.","logo_key":"brand/logo.png","password":"open-sesame"}`,
			client.data["site:settings"])
	})

	t.Run("backend error", func(t *testing.T) {
		store, err := settings.NewRedisStore(&fakeRedis{err: errors.New("connection refused")}, "")
		require.NoError(t, err)
		_, err = store.Load(context.Background())
		assert.ErrorIs(t, err, settings.ErrLoadFailed)
		assert.Error(t, store.Save(context.Background(), sample()))
	})

	t.Run("corrupt document", func(t *testing.T) {
		store, err := settings.NewRedisStore(&fakeRedis{data: map[string]string{settings.DefaultRedisKey: "{"}}, "")
		require.NoError(t, err)
		_, err = store.Load(context.Background())
		assert.ErrorIs(t, err, settings.ErrLoadFailed)
	})

	t.Run("nil client", func(t *testing.T) {
		_, err := settings.NewRedisStore(nil, "")
		assert.ErrorIs(t, err, settings.ErrNilClient)
	})
}

type fakeRow struct {
	s   *settings.Settings
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.s.Enabled
	*dest[1].(*string) = r.s.Title
	*dest[2].(*string) = r.s.Message
	*dest[3].(*string) = r.s.LogoKey
	*dest[4].(*string) = r.s.Password
	return nil
}

type fakeDB struct {
	row     *settings.Settings
	err     error
	lastSQL string
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL = sql
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	if f.row == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{s: f.row}
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL = sql
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	f.row = &settings.Settings{
		Enabled:  args[0].(bool),
		Title:    args[1].(string),
		Message:  args[2].(string),
		LogoKey:  args[3].(string),
		Password: args[4].(string),
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestPostgresStore(t *testing.T) {
	t.Run("contract", func(t *testing.T) {
		store, err := settings.NewPostgresStore(&fakeDB{})
		require.NoError(t, err)
		storeContract(t, store)
	})

	t.Run("upsert", func(t *testing.T) {
		db := &fakeDB{}
		store, err := settings.NewPostgresStore(db)
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), sample()))
		assert.Contains(t, db.lastSQL, "ON CONFLICT (id) DO UPDATE")
	})

	t.Run("backend error", func(t *testing.T) {
		store, err := settings.NewPostgresStore(&fakeDB{err: errors.New("conn closed")})
		require.NoError(t, err)
		_, err = store.Load(context.Background())
		assert.ErrorIs(t, err, settings.ErrLoadFailed)
	})

	t.Run("migrations are embedded", func(t *testing.T) {
		data, err := settings.Migrations.ReadFile(settings.MigrationsDir + "/00001_create_settings.sql")
		require.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up")
		assert.Contains(t, string(data), "comingsoon_settings")
	})
}

type flakyStore struct {
	settings.MemoryStore
	fail  bool
	loads int
}

func (f *flakyStore) Load(ctx context.Context) (settings.Settings, error) {
	f.loads++
	if f.fail {
		return settings.Settings{}, errors.New("backend down")
	}
	return f.MemoryStore.Load(ctx)
}

func TestProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when nothing saved", func(t *testing.T) {
		p := settings.NewProvider(settings.NewMemoryStore())
		assert.Equal(t, settings.Defaults(), p.Current(ctx))
		assert.NoError(t, p.Check(ctx))
	})

	t.Run("caches for ttl", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		store := &flakyStore{}
		require.NoError(t, store.Save(ctx, sample()))
		p := settings.NewProvider(store, settings.WithCacheTTL(time.Minute), settings.WithClock(func() time.Time { return now }))

		assert.Equal(t, sample(), p.Current(ctx))
		assert.Equal(t, sample(), p.Current(ctx))
		assert.Equal(t, 1, store.loads)

		now = now.Add(2 * time.Minute)
		p.Current(ctx)
		assert.Equal(t, 2, store.loads)

		p.Invalidate()
		p.Current(ctx)
		assert.Equal(t, 3, store.loads)
	})

	t.Run("keeps last good value on failure", func(t *testing.T) {
		store := &flakyStore{}
		require.NoError(t, store.Save(ctx, sample()))
		p := settings.NewProvider(store, settings.WithCacheTTL(0))

		assert.Equal(t, sample(), p.Current(ctx))
		store.fail = true
		assert.Equal(t, sample(), p.Current(ctx))
		assert.Error(t, p.Check(ctx))
	})

	t.Run("defaults on failure without history", func(t *testing.T) {
		p := settings.NewProvider(&flakyStore{fail: true})
		assert.Equal(t, settings.Defaults(), p.Current(ctx))
	})

	t.Run("sanitizes loaded values", func(t *testing.T) {
		store := settings.NewMemoryStore()
		require.NoError(t, store.Save(ctx, settings.Settings{Title: "<i>Hi</i>"}))
		assert.Equal(t, "Hi", settings.NewProvider(store).Current(ctx).Title)
	})
}

func TestNewStore(t *testing.T) {
	for _, backend := range []string{"", settings.BackendMemory, settings.BackendFile} {
		store, err := settings.NewStore(settings.Config{Backend: backend, File: filepath.Join(t.TempDir(), "s.toml")}, settings.Backends{})
		require.NoError(t, err, backend)
		assert.NotNil(t, store)
	}

	_, err := settings.NewStore(settings.Config{Backend: settings.BackendRedis}, settings.Backends{})
	assert.ErrorIs(t, err, settings.ErrNilClient)

	_, err = settings.NewStore(settings.Config{Backend: settings.BackendPostgres}, settings.Backends{})
	assert.ErrorIs(t, err, settings.ErrNilClient)

	store, err := settings.NewStore(settings.Config{Backend: settings.BackendRedis}, settings.Backends{Redis: &fakeRedis{}})
	require.NoError(t, err)
	assert.IsType(t, &settings.RedisStore{}, store)

	_, err = settings.NewStore(settings.Config{Backend: "etcd"}, settings.Backends{})
	assert.ErrorIs(t, err, settings.ErrUnknownBackend)
}
