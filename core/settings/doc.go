// Package settings stores the administrator-controlled state of the coming-soon
// screen: whether it is enabled, its title and message, the logo object key and
// the shared access password.
//
// Four stores implement Store: MemoryStore, FileStore (TOML), RedisStore (a JSON
// document under one key) and PostgresStore (a single-row table created by the
// embedded goose migrations). NewStore picks one from Config.
//
// Request handlers read through a Provider, which caches for a short TTL and
// keeps serving the last good value when the backend is down:
//
//	store, err := settings.NewStore(cfg, settings.Backends{Redis: rdb})
//	provider := settings.NewProvider(store, settings.WithCacheTTL(cfg.CacheTTL))
//	s := provider.Current(r.Context())
//
// Values are cleaned with Sanitize before they are saved and after they are loaded.
package settings
