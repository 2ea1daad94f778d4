package server

import "time"

// Defaults applied by New when the corresponding option is not set.
const (
	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second

	// DefaultWriteTimeout covers the upstream timeout plus streaming the proxied response.
	DefaultWriteTimeout = 45 * time.Second

	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes caps request headers at 1 MB.
	DefaultMaxHeaderBytes = 1 << 20
)
