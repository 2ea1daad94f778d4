// Package config fills configuration structs from environment variables.
//
// Struct fields are described with caarlos0/env tags. A .env file in the
// working directory, when present, is loaded into the environment once before
// the first parse, so local development and containers read the same keys:
//
//	type Config struct {
//		Backend  string        `env:"SETTINGS_BACKEND" envDefault:"file"`
//		CacheTTL time.Duration `env:"SETTINGS_CACHE_TTL" envDefault:"5s"`
//		Secret   string        `env:"APP_SIGNING_KEY,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// # Caching
//
// The result is cached per Go type. The server and the CLI can both load
// settings.Config and get the same value without reparsing, while a
// different struct embedding it is parsed on its own. Tests that change the
// environment call Reset first.
//
// MustLoad panics instead of returning an error and is meant for program start.
package config
