package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilTarget is returned when Load receives a nil pointer.
	ErrNilTarget = errors.New("config: target must be a non-nil pointer")

	loadDotenv sync.Once
	cache      sync.Map // reflect.Type -> any (value copy of the loaded struct)
)

// Load parses environment variables into cfg. The first call for a given type
// reads the environment; later calls copy the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	loadDotenv.Do(func() {
		// Missing .env is normal outside local development.
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}

	actual, _ := cache.LoadOrStore(typ, loaded)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on error. Intended for application startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset drops all cached configurations. Used by tests that change the environment.
func Reset() {
	cache.Clear()
}
