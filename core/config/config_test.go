package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comingsoon/core/config"
)

type testConfig struct {
	Name    string        `env:"CS_TEST_NAME" envDefault:"default-name"`
	Timeout time.Duration `env:"CS_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Key string `env:"CS_TEST_REQUIRED_KEY,required"`
}

func TestLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CS_TEST_NAME", "from-env")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	t.Run("cached per type", func(t *testing.T) {
		t.Setenv("CS_TEST_NAME", "changed")

		var again testConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "from-env", again.Name)
	})
}

func TestLoad_Errors(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var nilCfg *testConfig
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilTarget)

	var req requiredConfig
	assert.Error(t, config.Load(&req))
	assert.Panics(t, func() { config.MustLoad(&req) })
}
