package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapjournal/diarykit/pkg/config"
)

type testConfig struct {
	MaxItems int    `env:"TEST_MAX_ITEMS" envDefault:"3"`
	Locale   string `env:"TEST_LOCALE" envDefault:"en"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is unset", func(t *testing.T) {
		var cfg testConfig

		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 3, cfg.MaxItems)
		assert.Equal(t, "en", cfg.Locale)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_OVERRIDE_LIMIT", "7")

		type overrideConfig struct {
			Limit int `env:"TEST_OVERRIDE_LIMIT" envDefault:"3"`
		}

		var cfg overrideConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 7, cfg.Limit)
	})

	t.Run("cached after first load", func(t *testing.T) {
		var first, second testConfig

		require.NoError(t, config.Load(&first))
		require.NoError(t, config.Load(&second))

		assert.Equal(t, first, second)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig

		err := config.Load(&cfg)

		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer is rejected", func(t *testing.T) {
		err := config.Load[testConfig](nil)

		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}
