package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/config"
)

type toastConfig struct {
	Visible time.Duration `env:"TEST_TOAST_VISIBLE" envDefault:"3s"`
	Fade    time.Duration `env:"TEST_TOAST_FADE" envDefault:"400ms"`
}

type secretConfig struct {
	Secret string `env:"TEST_FLASH_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg toastConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 3*time.Second, cfg.Visible)
		assert.Equal(t, 400*time.Millisecond, cfg.Fade)
	})

	t.Run("environment overrides and caching", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("TEST_TOAST_VISIBLE", "5s")

		var first toastConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, 5*time.Second, first.Visible)

		t.Setenv("TEST_TOAST_VISIBLE", "1s")
		var second toastConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, 5*time.Second, second.Visible, "cached value expected")
	})

	t.Run("required variable missing", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg secretConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *toastConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}
