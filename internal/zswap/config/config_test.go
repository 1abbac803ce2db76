package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/zswapstat/internal/zswap/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "m", cfg.BlockSize)
	assert.False(t, cfg.SI)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, domain.Mega, cfg.Unit())
	assert.Equal(t, domain.BaseIEC, cfg.Base())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ZSWAPSTAT_BLOCK_SIZE", "g")
	t.Setenv("ZSWAPSTAT_SI", "true")
	t.Setenv("ZSWAPSTAT_ENV", "dev")
	t.Setenv("ZSWAPSTAT_LOG_LEVEL", " debug ")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "g", cfg.BlockSize)
	assert.True(t, cfg.SI)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, domain.Giga, cfg.Unit())
	assert.Equal(t, domain.BaseSI, cfg.Base())
}

func TestLoad_FlagsWinOverEnv(t *testing.T) {
	t.Setenv("ZSWAPSTAT_BLOCK_SIZE", "g")

	cfg, err := Load(map[string]any{"block_size": "k", "si": true})
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.BlockSize)
	assert.True(t, cfg.SI)
	assert.Equal(t, domain.Kilo, cfg.Unit())
}

func TestLoad_EveryBlockSize(t *testing.T) {
	for i, code := range domain.UnitCodes() {
		cfg, err := Load(map[string]any{"block_size": code})
		require.NoError(t, err)
		assert.Equal(t, domain.Unit(i), cfg.Unit(), code)
	}
}

func TestLoad_InvalidBlockSize(t *testing.T) {
	_, err := Load(map[string]any{"block_size": "x"})

	var usage *UsageError
	require.True(t, errors.As(err, &usage))
	assert.Equal(t, `invalid block_size "x" (choose from b, k, m, g, t, p, e, z, y)`, err.Error())
}

func TestLoad_EmptyBlockSize(t *testing.T) {
	t.Setenv("ZSWAPSTAT_BLOCK_SIZE", "")

	_, err := Load(nil)
	assert.EqualError(t, err, "block_size must not be empty")
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ZSWAPSTAT_ENV", "staging")

	_, err := Load(nil)
	assert.EqualError(t, err, `invalid env "staging" (choose from dev, prod)`)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("ZSWAPSTAT_LOG_LEVEL", "trace")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoad_WhenEnvLoadFails(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error {
		return errors.New("mocked error")
	}
	t.Cleanup(func() { envLoader = orig })

	_, err := Load(nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "mocked error"))
}

func TestLoad_WhenDefaultLoadFails(t *testing.T) {
	orig := defaultLoader
	defaultLoader = func(k *koanf.Koanf) error {
		return errors.New("mocked default error")
	}
	t.Cleanup(func() { defaultLoader = orig })

	_, err := Load(nil)
	assert.ErrorContains(t, err, "error loading default config")
}
