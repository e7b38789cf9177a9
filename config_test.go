package scribematch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 100, cfg.MaxAttempts)
	require.False(t, cfg.DisableReportCache)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("accepts zero value", func(t *testing.T) {
		cfg := Config{}
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects negative attempts", func(t *testing.T) {
		cfg := Config{MaxAttempts: -1}

		err := cfg.Validate()

		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Contains(t, err.Error(), "MaxAttempts")
	})
}

func TestConfig_SetDefaults(t *testing.T) {
	cfg := Config{}
	cfg.SetDefaults()
	require.Equal(t, 100, cfg.MaxAttempts)

	cfg = Config{MaxAttempts: 7}
	cfg.SetDefaults()
	require.Equal(t, 7, cfg.MaxAttempts, "explicit values must survive")
}
