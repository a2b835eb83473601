package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/pattern-playground/internal/config"
)

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, Level("debug"))
	require.Equal(t, zerolog.WarnLevel, Level("WARN"))
	require.Equal(t, zerolog.Disabled, Level("none"))
	require.Equal(t, zerolog.InfoLevel, Level("chatty"))
}

func TestSetupFile(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "patterns.log")
	closeFn, err := Setup(config.Log{Level: "warn", File: path})
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	log.Warn().Str("scene", "honeycomb").Msg("visible")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"scene":"honeycomb"`)
	require.NotContains(t, string(data), "hidden")
}

func TestSetupBadFile(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })

	_, err := Setup(config.Log{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
}
