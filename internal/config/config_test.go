package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func getConfig(t *testing.T, configFile string) (Config, Meta) {
	t.Helper()
	conf, meta, err := Load(nil, configFile)
	require.NoError(t, err)
	return conf, meta
}

func checkConfig(t *testing.T, conf Config) {
	t.Helper()
	require.Equal(t, "phyllotaxis", conf.Scene)
	require.Equal(t, 1, conf.SceneIndex())
	require.Equal(t, 800, conf.Window.Width)
	require.Equal(t, 600, conf.Window.Height)
	require.Equal(t, Honeycomb{Width: 7, Height: 9, Side: 14.5, RotateStep: RotateStep}, conf.Honeycomb)
	require.Equal(t, 120, conf.Phyllotaxis.Count)
	require.Equal(t, 1500*time.Millisecond, conf.Phyllotaxis.Duration)
	require.Equal(t, float64(RotationGap), conf.Phyllotaxis.RotationGap)
	require.False(t, conf.Chime.Enabled)
	require.Equal(t, "debug", conf.Log.Level)
}

func TestDefaults(t *testing.T) {
	conf, meta := getConfig(t, "")
	require.Equal(t, Default(), conf)
	require.False(t, meta.FileNotFound)
}

func TestConfigYAML(t *testing.T) {
	conf, _ := getConfig(t, "testdata/config.yaml")
	checkConfig(t, conf)
}

func TestConfigTOML(t *testing.T) {
	conf, _ := getConfig(t, "testdata/config.toml")
	checkConfig(t, conf)
}

func TestConfigFileNotFound(t *testing.T) {
	conf, meta := getConfig(t, "testdata/missing.yaml")
	require.True(t, meta.FileNotFound)
	require.Equal(t, Default(), conf)
}

func TestConfigUnknownScene(t *testing.T) {
	_, _, err := Load(nil, "testdata/bad_scene.json")
	require.ErrorIs(t, err, ErrUnknownScene)
}

func TestConfigEnvVars(t *testing.T) {
	t.Setenv("PATTERNS_SCENE", "rotator")
	t.Setenv("PATTERNS_HONEYCOMB_WIDTH", "11")
	t.Setenv("PATTERNS_CHIME_DURATION", "250ms")
	t.Setenv("PATTERNS_CHIME_GAIN", "0.75")
	conf, _ := getConfig(t, "testdata/config.yaml")
	require.Equal(t, "rotator", conf.Scene)
	require.Equal(t, 11, conf.Honeycomb.Width)
	require.Equal(t, 250*time.Millisecond, conf.Chime.Duration)
	require.Equal(t, 0.75, conf.Chime.Gain)
}

func TestConfigBadGain(t *testing.T) {
	t.Setenv("PATTERNS_CHIME_GAIN", "1.5")
	_, _, err := Load(nil, "")
	require.ErrorContains(t, err, "chime gain")
}

func TestConfigFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	DefineFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--scene", "triangle", "--honeycomb.side", "22", "--chime.enabled=false"}))
	conf, _, err := Load(cmd, "")
	require.NoError(t, err)
	require.Equal(t, "triangle", conf.Scene)
	require.Equal(t, 22.0, conf.Honeycomb.Side)
	require.False(t, conf.Chime.Enabled)
	// Unset flags keep their defaults.
	require.Equal(t, BoardWidth, conf.Honeycomb.Width)
}

func TestValidateWindow(t *testing.T) {
	c := Default()
	c.Window.Width = 0
	require.Error(t, c.Validate())
	require.NoError(t, Default().Validate())
}
