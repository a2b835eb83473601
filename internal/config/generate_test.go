package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRoundTrip(t *testing.T) {
	for _, ext := range supportedExtensions {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "patterns."+ext)
			require.NoError(t, Generate(path))

			conf, meta := getConfig(t, path)
			require.False(t, meta.FileNotFound)
			require.Equal(t, Default(), conf)
		})
	}
}

func TestGenerateKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene: triangle\n"), 0644))
	require.ErrorIs(t, Generate(path), ErrFileExists)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "scene: triangle\n", string(b))
}

func TestGenerateUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.ini")
	require.Error(t, Generate(path))
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}
