package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".nulla"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".nulla", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile(t *testing.T) {
	t.Run("uses NULLA_CONFIG when set", func(t *testing.T) {
		t.Setenv("NULLA_CONFIG", "/custom/config.yaml")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config.yaml", path)
	})

	t.Run("falls back to default path", func(t *testing.T) {
		t.Setenv("NULLA_CONFIG", "")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "config.yaml", filepath.Base(path))
		assert.Equal(t, ".nulla", filepath.Base(filepath.Dir(path)))
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/nulla.yaml", "/etc/nulla.yaml"},
		{"tilde only", "~", home},
		{"tilde slash", "~/.nulla/config.yaml", filepath.Join(home, ".nulla/config.yaml")},
		{"other user untouched", "~bob/config.yaml", "~bob/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
