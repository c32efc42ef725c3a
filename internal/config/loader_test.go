package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/nullaframework/create-nulla/internal/errors"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
locale: pt-BR
typescript: true
tailwind: true
git: true
editorUrl: cursor://file/
strictExitCodes: true
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "pt-BR", cfg.Locale)
		assert.True(t, cfg.TypeScript)
		assert.True(t, cfg.Tailwind)
		assert.True(t, cfg.Git)
		assert.Equal(t, "cursor://file/", cfg.EditorURL)
		assert.True(t, cfg.StrictExitCodes)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Locale)
		assert.False(t, cfg.TypeScript)
		assert.Equal(t, DefaultEditorURL, cfg.EditorURL)
	})

	t.Run("loads strict exit codes and timestamps from environment", func(t *testing.T) {
		t.Setenv("NULLA_STRICT_EXIT_CODES", "true")
		t.Setenv("NULLA_LOG_TIMESTAMPS", "false")

		tmpDir := t.TempDir()
		cfg, err := NewLoader().Load(filepath.Join(tmpDir, "nonexistent.yaml"))

		require.NoError(t, err)
		assert.True(t, cfg.StrictExitCodes)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("locale: [unterminated"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestConfigFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	exists, err := ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(configFile, []byte("git: true\n"), 0o644))

	exists, err = ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoadValidated(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("locale: en-US\ngit: true\n"), 0o644))

		cfg, err := LoadValidated(configFile)
		require.NoError(t, err)
		assert.True(t, cfg.Git)
	})

	t.Run("invalid file is a validation error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("locale: fr-FR\n"), 0o644))

		_, err := LoadValidated(configFile)
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadValidated(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultEditorURL, cfg.EditorURL)
	})
}
