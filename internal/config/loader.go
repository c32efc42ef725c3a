package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/nullaframework/create-nulla/internal/output"
)

// Environment variable prefix for create-nulla configuration.
const envPrefix = "NULLA"

// Loader handles loading configuration from the config file and environment.
// Values that take part in flag precedence (locale, typescript, tailwind, git,
// editorUrl) are read from the file only; the resolver consults their env vars.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("strictExitCodes", envPrefix+"_STRICT_EXIT_CODES")
	_ = v.BindEnv("log.timestamps", envPrefix+"_LOG_TIMESTAMPS")

	v.SetDefault("editorUrl", DefaultEditorURL)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		output.Debug("no config file, using defaults", "path", expandedPath)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// LoadValidated validates the config file against the schema when it exists,
// then loads it.
func LoadValidated(configFile string) (*Config, error) {
	exists, err := ConfigFileExists(configFile)
	if err != nil {
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	if exists {
		validator, err := NewValidator()
		if err != nil {
			return nil, err
		}
		if err := validator.ValidateFile(configFile); err != nil {
			return nil, err
		}
	}

	return NewLoader().Load(configFile)
}
