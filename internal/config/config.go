// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the create-nulla configuration file.
// Loaded from ~/.nulla/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Locale forces the locale instead of the host environment.
	// Env: NULLA_LOCALE
	Locale string `mapstructure:"locale" json:"locale,omitempty" yaml:"locale,omitempty"`

	// TypeScript makes the TypeScript variant the default.
	// Env: NULLA_TYPESCRIPT
	TypeScript bool `mapstructure:"typescript" json:"typescript,omitempty" yaml:"typescript,omitempty"`

	// Tailwind makes the Tailwind CSS add-on the default.
	// Env: NULLA_TAILWIND
	Tailwind bool `mapstructure:"tailwind" json:"tailwind,omitempty" yaml:"tailwind,omitempty"`

	// Git initializes a repository in every new project.
	// Env: NULLA_GIT
	Git bool `mapstructure:"git" json:"git,omitempty" yaml:"git,omitempty"`

	// EditorURL prefixes the src path in the editor deep link.
	// Env: NULLA_EDITOR_URL, Default: vscode://file/
	EditorURL string `mapstructure:"editorUrl" json:"editorUrl,omitempty" yaml:"editorUrl,omitempty"`

	// StrictExitCodes makes failed runs exit non-zero.
	// Env: NULLA_STRICT_EXIT_CODES
	StrictExitCodes bool `mapstructure:"strictExitCodes" json:"strictExitCodes,omitempty" yaml:"strictExitCodes,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultEditorURL is the editor link prefix used when none is configured.
const DefaultEditorURL = "vscode://file/"

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		EditorURL: DefaultEditorURL,
	}
}
