package config

import (
	"fmt"
	"os"
	"strconv"

	oerrors "github.com/nullaframework/create-nulla/internal/errors"
	"github.com/nullaframework/create-nulla/internal/locale"
	"github.com/nullaframework/create-nulla/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceHost indicates value came from the host environment (LANG and friends).
	SourceHost ConfigSource = "host"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables consulted by the resolver.
const (
	EnvLocale     = envPrefix + "_LOCALE"
	EnvTypeScript = envPrefix + "_TYPESCRIPT"
	EnvTailwind   = envPrefix + "_TAILWIND"
	EnvGit        = envPrefix + "_GIT"
	EnvEditorURL  = envPrefix + "_EDITOR_URL"
	EnvConfig     = envPrefix + "_CONFIG"
)

// ResolvedValue records a resolved setting for verbose logging.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// Flag carries a command-line flag value and whether the user set it.
type Flag[T any] struct {
	Value T
	Set   bool
}

// ResolveOptions contains the inputs to Resolve.
type ResolveOptions struct {
	Locale     Flag[string]
	TypeScript Flag[bool]
	Tailwind   Flag[bool]
	Git        Flag[bool]

	// Config is the loaded config file; nil means defaults.
	Config *Config

	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string
}

// Settings are the effective options for a run.
type Settings struct {
	Locale     string
	TypeScript bool
	Tailwind   bool
	Git        bool
	EditorURL  string

	// Values describes how each setting was resolved.
	Values []ResolvedValue
}

type candidate struct {
	source ConfigSource
	raw    string
	value  any
}

// pick returns the first candidate and shadows the rest.
func pick(key string, candidates []candidate) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}
	for i, c := range candidates {
		if i == 0 {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

func resolveBool(key, env string, flag Flag[bool], configValue bool, getenv func(string) string) (ResolvedValue, error) {
	var candidates []candidate
	if flag.Set {
		candidates = append(candidates, candidate{source: SourceFlag, value: flag.Value})
	}
	if raw := getenv(env); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return ResolvedValue{}, oerrors.NewValidationError(
				fmt.Sprintf("invalid boolean %q", raw), env, key,
				"Use true or false.")
		}
		candidates = append(candidates, candidate{source: SourceEnv, raw: raw, value: b})
	}
	if configValue {
		candidates = append(candidates, candidate{source: SourceConfig, value: true})
	}
	candidates = append(candidates, candidate{source: SourceDefault, value: false})
	return pick(key, candidates), nil
}

// Resolve computes the effective settings using precedence:
// (1) flag, (2) NULLA_* env, (3) config file, (4) host locale, (5) default.
// The host step only applies to the locale.
func Resolve(opts ResolveOptions) (*Settings, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	settings := &Settings{}

	// Locale: unsupported values fall back to the default, keeping the raw
	// value visible as shadowed.
	var localeCandidates []candidate
	if opts.Locale.Set && opts.Locale.Value != "" {
		localeCandidates = append(localeCandidates, candidate{source: SourceFlag, value: opts.Locale.Value})
	}
	if v := getenv(EnvLocale); v != "" {
		localeCandidates = append(localeCandidates, candidate{source: SourceEnv, value: v})
	}
	if cfg.Locale != "" {
		localeCandidates = append(localeCandidates, candidate{source: SourceConfig, value: cfg.Locale})
	}
	if v := locale.Host(getenv); locale.Canonical(v) != "" {
		localeCandidates = append(localeCandidates, candidate{source: SourceHost, value: v})
	}
	localeCandidates = append(localeCandidates, candidate{source: SourceDefault, value: locale.Default})

	lv := pick("locale", localeCandidates)
	raw, _ := lv.Value.(string)
	var resolved string
	if lv.Source == SourceHost {
		resolved = locale.ResolveHost(raw)
	} else {
		resolved = locale.Resolve(raw)
	}
	if _, ok := locale.Match(raw); !ok && lv.Source != SourceDefault {
		lv.Shadowed[lv.Source] = raw
		lv.Source = SourceDefault
	}
	lv.Value = resolved
	settings.Locale = resolved
	settings.Values = append(settings.Values, lv)

	bools := []struct {
		key    string
		env    string
		flag   Flag[bool]
		config bool
		dst    *bool
	}{
		{"typescript", EnvTypeScript, opts.TypeScript, cfg.TypeScript, &settings.TypeScript},
		{"tailwind", EnvTailwind, opts.Tailwind, cfg.Tailwind, &settings.Tailwind},
		{"git", EnvGit, opts.Git, cfg.Git, &settings.Git},
	}
	for _, b := range bools {
		rv, err := resolveBool(b.key, b.env, b.flag, b.config, getenv)
		if err != nil {
			return nil, err
		}
		*b.dst = rv.Value.(bool)
		settings.Values = append(settings.Values, rv)
	}

	var editorCandidates []candidate
	if v := getenv(EnvEditorURL); v != "" {
		editorCandidates = append(editorCandidates, candidate{source: SourceEnv, value: v})
	}
	if cfg.EditorURL != "" && cfg.EditorURL != DefaultEditorURL {
		editorCandidates = append(editorCandidates, candidate{source: SourceConfig, value: cfg.EditorURL})
	}
	editorCandidates = append(editorCandidates, candidate{source: SourceDefault, value: DefaultEditorURL})
	ev := pick("editorUrl", editorCandidates)
	settings.EditorURL = ev.Value.(string)
	settings.Values = append(settings.Values, ev)

	return settings, nil
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) NULLA_CONFIG env, (3) ~/.nulla/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
