// Package locale resolves the locale that drives localized messages,
// template strings and the mascot image variant.
package locale

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/nullaframework/create-nulla/internal/output"
)

// Default is used when no supported locale can be determined.
const Default = "en-US"

// supported lists the locales with message tables and mascot images.
var supported = []string{"en-US", "pt-BR"}

// hostVariables are consulted in order by Host.
var hostVariables = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Supported returns the supported locale tags.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether tag is exactly one of the supported locales.
func IsSupported(tag string) bool {
	for _, s := range supported {
		if s == tag {
			return true
		}
	}
	return false
}

// Canonical converts a POSIX or BCP 47 locale string into a canonical BCP 47 tag.
// "pt_BR.UTF-8" and "pt-br" both become "pt-BR". It returns "" when raw is not
// a parsable language tag ("C", "POSIX", empty).
func Canonical(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}
	return tag.String()
}

// Match canonicalizes raw and reports whether it is a supported locale.
func Match(raw string) (string, bool) {
	tag := Canonical(raw)
	if tag == "" || !IsSupported(tag) {
		return tag, false
	}
	return tag, true
}

// Host returns the first non-empty locale variable of the environment.
// lookup is usually os.Getenv.
func Host(lookup func(string) string) string {
	for _, name := range hostVariables {
		if v := lookup(name); v != "" {
			return v
		}
	}
	return ""
}

// Log hooks for the fallback notice; swapped in tests.
var (
	warn  = output.Warn
	debug = output.Debug
)

// Resolve restricts raw to the supported set. An empty raw resolves to Default
// silently; an unsupported one resolves to Default with a warning.
func Resolve(raw string) string {
	return resolve(raw, warn)
}

// ResolveHost is Resolve for a value read from the host environment. The
// fallback is only logged at debug level since the user never asked for it.
func ResolveHost(raw string) string {
	return resolve(raw, debug)
}

func resolve(raw string, notify func(string, ...interface{})) string {
	if strings.TrimSpace(raw) == "" {
		return Default
	}
	tag, ok := Match(raw)
	if !ok {
		notify("unsupported locale, using default",
			"requested", raw,
			"default", Default,
			"supported", strings.Join(supported, ", "),
		)
		return Default
	}
	return tag
}
