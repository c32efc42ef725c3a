// Package project derives the identity of a new project from the name the user typed.
package project

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	nerrors "github.com/nullaframework/create-nulla/internal/errors"
)

// slugPattern accepts npm package names: an optional @scope/ prefix, then
// lowercase alphanumerics and -._~ not starting with . or _.
var slugPattern = regexp.MustCompile(`^(?:@[a-z0-9\-*~][a-z0-9\-*._~]*/)?[a-z0-9\-~][a-z0-9\-._~]*$`)

// Identity names a project in its three forms.
type Identity struct {
	// RawInput is the name as typed, whitespace runs collapsed to single spaces.
	RawInput string `json:"rawInput" yaml:"rawInput"`

	// Slug is the directory and package name, e.g. "my-cool-app".
	Slug string `json:"slug" yaml:"slug"`

	// DisplayName is the human-readable name, e.g. "My Cool App".
	DisplayName string `json:"displayName" yaml:"displayName"`
}

// NewIdentity derives and validates an Identity from raw user input.
// An invalid slug is returned as an ErrInvalidName error.
func NewIdentity(raw string) (Identity, error) {
	id := Identity{
		RawInput: strings.Join(strings.Fields(raw), " "),
		Slug:     Slugify(raw),
	}
	if err := ValidateSlug(id.Slug); err != nil {
		return Identity{}, err
	}
	id.DisplayName = DisplayName(id.Slug)
	return id, nil
}

// Slugify collapses whitespace runs into hyphens and lowercases the result.
func Slugify(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), "-"))
}

// DisplayName capitalizes each hyphen-separated word of slug and joins them with spaces.
func DisplayName(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// ValidateSlug reports whether slug is usable as a package name.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return nerrors.NewInvalidNameError(slug,
			"Use lowercase letters, digits and -._~, not starting with . or _.")
	}
	return nil
}
