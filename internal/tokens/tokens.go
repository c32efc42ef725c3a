// Package tokens implements placeholder substitution for template content.
package tokens

import "strings"

// Namespaces used in template files.
const (
	// NamespaceProject prefixes project-specific tokens such as {{PROJECT_NAME}}.
	NamespaceProject = "PROJECT"

	// NamespaceI18n prefixes localization tokens such as {{i18n_title}}.
	NamespaceI18n = "i18n"
)

// Project token names.
const (
	Name      = "NAME"
	Slug      = "SLUG"
	Extension = "EXTENSION"
	Src       = "SRC"
	Lang      = "LANG"
)

// Placeholder returns the literal placeholder for name in namespace.
// An empty namespace means NamespaceProject.
func Placeholder(name, namespace string) string {
	if namespace == "" {
		namespace = NamespaceProject
	}
	return "{{" + namespace + "_" + name + "}}"
}

// Apply replaces every occurrence of the placeholder for name with value.
// The replacement is a single literal pass: value is never re-scanned.
func Apply(content, name, value, namespace string) string {
	return strings.ReplaceAll(content, Placeholder(name, namespace), value)
}

// Replacement is a single token and its value.
type Replacement struct {
	Name  string
	Value string
}

// ApplyAll applies the replacements in order within one namespace.
func ApplyAll(content, namespace string, replacements []Replacement) string {
	for _, r := range replacements {
		content = Apply(content, r.Name, r.Value, namespace)
	}
	return content
}
