// Package i18n loads the localized message tables and expands localization
// tokens in template content.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	nerrors "github.com/nullaframework/create-nulla/internal/errors"
)

//go:embed locales
var localesFS embed.FS

// Messages is the console message table for one locale.
type Messages struct {
	QuestionName string         `json:"questionName"`
	Success      SuccessMessage `json:"success"`
	Error        ErrorMessage   `json:"error"`
}

// SuccessMessage holds the completion instructions.
type SuccessMessage struct {
	// IsReady contains a {projectName} placeholder.
	IsReady    string `json:"isReady"`
	OpenEditor string `json:"openEditor"`
}

// ErrorMessage holds the user-facing error messages.
type ErrorMessage struct {
	UnvalidName   string `json:"unvalidName"`
	AlreadyExists string `json:"alreadyExists"`
	Default       string `json:"default"`
}

// Ready returns the "project is ready" line for projectName.
func (m *Messages) Ready(projectName string) string {
	return strings.Replace(m.Success.IsReady, "{projectName}", projectName, 1)
}

// Catalog bundles both tables of a locale.
type Catalog struct {
	Locale   string
	Messages *Messages
	Template *TemplateTable
}

// Load reads the console and template tables for locale from the embedded locales.
func Load(locale string) (*Catalog, error) {
	return LoadFS(localesFS, locale)
}

// LoadFS reads the tables for locale from fsys, which must contain
// locales/<locale>.json and locales/template/<locale>.json.
func LoadFS(fsys fs.FS, locale string) (*Catalog, error) {
	messages, err := loadMessages(fsys, path.Join("locales", locale+".json"))
	if err != nil {
		return nil, err
	}

	tmplPath := path.Join("locales", "template", locale+".json")
	data, err := fs.ReadFile(fsys, tmplPath)
	if err != nil {
		return nil, notFound(tmplPath, locale, err)
	}
	table, err := ParseTemplateTable(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", tmplPath, err)
	}
	table.Locale = locale

	return &Catalog{
		Locale:   locale,
		Messages: messages,
		Template: table,
	}, nil
}

func loadMessages(fsys fs.FS, name string) (*Messages, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, notFound(name, path.Base(strings.TrimSuffix(name, ".json")), err)
	}

	var m Messages
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return &m, nil
}

func notFound(name, locale string, cause error) error {
	return &nerrors.DetailError{
		Type:     "not found",
		Message:  fmt.Sprintf("no message table for locale %s", locale),
		Location: name,
		Cause:    fmt.Errorf("%w: %w", nerrors.ErrNotFound, cause),
	}
}
