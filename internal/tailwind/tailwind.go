// Package tailwind wires the Tailwind CSS add-on into a materialized project.
package tailwind

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/nullaframework/create-nulla/internal/manifest"
	"github.com/nullaframework/create-nulla/internal/output"
)

// Manifest entries added by the add-on.
const (
	Package        = "tailwindcss"
	PackageVersion = "^3.1"

	BuildScript      = "tailwind"
	WatchScript      = "tailwind-watch"
	buildCommand     = "npx tailwindcss -i src/Application.css -o src/tailwind.css"
	watchCommandFlag = " --watch"
)

// Directives is prepended to the application stylesheet.
const Directives = "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n\n"

// Project-relative files the add-on edits.
const (
	Stylesheet       = "src/Application.css"
	stylesheetImport = "import './Application.css';"
	generatedImport  = "import './tailwind.css';"
)

// Entry returns the application entry file for the view extension.
func Entry(ext string) string {
	return "src/Application." + ext
}

// Result describes what the add-on changed.
type Result struct {
	// ManifestChanges are the package.json rewrites, in order.
	ManifestChanges []*manifest.Change

	// Patched lists project-relative files edited after materialization.
	Patched []string

	// Warnings holds conditions that left a file unchanged.
	Warnings []string
}

// Weave adds the Tailwind entries to the manifest, prepends the directives to
// the stylesheet and imports the generated stylesheet in the entry file.
// The steps run in that order and each one re-reads its file.
func Weave(fsys afero.Fs, projectPath, ext string) (*Result, error) {
	res := &Result{}

	entries := []struct{ field, property, value string }{
		{"devDependencies", Package, PackageVersion},
		{"scripts", BuildScript, buildCommand},
		{"scripts", WatchScript, buildCommand + watchCommandFlag},
	}
	for _, e := range entries {
		change, err := manifest.Augment(fsys, projectPath, e.field, e.property, e.value)
		if err != nil {
			return nil, err
		}
		res.ManifestChanges = append(res.ManifestChanges, change)
	}
	res.Patched = append(res.Patched, manifest.FileName)
	logManifestDiff(res.ManifestChanges)

	if err := prependDirectives(fsys, projectPath); err != nil {
		return nil, err
	}
	res.Patched = append(res.Patched, Stylesheet)

	entry := Entry(ext)
	spliced, err := spliceImport(fsys, projectPath, entry)
	if err != nil {
		return nil, err
	}
	if spliced {
		res.Patched = append(res.Patched, entry)
	} else {
		msg := fmt.Sprintf("%s does not contain %q; add %q manually", entry, stylesheetImport, generatedImport)
		output.Warn("tailwind import not added", "file", entry, "expected", stylesheetImport)
		res.Warnings = append(res.Warnings, msg)
	}

	return res, nil
}

func prependDirectives(fsys afero.Fs, projectPath string) error {
	p := filepath.Join(projectPath, filepath.FromSlash(Stylesheet))
	content, err := afero.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("reading stylesheet: %w", err)
	}
	if err := afero.WriteFile(fsys, p, append([]byte(Directives), content...), 0o644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	output.Debug("tailwind directives added", "file", Stylesheet)
	return nil
}

// spliceImport inserts the generated stylesheet import after the first
// stylesheet import. It reports false, leaving the file untouched, when the
// import line is missing.
func spliceImport(fsys afero.Fs, projectPath, entry string) (bool, error) {
	p := filepath.Join(projectPath, filepath.FromSlash(entry))
	content, err := afero.ReadFile(fsys, p)
	if err != nil {
		return false, fmt.Errorf("reading entry file: %w", err)
	}

	src := string(content)
	if !strings.Contains(src, stylesheetImport) {
		return false, nil
	}
	src = strings.Replace(src, stylesheetImport, stylesheetImport+"\n"+generatedImport, 1)

	if err := afero.WriteFile(fsys, p, []byte(src), 0o644); err != nil {
		return false, fmt.Errorf("writing entry file: %w", err)
	}
	output.Debug("tailwind import added", "file", entry)
	return true, nil
}

// logManifestDiff logs the combined manifest change at debug level.
func logManifestDiff(changes []*manifest.Change) {
	if !output.IsDebug() || len(changes) == 0 {
		return
	}
	report, err := manifest.Diff(changes[0].Before, changes[len(changes)-1].After)
	if err != nil {
		output.Debug("manifest diff unavailable", "error", err)
		return
	}
	output.Debug("manifest changes\n" + report)
}
