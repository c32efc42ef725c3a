// Package manifest edits the package.json manifest of a generated project.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/spf13/afero"

	nerrors "github.com/nullaframework/create-nulla/internal/errors"
	"github.com/nullaframework/create-nulla/internal/output"
)

// FileName is the manifest file name inside a project directory.
const FileName = "package.json"

// indent matches the npm manifest convention.
const indent = "  "

// Change records one manifest rewrite.
type Change struct {
	// Path is the manifest file path.
	Path string

	// Pointer is the JSON pointer of the property that was set.
	Pointer string

	// Before and After are the full file contents around the rewrite.
	Before []byte
	After  []byte
}

// Augment sets field.property = value in the manifest under projectPath.
// A missing or null field is created as an empty object first. Existing keys
// keep their order. Each call is a complete read, patch and write of the file.
func Augment(fsys afero.Fs, projectPath, field, property, value string) (*Change, error) {
	path := filepath.Join(projectPath, FileName)

	before, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nerrors.NewNotFoundError("manifest not found", path,
				"The template must provide a package.json.")
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	patch, pointer, err := buildPatch(before, path, field, property, value)
	if err != nil {
		return nil, err
	}

	opts := jsonpatch.NewApplyOptions()
	opts.EscapeHTML = false
	after, err := patch.ApplyIndentWithOptions(before, indent, opts)
	if err != nil {
		return nil, fmt.Errorf("patching manifest %s: %w", path, err)
	}

	if err := afero.WriteFile(fsys, path, after, 0o644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	output.Debug("manifest patched", "path", path, "pointer", pointer, "value", value)

	return &Change{Path: path, Pointer: pointer, Before: before, After: after}, nil
}

// buildPatch inspects the current document and returns the JSON Patch that
// sets the property, plus the pointer it targets.
func buildPatch(doc []byte, path, field, property, value string) (jsonpatch.Patch, string, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		return nil, "", fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	fieldPointer := "/" + escapePointer(field)
	pointer := fieldPointer + "/" + escapePointer(property)

	type operation struct {
		Op    string `json:"op"`
		Path  string `json:"path"`
		Value any    `json:"value"`
	}
	var ops []operation

	raw, ok := top[field]
	switch {
	case !ok || isNull(raw):
		ops = append(ops, operation{Op: "add", Path: fieldPointer, Value: map[string]any{}})
	case !isObject(raw):
		return nil, "", &nerrors.DetailError{
			Type:     "invalid manifest",
			Message:  fmt.Sprintf("field %q is not an object", field),
			Location: path,
			Field:    field,
		}
	}
	ops = append(ops, operation{Op: "add", Path: pointer, Value: value})

	// Script values carry shell operators; they must reach the file unescaped.
	var encoded bytes.Buffer
	enc := json.NewEncoder(&encoded)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ops); err != nil {
		return nil, "", fmt.Errorf("encoding manifest patch: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(encoded.Bytes())
	if err != nil {
		return nil, "", fmt.Errorf("decoding manifest patch: %w", err)
	}
	return patch, pointer, nil
}

// escapePointer escapes a key for use as a JSON pointer reference token.
func escapePointer(key string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(key)
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func isObject(raw json.RawMessage) bool {
	return strings.HasPrefix(strings.TrimSpace(string(raw)), "{")
}
