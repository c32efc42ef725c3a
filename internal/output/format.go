package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format specifies the run report format.
type Format string

const (
	// FormatText renders a file tree.
	FormatText Format = "text"

	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"

	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is known.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses s into a Format. Unknown values yield an error.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "tree":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns the valid format names.
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatYAML), string(FormatJSON)}
}

// WriteStructured encodes v as YAML or JSON.
func WriteStructured(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		err := encoder.Encode(v)
		if closeErr := encoder.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %s is not a structured format", format)
	}
}
