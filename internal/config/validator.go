package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	oerrors "github.com/nullaframework/create-nulla/internal/errors"
)

// configSchemaCUE defines #Config, the shape of ~/.nulla/config.yaml.
//
//go:embed schema/config.cue
var configSchemaCUE []byte

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(configSchemaCUE)
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema does not define #Config")
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// ValidateBytes validates raw YAML config data against #Config.
// An empty document is valid.
func (v *Validator) ValidateBytes(data []byte) error {
	doc := map[string]any{}
	if err := yaml.Unmarshal(data, &doc); err != nil && !errors.Is(err, io.EOF) {
		return ValidationErrors{{Field: "(root)", Message: err.Error()}}
	}

	value := v.ctx.Encode(doc)
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}

	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return toValidationErrors(err)
	}

	return nil
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := v.ValidateBytes(data); err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &oerrors.DetailError{
				Type:     "invalid config",
				Message:  fmt.Sprintf("%d invalid field(s)", len(verrs)),
				Location: expanded,
				Field:    verrs[0].Field,
				Hint:     "Fix the listed fields or remove them to use the defaults.",
				Cause:    fmt.Errorf("%w: %w", oerrors.ErrValidation, verrs),
			}
		}
		return err
	}

	return nil
}

func toValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		// #Config is the first path element for schema violations.
		field = strings.TrimPrefix(strings.TrimPrefix(field, "#Config"), ".")
		if field == "" {
			field = "(root)"
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{Field: "(root)", Message: err.Error()})
	}
	return errs
}
