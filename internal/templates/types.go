package templates

import "github.com/nullaframework/create-nulla/internal/project"

// AssetClass separates templated text files from verbatim binary assets.
type AssetClass string

const (
	// TextAsset files get token substitution.
	TextAsset AssetClass = "text"

	// BinaryAsset files are copied byte for byte.
	BinaryAsset AssetClass = "binary"
)

// AssetRecord is one regular file of the template tree.
type AssetRecord struct {
	// RelativePath is relative to the template root and always slash-separated.
	RelativePath string `json:"path" yaml:"path"`

	// Class is derived from the containing directories.
	Class AssetClass `json:"class" yaml:"class"`
}

// Assets is the classified template tree. Each slice keeps walk order.
type Assets struct {
	Text   []AssetRecord
	Binary []AssetRecord
}

// Len returns the total number of records.
func (a *Assets) Len() int {
	return len(a.Text) + len(a.Binary)
}

// Options are the per-run feature toggles.
type Options struct {
	// UseAlternateLanguage selects the TypeScript variant.
	UseAlternateLanguage bool `json:"typescript" yaml:"typescript"`

	// UseStylingAddOn wires Tailwind CSS into the project.
	UseStylingAddOn bool `json:"tailwind" yaml:"tailwind"`

	// Locale selects template strings and the mascot image.
	Locale string `json:"locale" yaml:"locale"`
}

// Extension returns the view file extension for the selected language.
func (o Options) Extension() string {
	if o.UseAlternateLanguage {
		return "tsx"
	}
	return "jsx"
}

// otherExtension returns the view file extension that is not selected.
func (o Options) otherExtension() string {
	if o.UseAlternateLanguage {
		return "jsx"
	}
	return "tsx"
}

// FileRecord describes one file written into the project.
type FileRecord struct {
	// Path is relative to the project directory, slash-separated.
	Path string `json:"path" yaml:"path"`

	// Source is the template path the file came from.
	Source string `json:"source" yaml:"source"`

	Class AssetClass `json:"class" yaml:"class"`

	// Statuses lists what happened to the file, e.g. written then patched.
	Statuses []string `json:"statuses" yaml:"statuses"`

	// MediaType is detected for binary assets only.
	MediaType string `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
}

// SkippedRecord describes a template file excluded from the run.
type SkippedRecord struct {
	Source string `json:"source" yaml:"source"`
	Reason string `json:"reason" yaml:"reason"`
}

// Result reports what a run produced.
type Result struct {
	Project     project.Identity `json:"project" yaml:"project"`
	ProjectPath string           `json:"projectPath" yaml:"projectPath"`
	Options     Options          `json:"options" yaml:"options"`

	// EditorLink is the deep link substituted for {{PROJECT_SRC}}.
	EditorLink string `json:"editorLink" yaml:"editorLink"`

	Files    []FileRecord    `json:"files" yaml:"files"`
	Skipped  []SkippedRecord `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Warnings []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// file returns the record for a project-relative path, or nil.
func (r *Result) file(rel string) *FileRecord {
	for i := range r.Files {
		if r.Files[i].Path == rel {
			return &r.Files[i]
		}
	}
	return nil
}
