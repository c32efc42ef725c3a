package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	nerrors "github.com/nullaframework/create-nulla/internal/errors"
	"github.com/nullaframework/create-nulla/internal/i18n"
	"github.com/nullaframework/create-nulla/internal/output"
	"github.com/nullaframework/create-nulla/internal/project"
	"github.com/nullaframework/create-nulla/internal/tailwind"
	"github.com/nullaframework/create-nulla/internal/tokens"
)

// DefaultEditorURL prefixes the src path in the editor deep link.
const DefaultEditorURL = "vscode://file/"

// Fixed project subdirectories, created before any file is written.
var projectDirs = []string{"src", "public"}

// MaterializerConfig wires a Materializer.
type MaterializerConfig struct {
	// Source is the template tree; Assets must be its classification.
	Source fs.FS
	Assets *Assets

	// Target receives the project. Usually afero.NewOsFs().
	Target afero.Fs

	// Cwd is the directory the project directory is created in.
	Cwd string

	// EditorURL defaults to DefaultEditorURL.
	EditorURL string

	// Strings holds the i18n tokens for the run locale.
	Strings *i18n.TemplateTable
}

// Materializer writes a new project from the classified template tree.
type Materializer struct {
	source    fs.FS
	assets    *Assets
	out       afero.Fs
	cwd       string
	editorURL string
	table     *i18n.TemplateTable
}

// NewMaterializer creates a Materializer.
func NewMaterializer(cfg MaterializerConfig) *Materializer {
	editorURL := cfg.EditorURL
	if editorURL == "" {
		editorURL = DefaultEditorURL
	}
	table := cfg.Strings
	if table == nil {
		table = &i18n.TemplateTable{}
	}
	return &Materializer{
		source:    cfg.Source,
		assets:    cfg.Assets,
		out:       cfg.Target,
		cwd:       cfg.Cwd,
		editorURL: editorURL,
		table:     table,
	}
}

// ProjectPath returns where the project for slug is created.
func (m *Materializer) ProjectPath(slug string) string {
	return filepath.Join(m.cwd, filepath.FromSlash(slug))
}

// EditorLink returns the deep link to the project's src directory.
// Separators are always forward slashes.
func (m *Materializer) EditorLink(slug string) string {
	src := filepath.Join(m.ProjectPath(slug), "src")
	return m.editorURL + strings.ReplaceAll(src, `\`, "/")
}

// Run materializes the project for id. Failures are returned as-is and leave
// whatever was already written in place.
func (m *Materializer) Run(id project.Identity, opts Options) (*Result, error) {
	projectPath := m.ProjectPath(id.Slug)
	logger := output.ProjectLogger(id.Slug)

	res := &Result{
		Project:     id,
		ProjectPath: projectPath,
		Options:     opts,
		EditorLink:  m.EditorLink(id.Slug),
	}

	if err := m.createDirs(projectPath); err != nil {
		return nil, err
	}
	logger.Debug("project directory created", "path", projectPath)

	values := []tokens.Replacement{
		{Name: tokens.Name, Value: id.DisplayName},
		{Name: tokens.Slug, Value: id.Slug},
		{Name: tokens.Extension, Value: opts.Extension()},
		{Name: tokens.Src, Value: res.EditorLink},
		{Name: tokens.Lang, Value: opts.Locale},
	}

	for _, rec := range m.assets.Text {
		if !m.include(logger, res, rec, opts) {
			continue
		}
		if err := m.writeText(logger, res, projectPath, rec, values); err != nil {
			return nil, err
		}
	}

	if opts.UseStylingAddOn {
		woven, err := tailwind.Weave(m.out, projectPath, opts.Extension())
		if err != nil {
			return nil, fmt.Errorf("adding tailwind: %w", err)
		}
		for _, p := range woven.Patched {
			if f := res.file(p); f != nil {
				f.Statuses = append(f.Statuses, output.StatusPatched)
			}
		}
		res.Warnings = append(res.Warnings, woven.Warnings...)
	}

	for _, rec := range m.assets.Binary {
		if !m.include(logger, res, rec, opts) {
			continue
		}
		if err := m.copyBinary(logger, res, projectPath, rec); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// createDirs creates the project root, failing if it exists, then the fixed subdirectories.
func (m *Materializer) createDirs(projectPath string) error {
	if parent := filepath.Dir(projectPath); parent != m.cwd {
		// Scoped names (@scope/name) nest one level.
		if err := m.out.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", parent, err)
		}
	}

	// Any existing entry blocks the project, files included. A copy-on-write
	// overlay only reports directories from Mkdir.
	if _, err := m.out.Stat(projectPath); err == nil {
		return nerrors.NewAlreadyExistsError(projectPath,
			&fs.PathError{Op: "mkdir", Path: projectPath, Err: fs.ErrExist})
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("inspecting project directory: %w", err)
	}

	if err := m.out.Mkdir(projectPath, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nerrors.NewAlreadyExistsError(projectPath, err)
		}
		return fmt.Errorf("creating project directory: %w", err)
	}

	for _, dir := range projectDirs {
		if err := m.out.MkdirAll(filepath.Join(projectPath, dir), 0o755); err != nil {
			return fmt.Errorf("creating %s directory: %w", dir, err)
		}
	}
	return nil
}

func (m *Materializer) include(logger *log.Logger, res *Result, rec AssetRecord, opts Options) bool {
	ok, reason := Include(rec, opts)
	if !ok {
		logger.Debug("template file skipped", "source", rec.RelativePath, "reason", reason)
		res.Skipped = append(res.Skipped, SkippedRecord{Source: rec.RelativePath, Reason: reason})
	}
	return ok
}

func (m *Materializer) writeText(logger *log.Logger, res *Result, projectPath string, rec AssetRecord, values []tokens.Replacement) error {
	data, err := fs.ReadFile(m.source, rec.RelativePath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", rec.RelativePath, err)
	}

	content := tokens.ApplyAll(string(data), tokens.NamespaceProject, values)
	content = m.table.Expand(content)

	rel := Destination(rec)
	if err := m.write(projectPath, rel, []byte(content)); err != nil {
		return err
	}

	logger.Debug("file written", "path", rel, "source", rec.RelativePath)
	res.Files = append(res.Files, FileRecord{
		Path:     rel,
		Source:   rec.RelativePath,
		Class:    TextAsset,
		Statuses: []string{output.StatusWritten},
	})
	return nil
}

func (m *Materializer) copyBinary(logger *log.Logger, res *Result, projectPath string, rec AssetRecord) error {
	data, err := fs.ReadFile(m.source, rec.RelativePath)
	if err != nil {
		return fmt.Errorf("reading asset %s: %w", rec.RelativePath, err)
	}

	rel := Destination(rec)
	if err := m.write(projectPath, rel, data); err != nil {
		return err
	}

	mediaType := mimetype.Detect(data).String()
	logger.Debug("asset copied", "path", rel, "source", rec.RelativePath, "type", mediaType)
	res.Files = append(res.Files, FileRecord{
		Path:      rel,
		Source:    rec.RelativePath,
		Class:     BinaryAsset,
		Statuses:  []string{output.StatusCopied},
		MediaType: mediaType,
	})
	return nil
}

// write stores data at the project-relative slash path rel, creating parent
// directories below the fixed ones on demand.
func (m *Materializer) write(projectPath, rel string, data []byte) error {
	target := filepath.Join(projectPath, filepath.FromSlash(rel))
	if dir := path.Dir(rel); dir != "." {
		if err := m.out.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", rel, err)
		}
	}
	if err := afero.WriteFile(m.out, target, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
