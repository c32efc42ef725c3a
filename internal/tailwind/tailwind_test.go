package tailwind

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectPath = "/work/widget"

const baseManifest = `{
  "name": "widget",
  "scripts": {
    "start": "vite"
  },
  "dependencies": {
    "nulla": "^1.0.0"
  }
}
`

const entrySource = `import './Application.css';

export default function Application() {}
`

func setup(t *testing.T, ext, entry string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"package.json":        baseManifest,
		"src/Application.css": ".application {}\n",
		Entry(ext):            entry,
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(projectPath, name), []byte(content), 0o644))
	}
	return fsys
}

func read(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, filepath.Join(projectPath, name))
	require.NoError(t, err)
	return string(data)
}

func TestWeave(t *testing.T) {
	fsys := setup(t, "jsx", entrySource)

	res, err := Weave(fsys, projectPath, "jsx")
	require.NoError(t, err)

	assert.Len(t, res.ManifestChanges, 3)
	assert.Equal(t, []string{"package.json", "src/Application.css", "src/Application.jsx"}, res.Patched)
	assert.Empty(t, res.Warnings)

	assert.JSONEq(t, `{
		"name": "widget",
		"scripts": {
			"start": "vite",
			"tailwind": "npx tailwindcss -i src/Application.css -o src/tailwind.css",
			"tailwind-watch": "npx tailwindcss -i src/Application.css -o src/tailwind.css --watch"
		},
		"dependencies": {"nulla": "^1.0.0"},
		"devDependencies": {"tailwindcss": "^3.1"}
	}`, read(t, fsys, "package.json"))

	css := read(t, fsys, "src/Application.css")
	assert.Equal(t, "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n\n.application {}\n", css)

	entry := read(t, fsys, "src/Application.jsx")
	assert.True(t, strings.HasPrefix(entry, "import './Application.css';\nimport './tailwind.css';\n"))
	assert.Equal(t, 1, strings.Count(entry, "import './tailwind.css';"))
}

func TestWeave_TypeScriptEntry(t *testing.T) {
	fsys := setup(t, "tsx", entrySource)

	res, err := Weave(fsys, projectPath, "tsx")
	require.NoError(t, err)

	assert.Contains(t, res.Patched, "src/Application.tsx")
	assert.Contains(t, read(t, fsys, "src/Application.tsx"), "import './tailwind.css';")
}

func TestWeave_MissingImportLineWarns(t *testing.T) {
	source := "export default function Application() {}\n"
	fsys := setup(t, "jsx", source)

	res, err := Weave(fsys, projectPath, "jsx")
	require.NoError(t, err)

	assert.Equal(t, source, read(t, fsys, "src/Application.jsx"))
	assert.NotContains(t, res.Patched, "src/Application.jsx")
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "src/Application.jsx")
}

func TestWeave_SplicesOnlyFirstImport(t *testing.T) {
	source := "import './Application.css';\nimport './Application.css';\n"
	fsys := setup(t, "jsx", source)

	_, err := Weave(fsys, projectPath, "jsx")
	require.NoError(t, err)

	assert.Equal(t,
		"import './Application.css';\nimport './tailwind.css';\nimport './Application.css';\n",
		read(t, fsys, "src/Application.jsx"))
}

func TestWeave_MalformedManifest(t *testing.T) {
	fsys := setup(t, "jsx", entrySource)
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(projectPath, "package.json"), []byte("{"), 0o644))

	_, err := Weave(fsys, projectPath, "jsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing manifest")

	assert.Equal(t, ".application {}\n", read(t, fsys, "src/Application.css"), "later steps must not run")
}

func TestEntry(t *testing.T) {
	assert.Equal(t, "src/Application.jsx", Entry("jsx"))
	assert.Equal(t, "src/Application.tsx", Entry("tsx"))
}
