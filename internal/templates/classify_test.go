package templates

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(recs []AssetRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.RelativePath)
	}
	return out
}

func TestClassify_EmbeddedTemplate(t *testing.T) {
	assets, err := Classify(Root())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"README.md",
		"_gitignore",
		"index.html",
		"package_json",
		"src/Application.css",
		"src/Application.jsx",
		"src/Application.tsx",
		"src/index.jsx",
		"src/index.tsx",
		"tailwind_config.js",
		"tsconfig_json",
	}, paths(assets.Text))

	assert.Equal(t, []string{
		"public/favicon.svg",
		"public/nulla-chan-en-US.webp",
		"public/nulla-chan-pt-BR.webp",
	}, paths(assets.Binary))

	assert.Equal(t, 14, assets.Len())
	for _, r := range assets.Text {
		assert.Equal(t, TextAsset, r.Class)
	}
	for _, r := range assets.Binary {
		assert.Equal(t, BinaryAsset, r.Class)
	}
}

func TestClassify_PublicAnywhereInAncestors(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/public/img/logo.png": {Data: []byte("png")},
		"public.txt":                 {Data: []byte("not a dir")},
		"publicity/readme.md":        {Data: []byte("text")},
		"a/b/c.txt":                  {Data: []byte("text")},
	}

	assets, err := Classify(fsys)
	require.NoError(t, err)

	assert.Equal(t, []string{"assets/public/img/logo.png"}, paths(assets.Binary))
	assert.ElementsMatch(t, []string{"public.txt", "publicity/readme.md", "a/b/c.txt"}, paths(assets.Text))
}

func TestClassify_EveryFileExactlyOnce(t *testing.T) {
	assets, err := Classify(Root())
	require.NoError(t, err)

	seen := map[string]int{}
	for _, p := range append(paths(assets.Text), paths(assets.Binary)...) {
		seen[p]++
	}

	count := 0
	err = fs.WalkDir(Root(), ".", func(p string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if !d.IsDir() {
			count++
			assert.Equal(t, 1, seen[p], p)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, count, assets.Len())
}

type failingFS struct{ fstest.MapFS }

func (f failingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == "broken" {
		return nil, fs.ErrPermission
	}
	return f.MapFS.ReadDir(name)
}

func TestClassify_WalkErrorAborts(t *testing.T) {
	fsys := failingFS{fstest.MapFS{
		"a.txt":        {Data: []byte("a")},
		"broken/b.txt": {Data: []byte("b")},
	}}

	_, err := Classify(fsys)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
}
