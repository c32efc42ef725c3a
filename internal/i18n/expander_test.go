package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nerrors "github.com/nullaframework/create-nulla/internal/errors"
)

const sampleTable = `{
  "title": "Welcome",
  "links": [
    ["Docs", "https://example.com/docs"],
    ["Repo", "https://example.com/repo"]
  ],
  "nulla": {
    "altImage": "mascot waving",
    "link": "https://example.com/nulla"
  },
  "year": 2024,
  "beta": true
}`

func TestParseTemplateTable(t *testing.T) {
	table, err := ParseTemplateTable([]byte(sampleTable))
	require.NoError(t, err)

	require.Len(t, table.Entries, 5)
	keys := make([]string, 0, len(table.Entries))
	for _, e := range table.Entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"title", "links", "nulla", "year", "beta"}, keys)

	assert.Equal(t, "Welcome", table.Entries[0].Value)
	assert.Equal(t, []Link{
		{Label: "Docs", URL: "https://example.com/docs"},
		{Label: "Repo", URL: "https://example.com/repo"},
	}, table.Entries[1].Links)
	assert.Equal(t, &Attribution{Link: "https://example.com/nulla", AltImage: "mascot waving"}, table.Entries[2].Attribution)
	assert.Equal(t, "2024", table.Entries[3].Value)
	assert.Equal(t, "true", table.Entries[4].Value)
}

func TestParseTemplateTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"top level list", `[1, 2]`, "top level"},
		{"empty document", ``, "single JSON object"},
		{"links not a list", `{"links": "x"}`, `key "links"`},
		{"link pair too short", `{"links": [["only label"]]}`, "item 0"},
		{"nulla not an object", `{"nulla": ["a", "b"]}`, `key "nulla"`},
		{"unknown key with object value", `{"other": {"a": "b"}}`, `key "other"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplateTable([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.ErrorIs(t, err, nerrors.ErrValidation)
		})
	}
}

func TestTemplateTable_Expand(t *testing.T) {
	table, err := ParseTemplateTable([]byte(sampleTable))
	require.NoError(t, err)

	content := `<h1>{{i18n_title}}</h1>
<a href="{{i18n_link0:1}}">{{i18n_link0:0}}</a>
<a href="{{i18n_link1:1}}">{{i18n_link1:0}}</a>
<a href="{{i18n_nulla.link}}"><img alt="{{i18n_nulla.altImage}}"></a>
<footer>{{i18n_year}} {{PROJECT_NAME}} {{i18n_missing}}</footer>`

	got := table.Expand(content)

	assert.Equal(t, `<h1>Welcome</h1>
<a href="https://example.com/docs">Docs</a>
<a href="https://example.com/repo">Repo</a>
<a href="https://example.com/nulla"><img alt="mascot waving"></a>
<footer>2024 {{PROJECT_NAME}} {{i18n_missing}}</footer>`, got)
}

func TestTemplateTable_Replacements(t *testing.T) {
	table, err := ParseTemplateTable([]byte(`{"links": [["A", "a"]], "nulla": {"link": "l", "altImage": "i"}}`))
	require.NoError(t, err)

	names := make([]string, 0)
	for _, r := range table.Replacements() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"link0:0", "link0:1", "nulla.link", "nulla.altImage"}, names)
}

func TestEmbeddedTemplateTables_ExpandEveryToken(t *testing.T) {
	for _, tag := range []string{"en-US", "pt-BR"} {
		cat, err := Load(tag)
		require.NoError(t, err)

		for _, r := range cat.Template.Replacements() {
			placeholder := "{{i18n_" + r.Name + "}}"
			assert.NotContains(t, cat.Template.Expand(placeholder), "{{i18n_", "%s: %s", tag, r.Name)
		}
	}
}
