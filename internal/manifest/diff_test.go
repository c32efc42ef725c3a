package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_ReportsAddedEntries(t *testing.T) {
	before := []byte(`{"name": "widget", "scripts": {"start": "nulla start"}}`)
	after := []byte(`{"name": "widget", "scripts": {"start": "nulla start", "tailwind": "npx tailwindcss"}}`)

	report, err := Diff(before, after)
	require.NoError(t, err)
	assert.Contains(t, report, "scripts")
	assert.Contains(t, report, "tailwind")
}

func TestDiff_NoChanges(t *testing.T) {
	doc := []byte(`{"name": "widget"}`)

	report, err := Diff(doc, doc)
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestDiff_InvalidInput(t *testing.T) {
	_, err := Diff([]byte(`{"name": `), []byte(`{}`))
	assert.Error(t, err)
}
