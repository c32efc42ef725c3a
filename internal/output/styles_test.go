package output

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		status string
	}{
		{StatusWritten},
		{StatusCopied},
		{StatusPatched},
		{StatusSkipped},
		{"unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			rendered := StatusStyle(tt.status).Render(tt.status)
			assert.Equal(t, tt.status, stripAnsi(rendered))
		})
	}
}

func TestFormatCommand(t *testing.T) {
	assert.Equal(t, "npm install", stripAnsi(FormatCommand("npm install")))
}

func TestFormatCheckmark(t *testing.T) {
	assert.Equal(t, "✔ Created my-app", stripAnsi(FormatCheckmark("Created my-app")))
}

func TestFormatWarning(t *testing.T) {
	assert.Equal(t, "! import line not found", stripAnsi(FormatWarning("import line not found")))
}

func TestFormatStatuses(t *testing.T) {
	got := stripAnsi(FormatStatuses(StatusWritten, StatusPatched))
	assert.Equal(t, "written, patched", got)
	assert.Equal(t, "", FormatStatuses())
}
