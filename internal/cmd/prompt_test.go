package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline terminated", "my app\n", "my app"},
		{"crlf", "my app\r\n", "my app"},
		{"no trailing newline", "widget", "widget"},
		{"empty input", "", ""},
		{"only first line", "first\nsecond\n", "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &linePrompter{in: bufio.NewReader(strings.NewReader(tt.input)), out: &out}

			got, err := p.Ask("Name? ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Name? ", out.String())
		})
	}
}
