package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/nullaframework/create-nulla/internal/output"
)

// ErrPromptAborted is returned when the user interrupts the name prompt.
var ErrPromptAborted = errors.New("prompt aborted")

// Prompter asks the user for a single line of input.
type Prompter interface {
	Ask(question string) (string, error)
}

// surveyPrompter prompts on an interactive terminal.
type surveyPrompter struct{}

func (surveyPrompter) Ask(question string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: strings.TrimSpace(question)}, &answer)
	if errors.Is(err, terminal.InterruptErr) {
		return "", ErrPromptAborted
	}
	if err != nil {
		return "", fmt.Errorf("reading project name: %w", err)
	}
	return answer, nil
}

// linePrompter reads one line from a non-interactive input.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *linePrompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading project name: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NewPrompter returns a survey prompter on a terminal and a plain line
// reader otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if output.IsTTY() {
		return surveyPrompter{}
	}
	return &linePrompter{in: bufio.NewReader(in), out: out}
}
