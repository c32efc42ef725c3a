package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// IsTTY reports whether stdout and stdin are both terminals.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
	tty   func() bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// withTTY overrides terminal detection.
func withTTY(detect func() bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.tty = detect
	}
}

// RunWithSpinner executes action while a spinner is shown.
// Without a terminal the action runs directly. Returns the action's error.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
		tty:   IsTTY,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.tty() {
		return action()
	}

	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		errCh <- action()
		close(done)
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() { <-done }).
		Run()

	// The action always runs to completion; a canceled spinner only stops drawing.
	err := <-errCh
	if err != nil {
		return err
	}
	if spinnerErr != nil && ctx.Err() == nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}
