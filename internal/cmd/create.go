package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	oerrors "github.com/nullaframework/create-nulla/internal/errors"
	"github.com/nullaframework/create-nulla/internal/i18n"
	"github.com/nullaframework/create-nulla/internal/output"
	"github.com/nullaframework/create-nulla/internal/project"
	"github.com/nullaframework/create-nulla/internal/repo"
	"github.com/nullaframework/create-nulla/internal/templates"
)

// runCreate assembles the project name, materializes the project and prints
// the next steps. Every failure goes through reportRunError.
func runCreate(cmd *cobra.Command, args []string, flags *rootFlags, env *environment, g *GlobalConfig) error {
	msgs := g.Catalog.Messages

	raw := strings.Join(args, " ")
	if raw == "" {
		prompter := env.prompter
		if prompter == nil {
			prompter = NewPrompter(promptIO(cmd))
		}
		answer, err := prompter.Ask(msgs.QuestionName)
		if errors.Is(err, ErrPromptAborted) {
			return NewExitError(err, ExitGeneralError)
		}
		if err != nil {
			return reportRunError(msgs, g.ExitCodes, err)
		}
		raw = answer
	}

	id, err := project.NewIdentity(raw)
	if err != nil {
		return reportRunError(msgs, g.ExitCodes, err)
	}

	cwd, err := env.cwd()
	if err != nil {
		return reportRunError(msgs, g.ExitCodes, fmt.Errorf("resolving working directory: %w", err))
	}

	target := env.fs
	if flags.dryRun {
		target = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(env.fs), afero.NewMemMapFs())
	}

	source := templates.Root()
	assets, err := templates.Classify(source)
	if err != nil {
		return reportRunError(msgs, g.ExitCodes, err)
	}

	m := templates.NewMaterializer(templates.MaterializerConfig{
		Source:    source,
		Assets:    assets,
		Target:    target,
		Cwd:       cwd,
		EditorURL: g.Settings.EditorURL,
		Strings:   g.Catalog.Template,
	})
	opts := templates.Options{
		UseAlternateLanguage: g.Settings.TypeScript,
		UseStylingAddOn:      g.Settings.Tailwind,
		Locale:               g.Settings.Locale,
	}

	output.Debug("creating project",
		"slug", id.Slug,
		"name", id.DisplayName,
		"path", m.ProjectPath(id.Slug),
		"typescript", opts.UseAlternateLanguage,
		"tailwind", opts.UseStylingAddOn,
		"locale", opts.Locale,
	)

	var res *templates.Result
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var runErr error
		res, runErr = m.Run(id, opts)
		return runErr
	}, output.WithTitle(fmt.Sprintf("Creating %s...", id.Slug)))
	if err != nil {
		return reportRunError(msgs, g.ExitCodes, err)
	}

	if g.Settings.Git && !flags.dryRun {
		outcome, err := repo.Init(res.ProjectPath)
		if err != nil {
			output.Warn("git repository not initialized", "path", res.ProjectPath, "error", err)
		} else if outcome == repo.Initialized {
			output.Info("git repository initialized", "path", res.ProjectPath)
		} else {
			output.Debug("git init skipped", "outcome", outcome)
		}
	}

	if flags.dryRun || cmd.Flags().Changed("output") {
		if err := writeReport(cmd.OutOrStdout(), g.Format, res); err != nil {
			return NewExitError(err, ExitGeneralError)
		}
	}

	if flags.dryRun {
		output.Println(output.FormatWarning("dry run, nothing was written"))
		return nil
	}

	printNextSteps(msgs, id)
	return nil
}

// reportRunError is the single error boundary of a run. It prints the
// localized message for err and returns an already-printed ExitError.
func reportRunError(msgs *i18n.Messages, codes ExitCodes, err error) error {
	var code int
	switch {
	case errors.Is(err, oerrors.ErrInvalidName):
		output.Println(msgs.Error.UnvalidName)
		code = codes.InvalidName
	case errors.Is(err, oerrors.ErrAlreadyExists):
		output.Println(msgs.Error.AlreadyExists)
		code = codes.AlreadyExists
	default:
		output.Println(msgs.Error.Default + " " + err.Error())
		code = codes.RunFailed
	}
	output.Debug("run failed", "error", err, "exitCode", code, "exit", ExitCodeName(code))
	return &ExitError{Err: err, Code: code, Printed: true}
}

// printNextSteps prints the completion instructions.
func printNextSteps(msgs *i18n.Messages, id project.Identity) {
	output.Println(msgs.Ready(id.DisplayName))
	output.Println(output.FormatCommand("cd " + id.Slug))
	output.Println(output.FormatCommand("npm install"))
	output.Println(msgs.Success.OpenEditor)
	output.Println(output.FormatCommand("npm start"))
}
