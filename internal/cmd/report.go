package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/nullaframework/create-nulla/internal/output"
	"github.com/nullaframework/create-nulla/internal/templates"
)

// writeReport renders the run result as a file tree, YAML or JSON.
func writeReport(w io.Writer, format output.Format, res *templates.Result) error {
	if format != output.FormatText {
		return output.WriteStructured(w, format, res)
	}

	files := make(map[string]string, len(res.Files))
	for _, f := range res.Files {
		desc := strings.Join(f.Statuses, ", ")
		if f.MediaType != "" {
			desc += " (" + f.MediaType + ")"
		}
		files[f.Path] = desc
	}
	fmt.Fprint(w, output.RenderFileTree(res.Project.Slug, files))

	if len(res.Skipped) > 0 {
		skipped := output.NewTable("SKIPPED", "REASON")
		for _, s := range res.Skipped {
			skipped.Row(s.Source, s.Reason)
		}
		fmt.Fprintln(w, skipped.String())
	}
	for _, warning := range res.Warnings {
		fmt.Fprintln(w, output.FormatWarning(warning))
	}
	return nil
}
