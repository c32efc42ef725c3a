package manifest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"
)

// Diff renders a human-readable report of the differences between two
// manifest versions. It returns "" when they are equivalent.
func Diff(before, after []byte) (string, error) {
	from, err := inputFile("before", before)
	if err != nil {
		return "", fmt.Errorf("parsing manifest before change: %w", err)
	}
	to, err := inputFile("after", after)
	if err != nil {
		return "", fmt.Errorf("parsing manifest after change: %w", err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing manifests: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	human := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      true,
		OmitHeader:        true,
	}
	if err := human.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing manifest report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func inputFile(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	doc, err := yaml.JSONToYAML(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	docs, err := ytbx.LoadYAMLDocuments(doc)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
