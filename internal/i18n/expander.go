package i18n

import (
	"fmt"

	"gopkg.in/yaml.v3"

	nerrors "github.com/nullaframework/create-nulla/internal/errors"
	"github.com/nullaframework/create-nulla/internal/tokens"
)

// Structured keys of a template table.
const (
	keyLinks = "links"
	keyNulla = "nulla"
)

// Link is one (label, url) pair of the links list.
type Link struct {
	Label string
	URL   string
}

// Attribution is the mascot credit block.
type Attribution struct {
	Link     string
	AltImage string
}

// Entry is one top-level key of a template table.
// Exactly one of Value, Links or Attribution is meaningful, depending on Key.
type Entry struct {
	Key         string
	Value       string
	Links       []Link
	Attribution *Attribution
}

// TemplateTable holds the localization tokens embedded in template files,
// in document order.
type TemplateTable struct {
	Locale  string
	Entries []Entry
}

// ParseTemplateTable decodes a JSON template table, keeping key order.
// Non-string scalars keep their literal JSON text.
func ParseTemplateTable(data []byte) (*TemplateTable, error) {
	// JSON is a YAML subset; the node tree keeps mapping order.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, nerrors.Wrap(nerrors.ErrValidation, "expected a single JSON object")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nerrors.Wrap(nerrors.ErrValidation,
			fmt.Sprintf("expected a JSON object at top level, got %s", kindName(root.Kind)))
	}

	table := &TemplateTable{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]

		entry := Entry{Key: key}
		var err error
		switch key {
		case keyLinks:
			entry.Links, err = parseLinks(value)
		case keyNulla:
			entry.Attribution, err = parseAttribution(value)
		default:
			if value.Kind != yaml.ScalarNode {
				err = fmt.Errorf("expected a scalar, got %s", kindName(value.Kind))
			}
			entry.Value = value.Value
		}
		if err != nil {
			return nil, nerrors.Wrap(nerrors.ErrValidation, fmt.Sprintf("key %q: %v", key, err))
		}
		table.Entries = append(table.Entries, entry)
	}
	return table, nil
}

func parseLinks(n *yaml.Node) ([]Link, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list of [label, url] pairs, got %s", kindName(n.Kind))
	}
	links := make([]Link, 0, len(n.Content))
	for i, pair := range n.Content {
		if pair.Kind != yaml.SequenceNode || len(pair.Content) != 2 {
			return nil, fmt.Errorf("item %d: expected [label, url]", i)
		}
		links = append(links, Link{Label: pair.Content[0].Value, URL: pair.Content[1].Value})
	}
	return links, nil
}

func parseAttribution(n *yaml.Node) (*Attribution, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected an object with link and altImage, got %s", kindName(n.Kind))
	}
	a := &Attribution{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		switch n.Content[i].Value {
		case "link":
			a.Link = n.Content[i+1].Value
		case "altImage":
			a.AltImage = n.Content[i+1].Value
		}
	}
	return a, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "object"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "unknown"
	}
}

// Replacements lists every i18n token of the table with its value, in table order.
// links become link{i}:0 and link{i}:1; nulla becomes nulla.link and nulla.altImage.
func (t *TemplateTable) Replacements() []tokens.Replacement {
	var out []tokens.Replacement
	for _, e := range t.Entries {
		switch {
		case e.Key == keyLinks:
			for i, l := range e.Links {
				out = append(out,
					tokens.Replacement{Name: fmt.Sprintf("link%d:0", i), Value: l.Label},
					tokens.Replacement{Name: fmt.Sprintf("link%d:1", i), Value: l.URL},
				)
			}
		case e.Key == keyNulla && e.Attribution != nil:
			out = append(out,
				tokens.Replacement{Name: "nulla.link", Value: e.Attribution.Link},
				tokens.Replacement{Name: "nulla.altImage", Value: e.Attribution.AltImage},
			)
		default:
			out = append(out, tokens.Replacement{Name: e.Key, Value: e.Value})
		}
	}
	return out
}

// Expand replaces every i18n token of the table in content.
func (t *TemplateTable) Expand(content string) string {
	return tokens.ApplyAll(content, tokens.NamespaceI18n, t.Replacements())
}
