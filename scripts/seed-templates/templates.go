package main

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"card-consumption-assistant/internal/model"
)

type templateFile struct {
	Templates []templateEntry `yaml:"templates"`
}

type templateEntry struct {
	ID       string         `yaml:"id"`
	Content  string         `yaml:"content"`
	Metadata map[string]any `yaml:"metadata"`
}

// parseTemplates decodes a seed file. IDs must be present and unique.
func parseTemplates(raw []byte) ([]model.TemplateDocument, error) {
	var f templateFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if len(f.Templates) == 0 {
		return nil, fmt.Errorf("no templates")
	}

	seen := make(map[string]struct{}, len(f.Templates))
	docs := make([]model.TemplateDocument, 0, len(f.Templates))
	for i, t := range f.Templates {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return nil, fmt.Errorf("template %d: missing id", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("template %d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}

		meta := t.Metadata
		if meta == nil {
			meta = map[string]any{}
		}
		docs = append(docs, model.TemplateDocument{
			ID:       id,
			Content:  strings.TrimSpace(t.Content),
			Metadata: meta,
		})
	}
	return docs, nil
}
