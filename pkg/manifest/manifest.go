package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cameron-webmatter/stencil/pkg/scaffold"
)

type document struct {
	Entities []entry `yaml:"entities"`
}

type entry struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
}

// Load reads a scaffolding manifest. Entity order and per-entity field
// order are preserved as written.
func Load(path string) ([]scaffold.Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if len(doc.Entities) == 0 {
		return nil, fmt.Errorf("manifest %s declares no entities", path)
	}

	entities := make([]scaffold.Entity, 0, len(doc.Entities))
	for i, e := range doc.Entities {
		if e.Name == "" {
			return nil, fmt.Errorf("manifest %s: entity %d has no name", path, i)
		}
		entities = append(entities, scaffold.Entity{
			Name:   e.Name,
			Fields: e.Fields,
		})
	}

	return entities, nil
}
