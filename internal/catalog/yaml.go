package catalog

import (
	"errors"
	"fmt"
	"io"

	yaml "go.yaml.in/yaml/v3"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

type yamlCatalog struct {
	Plants []domain.Plant `yaml:"plants"`
}

// ParseYAML reads plants from a YAML document with a top-level "plants" list.
// Unknown keys are rejected.
func ParseYAML(r io.Reader) ([]domain.Plant, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlCatalog
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: yaml: %w", domain.ErrInvalidInput, err)
	}
	return doc.Plants, nil
}
