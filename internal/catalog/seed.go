package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Rrens/design-assistant/internal/domain"
)

//go:embed templates.json
var seedData []byte

// Default returns the catalog built from the embedded seed.
func Default() *Catalog {
	c, err := parse(seedData)
	if err != nil {
		// The embedded seed is validated by tests; a parse failure here
		// is a build defect.
		panic(fmt.Sprintf("catalog: invalid embedded seed: %v", err))
	}
	return c
}

// LoadFile builds a catalog from a JSON file, preserving file order.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return c, nil
}

func parse(data []byte) (*Catalog, error) {
	var templates []domain.Template
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, err
	}
	return New(templates), nil
}
