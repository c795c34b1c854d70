package geo

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Load reads a projected geometry file: a JSON array of units with ids,
// centroids and projected areas, produced by an external projection step.
func Load(path string) ([]Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geometry: %w", err)
	}
	var units []Unit
	if err := json.Unmarshal(data, &units); err != nil {
		return nil, fmt.Errorf("parse geometry %s: %w", path, err)
	}
	for i, u := range units {
		if u.ID == "" {
			return nil, fmt.Errorf("geometry %s: unit %d has no id", path, i)
		}
	}
	return units, nil
}

// Save writes units back out in the same format Load reads.
func Save(path string, units []Unit) error {
	data, err := json.MarshalIndent(units, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
