// Package catalog loads the crop profiles and their disease rules from YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"agrimoga/internal/advisory"
)

//go:embed crops.yaml
var defaultYAML []byte

type file struct {
	Crops []advisory.CropProfile `yaml:"crops"`
}

// Catalog is an immutable set of crop profiles, safe for concurrent reads.
type Catalog struct {
	order []advisory.CropKey
	crops map[advisory.CropKey]advisory.CropProfile
}

// Parse decodes a catalogue document and checks it with Validate.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	c := &Catalog{crops: make(map[advisory.CropKey]advisory.CropProfile, len(f.Crops))}
	for _, p := range f.Crops {
		if _, dup := c.crops[p.Key]; !dup {
			c.order = append(c.order, p.Key)
		}
		c.crops[p.Key] = p
	}
	if problems := Validate(c); len(problems) > 0 {
		return nil, fmt.Errorf("invalid catalog: %s (and %d more)", problems[0], len(problems)-1)
	}
	return c, nil
}

// Load reads a catalogue from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalogue.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(defaultYAML)
	})
	return defaultCat, defaultErr
}

// Get resolves key (legacy aliases included) and falls back to strawberry.
func (c *Catalog) Get(key string) advisory.CropProfile {
	if p, ok := c.crops[advisory.NormalizeCropKey(key)]; ok {
		return p
	}
	return c.crops[advisory.Strawberry]
}

// List returns the profiles in document order.
func (c *Catalog) List() []advisory.CropProfile {
	out := make([]advisory.CropProfile, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.crops[k])
	}
	return out
}
