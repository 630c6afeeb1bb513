// Package config loads puzzle descriptions from YAML files and validates
// them against the canonical stick catalog before any model is built.
//
// A puzzle file looks like:
//
//	layers: 2
//	base: 171
//	inventory:
//	  - pattern: 7
//	    count: 1
//	  - pattern: 13
//	    count: 2
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/woodpuzzles/kumiki/assembly"
	"github.com/woodpuzzles/kumiki/notch"
)

// DefaultLayers is used when a puzzle file leaves the layer count out.
const DefaultLayers = 1

// A Stick is one inventory line of a puzzle file.
type Stick struct {
	Pattern int `yaml:"pattern"`
	Count   int `yaml:"count"`
}

// A Puzzle is a fully described puzzle configuration.
type Puzzle struct {
	Layers    int     `yaml:"layers"`
	Base      int     `yaml:"base"`
	Inventory []Stick `yaml:"inventory"`
}

// Load reads and validates a puzzle file.
func Load(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read puzzle file: %w", err)
	}
	pz, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pz, nil
}

// Parse decodes and validates an in-memory puzzle description.
func Parse(data []byte) (*Puzzle, error) {
	pz := Puzzle{Layers: DefaultLayers}
	if err := yaml.Unmarshal(data, &pz); err != nil {
		return nil, fmt.Errorf("could not parse puzzle: %w", err)
	}
	if err := pz.validate(); err != nil {
		return nil, err
	}
	return &pz, nil
}

func (p *Puzzle) validate() error {
	if p.Layers < 1 {
		return fmt.Errorf("layer count must be at least 1, got %d", p.Layers)
	}
	if len(p.Inventory) == 0 {
		return fmt.Errorf("puzzle has no inventory")
	}
	if _, err := assembly.DecodeBase(p.Base); err != nil {
		return err
	}
	for _, s := range p.Inventory {
		if _, err := notch.Decode(s.Pattern); err != nil {
			return err
		}
		if !notch.IsCanonical(s.Pattern) {
			return &assembly.UnknownStickTypeError{Pattern: s.Pattern}
		}
		if s.Count < 1 {
			return fmt.Errorf("stick %d has non-positive count %d", s.Pattern, s.Count)
		}
	}
	return nil
}

// Assembly converts the puzzle's inventory to the model builder's form.
func (p *Puzzle) Assembly() assembly.Inventory {
	inv := make(assembly.Inventory, len(p.Inventory))
	for i, s := range p.Inventory {
		inv[i] = assembly.Entry{Pattern: s.Pattern, Count: s.Count}
	}
	return inv
}
