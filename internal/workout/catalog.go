// Package workout holds the catalog of known workouts and the handlers that
// turn a chosen workout into a log entry.
package workout

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/sloth/internal/profile"
)

// Kind selects the handler a workout is dispatched to.
type Kind string

const (
	Cardio   Kind = "cardio"
	Physical Kind = "physical"
)

// DefaultPointsPerUnit is the XP per mile or kilometre when a cardio workout doesn't set one.
const DefaultPointsPerUnit = 10.0

// Definition represents a workout definition from the YAML file
type Definition struct {
	Name          string  `yaml:"-"`
	Kind          Kind    `yaml:"kind"`
	PointsPerUnit float64 `yaml:"points_per_unit,omitempty"` // cardio only
}

// CatalogConfig represents the structure of the workouts.yaml file
type CatalogConfig struct {
	Workouts map[string]Definition `yaml:"workouts"`
}

// Catalog is an immutable set of workouts keyed by normalized name.
type Catalog struct {
	defs  map[string]Definition
	names []string
}

// Normalize returns the catalog form of a typed workout name.
func Normalize(name string) string {
	return profile.Capitalize(strings.TrimSpace(name))
}

// NewCatalog builds a catalog, normalizing names and validating kinds.
func NewCatalog(defs map[string]Definition) (*Catalog, error) {
	c := &Catalog{defs: make(map[string]Definition, len(defs))}
	for name, def := range defs {
		key := Normalize(name)
		if key == "" {
			return nil, fmt.Errorf("workout with empty name")
		}
		if _, dup := c.defs[key]; dup {
			return nil, fmt.Errorf("workout %q listed twice", key)
		}
		switch def.Kind {
		case Cardio:
			if def.PointsPerUnit < 0 {
				return nil, fmt.Errorf("workout %q: points_per_unit must not be negative", key)
			}
			if def.PointsPerUnit == 0 {
				def.PointsPerUnit = DefaultPointsPerUnit
			}
		case Physical:
		default:
			return nil, fmt.Errorf("workout %q: unknown kind %q", key, def.Kind)
		}
		def.Name = key
		c.defs[key] = def
		c.names = append(c.names, key)
	}
	if len(c.names) == 0 {
		return nil, fmt.Errorf("workout catalog is empty")
	}
	sort.Strings(c.names)
	return c, nil
}

// DefaultCatalog returns the built-in workouts.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(map[string]Definition{
		"Cardio":         {Kind: Cardio, PointsPerUnit: DefaultPointsPerUnit},
		"Bench press":    {Kind: Physical},
		"Squat":          {Kind: Physical},
		"Deadlift":       {Kind: Physical},
		"Overhead press": {Kind: Physical},
		"Pull ups":       {Kind: Physical},
		"Push ups":       {Kind: Physical},
		"Sit ups":        {Kind: Physical},
		"Curls":          {Kind: Physical},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog loads workout definitions from a YAML file
func LoadCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read workouts file: %w", err)
	}

	var config CatalogConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse workouts YAML: %w", err)
	}

	c, err := NewCatalog(config.Workouts)
	if err != nil {
		return nil, fmt.Errorf("invalid workouts file %s: %w", filename, err)
	}
	return c, nil
}

// LoadCatalogOrDefault loads filename when it exists and returns DefaultCatalog otherwise.
func LoadCatalogOrDefault(filename string) (*Catalog, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultCatalog(), nil
	}
	return LoadCatalog(filename)
}

// Lookup finds a workout by name, ignoring case.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	def, ok := c.defs[Normalize(name)]
	return def, ok
}

// Complete returns the sorted names starting with the normalized prefix.
// An empty prefix matches everything.
func (c *Catalog) Complete(prefix string) []string {
	prefix = Normalize(prefix)
	var matches []string
	for _, name := range c.names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Names returns all workout names, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
