package rtb

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry maps an object's free-form type tag to its gameplay category.
// Lookups are case-insensitive. The zero value is unusable; start from
// DefaultRegistry or LoadRegistry.
type Registry struct {
	categories map[string]Category
}

// DefaultRegistry returns a registry with the stock type tags.
func DefaultRegistry() *Registry {
	r := &Registry{categories: make(map[string]Category, len(categoryNames))}
	for cat, name := range categoryNames {
		if cat == CategoryNone {
			continue
		}
		r.categories[name] = cat
	}
	return r
}

// LoadRegistry reads a YAML file mapping type tags to category names and
// layers it over the defaults, so a file only needs to list aliases.
//
//	aliases:
//	  zapper: laserbeam
//	  spawn: startlocation
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rtb: load registry %s: %w", path, err)
	}

	var file struct {
		Aliases map[string]string `yaml:"aliases"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("rtb: unmarshal registry %s: %w", path, err)
	}

	r := DefaultRegistry()
	for tag, catName := range file.Aliases {
		cat, ok := categoryByName(catName)
		if !ok {
			return nil, fmt.Errorf("rtb: registry %s: unknown category %q for tag %q", path, catName, tag)
		}
		r.categories[strings.ToLower(tag)] = cat
	}
	return r, nil
}

// Register adds or replaces a single tag→category mapping.
func (r *Registry) Register(tag string, cat Category) {
	r.categories[strings.ToLower(tag)] = cat
}

// Lookup returns the category for an object type tag; CategoryNone for
// unknown or empty tags.
func (r *Registry) Lookup(tag string) Category {
	if r == nil || tag == "" {
		return CategoryNone
	}
	if cat, ok := r.categories[strings.ToLower(tag)]; ok {
		return cat
	}
	return CategoryNone
}

func categoryByName(name string) (Category, bool) {
	name = strings.ToLower(name)
	for cat, n := range categoryNames {
		if n == name && cat != CategoryNone {
			return cat, true
		}
	}
	return CategoryNone, false
}
