// Package centers holds the reference-center registries the pipeline
// matches observations against. Two independent center classes exist:
// city centers and program (ZASCA) centers. A registry is immutable once
// constructed and safe to share across goroutines.
package centers

import "github.com/rotisserie/eris"

// Class identifies one of the two independent center classes.
type Class string

const (
	// ClassCity is the municipal city-center class.
	ClassCity Class = "city"
	// ClassProgram is the ZASCA program-center class.
	ClassProgram Class = "program"
)

// Center is a named reference location.
type Center struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// Registry is an ordered, name-keyed collection of reference centers for
// a single class. Iteration order is declaration order, which also fixes
// the nearest-neighbor tie-break.
type Registry struct {
	class   Class
	centers []Center
	index   map[string]int
}

// NewRegistry builds a registry from an ordered list of centers.
// Duplicate names within a class are a construction-time defect.
func NewRegistry(class Class, centers []Center) (*Registry, error) {
	r := &Registry{
		class:   class,
		centers: make([]Center, len(centers)),
		index:   make(map[string]int, len(centers)),
	}
	copy(r.centers, centers)
	for i, c := range centers {
		if c.Name == "" {
			return nil, eris.Errorf("centers: %s registry entry %d has an empty name", class, i)
		}
		if _, dup := r.index[c.Name]; dup {
			return nil, eris.Errorf("centers: duplicate %s center %q", class, c.Name)
		}
		r.index[c.Name] = i
	}
	return r, nil
}

// Class returns the registry's center class.
func (r *Registry) Class() Class { return r.class }

// Len returns the number of centers in the registry.
func (r *Registry) Len() int { return len(r.centers) }

// Centers returns the registry's centers in declaration order.
// The returned slice must not be mutated.
func (r *Registry) Centers() []Center { return r.centers }

// Lookup returns the center with the given name, matched exactly.
func (r *Registry) Lookup(name string) (Center, bool) {
	i, ok := r.index[name]
	if !ok {
		return Center{}, false
	}
	return r.centers[i], true
}

// mustRegistry panics on construction errors; used only for the built-in
// registries, where a duplicate is a programming mistake.
func mustRegistry(class Class, cs []Center) *Registry {
	r, err := NewRegistry(class, cs)
	if err != nil {
		panic(err)
	}
	return r
}
