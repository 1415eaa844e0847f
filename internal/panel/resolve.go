package panel

import (
	"github.com/innpulsa-research/zasca-cli/internal/centers"
	"github.com/innpulsa-research/zasca-cli/internal/geodist"
)

// MatchMethod tags how a center assignment was produced.
type MatchMethod string

const (
	// MatchLabel means the observation's authoritative label matched a
	// registry center.
	MatchLabel MatchMethod = "label"
	// MatchNearest means the assignment fell back to the geographically
	// nearest registry center.
	MatchNearest MatchMethod = "nearest"
)

// Assignment is the derived (name, distance) pair for one observation
// and one center class. DistanceKM is nil when the distance is
// undefined.
type Assignment struct {
	Name       string
	DistanceKM *float64
	Method     MatchMethod
}

// Resolve assigns a center from reg to the observation at (lat, lon)
// carrying the given authoritative label. The label wins when it matches
// a registry name; otherwise the nearest center is assigned, ties broken
// by registry order. A nil latitude or longitude short-circuits the
// whole resolution and returns ok=false.
//
// Matching is exact and case-sensitive unless fold is non-nil, in which
// case fold is applied to both sides of the comparison. The assigned
// name always keeps the registry spelling.
func Resolve(lat, lon *float64, label string, reg *centers.Registry, fold func(string) string) (Assignment, bool) {
	if lat == nil || lon == nil {
		return Assignment{}, false
	}

	if label != "" {
		if c, ok := labelMatch(reg, label, fold); ok {
			d := geodist.Kilometers(*lat, *lon, c.Lat, c.Lon)
			return Assignment{Name: c.Name, DistanceKM: &d, Method: MatchLabel}, true
		}
		// Unmatched label: intentional strictness, fall back to nearest.
	}

	best := -1
	var bestD float64
	for i, c := range reg.Centers() {
		d := geodist.Kilometers(*lat, *lon, c.Lat, c.Lon)
		if best < 0 || d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		// Empty registry: nothing to assign.
		return Assignment{}, false
	}

	return Assignment{Name: reg.Centers()[best].Name, DistanceKM: &bestD, Method: MatchNearest}, true
}

// labelMatch finds the registry center an authoritative label refers to,
// exactly or (when fold is set) under folding.
func labelMatch(reg *centers.Registry, label string, fold func(string) string) (centers.Center, bool) {
	if fold == nil {
		return reg.Lookup(label)
	}
	want := fold(label)
	for _, c := range reg.Centers() {
		if fold(c.Name) == want {
			return c, true
		}
	}
	return centers.Center{}, false
}
