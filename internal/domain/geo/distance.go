// Package geo approximates distances between named regions using a static
// centroid table.
package geo

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// validBound is the range of valid WGS84 coordinates.
var validBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// Table resolves region names, including aliases, to centroids.
type Table struct {
	names     map[string]string // normalized name or alias -> canonical name
	centroids map[string]orb.Point
}

// NewTable builds a lookup table. Names are matched ignoring case, spaces and
// punctuation, so "Trans Nzoia" and "trans-nzoia" resolve to the same region.
func NewTable(centroids map[string]orb.Point, aliases map[string][]string) (*Table, error) {
	t := &Table{
		names:     make(map[string]string, len(centroids)),
		centroids: make(map[string]orb.Point, len(centroids)),
	}

	for name, p := range centroids {
		if !validBound.Contains(p) {
			return nil, fmt.Errorf("centroid of %q out of range: %v", name, p)
		}
		if err := t.addName(name, name); err != nil {
			return nil, err
		}
		t.centroids[name] = p
	}

	for name, as := range aliases {
		if _, ok := t.centroids[name]; !ok {
			return nil, fmt.Errorf("alias target %q has no centroid", name)
		}
		for _, a := range as {
			if err := t.addName(a, name); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

func (t *Table) addName(name, canonical string) error {
	key := normalizeRegion(name)
	if key == "" {
		return fmt.Errorf("empty region name for %q", canonical)
	}
	if existing, ok := t.names[key]; ok && existing != canonical {
		return fmt.Errorf("region name %q maps to both %q and %q", name, existing, canonical)
	}
	t.names[key] = canonical

	return nil
}

// Canonical returns the canonical region name for a name or alias.
func (t *Table) Canonical(region string) (string, bool) {
	name, ok := t.names[normalizeRegion(region)]

	return name, ok
}

// Lookup returns the centroid of a region.
func (t *Table) Lookup(region string) (orb.Point, bool) {
	name, ok := t.Canonical(region)
	if !ok {
		return orb.Point{}, false
	}

	return t.centroids[name], true
}

// Regions returns the canonical region names in alphabetical order.
func (t *Table) Regions() []string {
	out := make([]string, 0, len(t.centroids))
	for name := range t.centroids {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Distance returns the great-circle distance in kilometers between two
// regions. ok is false when either region is not in the table.
func (t *Table) Distance(from, to string) (km float64, ok bool) {
	a, ok := t.Lookup(from)
	if !ok {
		return 0, false
	}
	b, ok := t.Lookup(to)
	if !ok {
		return 0, false
	}

	return Haversine(a, b), true
}

// Haversine computes the great-circle distance in kilometers between two points.
func Haversine(a, b orb.Point) float64 {
	lat1 := toRadians(a.Lat())
	lat2 := toRadians(b.Lat())
	dLat := toRadians(b.Lat() - a.Lat())
	dLon := toRadians(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func normalizeRegion(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
