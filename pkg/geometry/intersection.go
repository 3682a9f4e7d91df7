package geometry

import (
	"slices"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Intersection pairs a ray parameter with the body it was found on
type Intersection struct {
	T    float64
	Body Body
}

// Intersect wraps every root the body reports into an Intersection
func Intersect(b Body, ray core.Ray) []Intersection {
	roots := b.FindIntersections(ray)
	result := make([]Intersection, len(roots))
	for i, t := range roots {
		result[i] = Intersection{T: t, Body: b}
	}
	return result
}

// FindHit returns the intersection with the smallest non-negative t.
// Intersections behind the ray origin are ignored. Equal parameters keep
// their input order, so ties resolve to the body enumerated first.
func FindHit(intersections []Intersection) (Intersection, bool) {
	sorted := slices.Clone(intersections)
	slices.SortStableFunc(sorted, func(a, b Intersection) int {
		switch {
		case a.T < b.T:
			return -1
		case a.T > b.T:
			return 1
		}
		return 0
	})

	for _, i := range sorted {
		if i.T >= 0 {
			return i, true
		}
	}
	return Intersection{}, false
}

// Cast tests the ray against every body and returns the nearest hit
func Cast(ray core.Ray, bodies []Body) (Intersection, bool) {
	var all []Intersection
	for _, b := range bodies {
		all = append(all, Intersect(b, ray)...)
	}
	return FindHit(all)
}
