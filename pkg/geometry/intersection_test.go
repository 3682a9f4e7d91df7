package geometry

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestFindHit_SmallestNonNegative(t *testing.T) {
	sphere := NewUnitSphere()
	intersections := []Intersection{
		{T: -2, Body: sphere},
		{T: 1, Body: sphere},
		{T: 3, Body: sphere},
		{T: 0.5, Body: sphere},
	}

	hit, ok := FindHit(intersections)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.T != 0.5 {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}
	if intersections[0].T != -2 {
		t.Error("FindHit should not reorder its input")
	}
}

func TestFindHit_ZeroCounts(t *testing.T) {
	hit, ok := FindHit([]Intersection{{T: -1}, {T: 0}})
	if !ok || hit.T != 0 {
		t.Errorf("Expected hit at t=0, got %v %v", hit, ok)
	}
}

func TestFindHit_NoneQualify(t *testing.T) {
	if _, ok := FindHit([]Intersection{{T: -3}, {T: -0.1}}); ok {
		t.Error("Expected no hit when every intersection is behind the origin")
	}
	if _, ok := FindHit(nil); ok {
		t.Error("Expected no hit for an empty list")
	}
}

func TestFindHit_TiesKeepBodyOrder(t *testing.T) {
	first := NewUnitSphere()
	second := NewUnitSphere()

	hit, _ := FindHit([]Intersection{{T: 2, Body: first}, {T: 2, Body: second}})
	if hit.Body != Body(first) {
		t.Error("Expected the body enumerated first to win a tie")
	}
}

func TestCast_NearestBody(t *testing.T) {
	near := NewSphere(1, core.NewPoint(0, 0, 0))
	far := NewSphere(1, core.NewPoint(0, 0, -5))
	behind := NewSphere(1, core.NewPoint(0, 0, 10))
	ray := core.NewRay(core.NewPoint(0, 0, 5), core.NewArrow(0, 0, -1))

	hit, ok := Cast(ray, []Body{far, behind, near})
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.Body != Body(near) {
		t.Errorf("Expected nearest sphere, got %v", hit.Body)
	}
	if hit.T != 4 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
}

func TestCast_Miss(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, 5), core.NewArrow(0, 0, -1))
	if _, ok := Cast(ray, []Body{NewSphere(1, core.NewPoint(5, 5, 5))}); ok {
		t.Error("Expected no hit")
	}
}

func TestIntersect_WrapsRoots(t *testing.T) {
	sphere := NewUnitSphere()
	ray := core.NewRay(core.NewPoint(0, 0, 5), core.NewArrow(0, 0, -1))

	xs := Intersect(sphere, ray)
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	for _, x := range xs {
		if x.Body != Body(sphere) {
			t.Error("Expected intersections to point back at the sphere")
		}
	}
}
