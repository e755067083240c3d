package tracer

import (
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/optics"
	"seehuhn.de/go/geom/vec"
)

func TestResolverNearest(t *testing.T) {
	near := optics.NewMirror(optics.Centered(vec.Vec2{X: 5}, 10, 180), 1)
	far := optics.NewMirror(optics.Centered(vec.Vec2{X: 15}, 10, 180), 1)
	behind := optics.NewMirror(optics.Centered(vec.Vec2{X: -5}, 10, 0), 1)

	tests := []struct {
		name          string
		elements      []optics.Element
		dir           vec.Vec2
		expectedIndex int
		expectedT     float64
	}{
		{"nearest wins regardless of order", []optics.Element{far, behind, near}, vec.Vec2{X: 1}, 2, 5},
		{"behind the origin is ignored", []optics.Element{behind, far}, vec.Vec2{X: 1}, 1, 15},
		{"reverse direction", []optics.Element{far, near, behind}, vec.Vec2{X: -1}, 2, 5},
		{"miss", []optics.Element{near, far}, vec.Vec2{Y: 1}, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, index, ok := NewResolver(tt.elements).Nearest(vec.Vec2{}, tt.dir)
			if tt.expectedIndex < 0 {
				if ok {
					t.Errorf("Expected no hit, got element %d", index)
				}
				return
			}
			if !ok || index != tt.expectedIndex {
				t.Fatalf("Expected element %d, got %d (hit %t)", tt.expectedIndex, index, ok)
			}
			if !nearlyEqual(hit.T, tt.expectedT, 1e-12) {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestResolverTieBreakIsListOrder(t *testing.T) {
	a := optics.NewMirror(optics.Centered(vec.Vec2{X: 5}, 10, 180), 1)
	b := optics.NewLens(optics.Centered(vec.Vec2{X: 5}, 10, 180), 50)

	for _, order := range [][]optics.Element{{a, b}, {b, a}} {
		r := NewResolver(order)
		for i := 0; i < 3; i++ {
			_, index, ok := r.Nearest(vec.Vec2{}, vec.Vec2{X: 1})
			if !ok || index != 0 {
				t.Errorf("Expected the first coincident element to win, got %d", index)
			}
		}
	}
}
