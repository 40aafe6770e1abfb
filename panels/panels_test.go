package panels

import (
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// material asserts the point is inside the part.
func material(t *testing.T, s sdf.SDF2, x, y float64) {
	t.Helper()
	if d := s.Evaluate(v2.Vec{X: x, Y: y}); d >= 0 {
		t.Errorf("expected material at (%g,%g), distance %g", x, y, d)
	}
}

// cut asserts the point is outside the part (in a cutout or beyond the
// boundary).
func cut(t *testing.T, s sdf.SDF2, x, y float64) {
	t.Helper()
	if d := s.Evaluate(v2.Vec{X: x, Y: y}); d <= 0 {
		t.Errorf("expected cut at (%g,%g), distance %g", x, y, d)
	}
}

// expectPanic asserts the constructor panics.
func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	f()
}
