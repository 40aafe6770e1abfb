package panels

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestBraceEndNotchSymmetry(t *testing.T) {
	for _, length := range []float64{300, 454.3, 584.2, 900} {
		b := Brace(BraceParams{
			Length:     length,
			Height:     50,
			Thickness:  12.7,
			HookMargin: 25.4,
		})
		for xi := 0; xi <= 60; xi++ {
			x := (float64(xi)/60 - 0.5) * (length + 20)
			for _, y := range []float64{-30, -12.5, 0, 12.5, 30} {
				d0 := b.Evaluate(v2.Vec{X: x, Y: y})
				d1 := b.Evaluate(v2.Vec{X: -x, Y: y})
				if !scalar.EqualWithinAbs(d0, d1, 1e-9) {
					t.Fatalf("length %g: asymmetric at (%g,%g): %g vs %g", length, x, y, d0, d1)
				}
			}
		}
	}
}

func TestBraceNotches(t *testing.T) {
	b := Brace(BraceParams{
		Length:        500,
		Height:        50,
		Thickness:     12,
		HookMargin:    25,
		CutoutCenters: []float64{-100, 100},
	})

	material(t, b, 0, 0)
	material(t, b, 0, -20)

	// end notches cut the bottom half, inset a hook margin from the end
	end := 500.0/2 - 25 - 6
	cut(t, b, end, -15)
	cut(t, b, -end, -15)
	material(t, b, end, 15) // top half above the end notch survives

	// interior notches cut the top half
	cut(t, b, 100, 15)
	cut(t, b, -100, 15)
	material(t, b, 100, -15)
	material(t, b, 60, 15) // between cutouts
}

func TestBraceCutoutsFromBottom(t *testing.T) {
	b := Brace(BraceParams{
		Length:            500,
		Height:            50,
		Thickness:         12,
		HookMargin:        25,
		CutoutCenters:     []float64{0},
		CutoutsFromBottom: true,
	})
	cut(t, b, 0, -15)
	material(t, b, 0, 15)
}

func TestBraceOverlappingCutoutsMerge(t *testing.T) {
	// overlapping centers are not rejected, the slots simply merge
	b := Brace(BraceParams{
		Length:        500,
		Height:        50,
		Thickness:     12,
		HookMargin:    25,
		CutoutCenters: []float64{0, 5},
	})
	cut(t, b, 0, 15)
	cut(t, b, 5, 15)
	material(t, b, 40, 15)
}

func TestBraceImpossible(t *testing.T) {
	expectPanic(t, func() {
		Brace(BraceParams{Length: 50, Height: 50, Thickness: 12, HookMargin: 25})
	})
	expectPanic(t, func() {
		Brace(BraceParams{Length: 500, Height: 0, Thickness: 12, HookMargin: 25})
	})
}
