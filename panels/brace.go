package panels

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// BraceParams defines a cross-brace slat. The two end notches are cut
// from the bottom edge, inset HookMargin from each end, and lock into
// the wall-panel slots. Interior notches at CutoutCenters (measured
// from the brace center) clear crossing braces; centers that overlap
// are not checked and simply merge in the subtraction.
type BraceParams struct {
	Length     float64
	Height     float64 // slat width on the sheet
	Thickness  float64 // material thickness, sets every notch width
	HookMargin float64

	CutoutCenters []float64
	// CutoutsFromBottom cuts the interior notches from the bottom edge
	// instead of the top, so a crossing pair of braces can half-lap.
	CutoutsFromBottom bool
}

// Brace returns the cross-brace outline.
func Brace(k BraceParams) sdf.SDF2 {
	if k.Length <= 0 || k.Height <= 0 || k.Thickness <= 0 {
		panic("brace dimension <= 0")
	}
	if k.HookMargin < 0 {
		panic("brace hook margin < 0")
	}
	if k.Length <= 2*(k.HookMargin+k.Thickness) {
		panic("brace too short for end notches")
	}

	s := box(v2.Vec{X: k.Length, Y: k.Height})

	// End notches, symmetric about the brace center.
	end := k.Length/2 - k.HookMargin - k.Thickness/2
	bottom := -k.Height / 2
	s = sdf.Difference2D(s, edgeSlots([]float64{-end, end}, k.Thickness, k.Height/2, bottom))

	if len(k.CutoutCenters) > 0 {
		edge := k.Height / 2
		if k.CutoutsFromBottom {
			edge = bottom
		}
		s = sdf.Difference2D(s, edgeSlots(k.CutoutCenters, k.Thickness, k.Height/2, edge))
	}
	return s
}
