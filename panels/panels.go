// Package panels builds the 2D cutting outlines of every enclosure
// part. Every outline is a base rectangle (or rectangle union) with
// notches, slots and holes subtracted, centered on its own origin.
//
// Constructors panic on dimensions that make an outline impossible to
// build. The top-level swampthing package recovers these panics into
// errors; callers composing panels directly get the panic.
package panels

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// box returns a sharp-cornered rectangle centered on the origin.
func box(size v2.Vec) sdf.SDF2 {
	if size.X <= 0 || size.Y <= 0 {
		panic("box size <= 0")
	}
	return sdf.Box2D(size, 0)
}

// circle returns a circle of the given diameter centered on the origin.
func circle(diameter float64) sdf.SDF2 {
	if diameter <= 0 {
		panic("diameter <= 0")
	}
	s, err := sdf.Circle2D(diameter / 2)
	if err != nil {
		panic(err)
	}
	return s
}

// at translates an outline.
func at(s sdf.SDF2, p v2.Vec) sdf.SDF2 {
	return sdf.Transform2D(s, sdf.Translate2d(p))
}

// edgeSlots returns cut material for a row of slots of width w reaching
// depth d past the edge line y=edge, one per center. The slot boxes
// straddle the edge so the boolean subtraction leaves no sliver on the
// boundary.
func edgeSlots(centers []float64, w, d, edge float64) sdf.SDF2 {
	if w <= 0 || d <= 0 {
		panic("slot size <= 0")
	}
	slot := box(v2.Vec{X: w, Y: 2 * d})
	pos := make(v2.VecSet, len(centers))
	for i, c := range centers {
		pos[i] = v2.Vec{X: c, Y: edge}
	}
	return sdf.Multi2D(slot, pos)
}

// cornerNotch returns cut material removing a notch of the given size
// at an outline corner. The cut box is doubled and centered on the
// corner itself so it always cuts cleanly through both edges.
func cornerNotch(size, corner v2.Vec) sdf.SDF2 {
	if size.X <= 0 || size.Y <= 0 {
		panic("notch size <= 0")
	}
	return at(box(v2.Vec{X: 2 * size.X, Y: 2 * size.Y}), corner)
}
