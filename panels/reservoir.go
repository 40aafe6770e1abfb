package panels

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// ReservoirParams defines the water reservoir: a flat floor and four
// walls nesting inside the interior envelope. The short walls are
// shortened by a material thickness at each end so every seam overlaps
// a wall face for sealant contact.
type ReservoirParams struct {
	Floor      v2.Vec // floor footprint, width x depth
	WallHeight float64
	Thickness  float64
}

// ReservoirFloor returns the reservoir floor outline.
func ReservoirFloor(k ReservoirParams) sdf.SDF2 {
	return box(k.Floor)
}

// ReservoirSideWall returns a long wall running the full floor depth.
func ReservoirSideWall(k ReservoirParams) sdf.SDF2 {
	if k.WallHeight <= 0 {
		panic("reservoir wall height <= 0")
	}
	return box(v2.Vec{X: k.Floor.Y, Y: k.WallHeight})
}

// ReservoirEndWall returns a short wall fitting between the side walls.
func ReservoirEndWall(k ReservoirParams) sdf.SDF2 {
	if k.WallHeight <= 0 {
		panic("reservoir wall height <= 0")
	}
	if k.Floor.X <= 2*k.Thickness {
		panic("reservoir floor narrower than two wall thicknesses")
	}
	return box(v2.Vec{X: k.Floor.X - 2*k.Thickness, Y: k.WallHeight})
}
