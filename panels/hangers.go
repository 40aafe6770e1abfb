package panels

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// InteriorPanelParams is the shared base for the plastic divider
// panels: a lateral panel sized to the interior, notched at the bottom
// corners to straddle the reservoir walls, with a drain hole near the
// floor so condensate and splash run back into the reservoir.
type InteriorPanelParams struct {
	Size v2.Vec // width x height

	WallNotch     v2.Vec // bottom-corner notch clearing a reservoir wall
	DrainDiameter float64
	DrainCenter   v2.Vec
}

func interiorPanel(k InteriorPanelParams) sdf.SDF2 {
	if k.Size.X <= 0 || k.Size.Y <= 0 {
		panic("interior panel size <= 0")
	}
	s := box(k.Size)
	if k.WallNotch.X > 0 && k.WallNotch.Y > 0 {
		bl := v2.Vec{X: -k.Size.X / 2, Y: -k.Size.Y / 2}
		br := v2.Vec{X: k.Size.X / 2, Y: -k.Size.Y / 2}
		s = sdf.Difference2D(s, cornerNotch(k.WallNotch, bl))
		s = sdf.Difference2D(s, cornerNotch(k.WallNotch, br))
	}
	if k.DrainDiameter > 0 {
		s = sdf.Difference2D(s, at(circle(k.DrainDiameter), k.DrainCenter))
	}
	return s
}

// PadHangerParams defines a divider that suspends the evaporative pad:
// the interior base minus the pad window.
type PadHangerParams struct {
	InteriorPanelParams

	Opening       v2.Vec
	OpeningCenter v2.Vec
}

// PadHanger returns a pad hanger outline.
func PadHanger(k PadHangerParams) sdf.SDF2 {
	if k.Opening.X <= 0 || k.Opening.Y <= 0 {
		panic("pad opening <= 0")
	}
	s := interiorPanel(k.InteriorPanelParams)
	return sdf.Difference2D(s, at(box(k.Opening), k.OpeningCenter))
}

// FanPanelParams defines the single-bore fan mount: the interior base
// minus one duct-sized bore.
type FanPanelParams struct {
	InteriorPanelParams

	BoreDiameter float64
	BoreCenter   v2.Vec
}

// FanPanel returns the single-bore fan panel outline.
func FanPanel(k FanPanelParams) sdf.SDF2 {
	s := interiorPanel(k.InteriorPanelParams)
	return sdf.Difference2D(s, at(circle(k.BoreDiameter), k.BoreCenter))
}

// FanArrayParams defines the alternate fan mount: a grid of smaller fan
// bores, each with four corner mounting holes, centered on Center.
type FanArrayParams struct {
	InteriorPanelParams

	Rows, Cols        int
	BoreDiameter      float64
	MountHoleDiameter float64
	Pitch             float64 // bore center spacing
	Center            v2.Vec
}

// FanArrayPanel returns the array fan panel outline.
func FanArrayPanel(k FanArrayParams) sdf.SDF2 {
	if k.Rows <= 0 || k.Cols <= 0 {
		panic("fan array grid <= 0")
	}
	if k.Pitch <= k.BoreDiameter {
		panic("fan pitch <= bore diameter")
	}

	bores := make(v2.VecSet, 0, k.Rows*k.Cols)
	mounts := make(v2.VecSet, 0, 4*k.Rows*k.Cols)
	// mounting holes on the frame diagonal, just outside the bore
	d := (k.BoreDiameter + k.MountHoleDiameter) / 2
	for r := 0; r < k.Rows; r++ {
		for c := 0; c < k.Cols; c++ {
			p := v2.Vec{
				X: k.Center.X + (float64(c)-float64(k.Cols-1)/2)*k.Pitch,
				Y: k.Center.Y + (float64(r)-float64(k.Rows-1)/2)*k.Pitch,
			}
			bores = append(bores, p)
			mounts = append(mounts,
				v2.Vec{X: p.X - d, Y: p.Y - d},
				v2.Vec{X: p.X + d, Y: p.Y - d},
				v2.Vec{X: p.X - d, Y: p.Y + d},
				v2.Vec{X: p.X + d, Y: p.Y + d},
			)
		}
	}

	s := interiorPanel(k.InteriorPanelParams)
	s = sdf.Difference2D(s, sdf.Multi2D(circle(k.BoreDiameter), bores))
	if k.MountHoleDiameter > 0 {
		s = sdf.Difference2D(s, sdf.Multi2D(circle(k.MountHoleDiameter), mounts))
	}
	return s
}
