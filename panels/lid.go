package panels

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// LidParams defines one of the two top lids. The rear lid seals the
// positive pressure fan zone and is a plain rectangle; the front lid
// gets a finger hole so it can be lifted to service the pad.
type LidParams struct {
	Size             v2.Vec // width x depth
	FingerDiameter   float64
	FingerHoleCenter v2.Vec
}

// Lid returns a lid outline.
func Lid(k LidParams) sdf.SDF2 {
	s := box(k.Size)
	if k.FingerDiameter > 0 {
		s = sdf.Difference2D(s, at(circle(k.FingerDiameter), k.FingerHoleCenter))
	}
	return s
}
