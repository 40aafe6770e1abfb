// Package assembly places extruded panel outlines at their assembled
// positions for visual verification. The scene is static: it mirrors
// the build instructions (walls slotted, braces half-lapped, reservoir
// nested, dividers seated, lids on top) and nothing else.
package assembly

import "github.com/deadsy/sdfx/sdf"

// Part is one panel in the assembly: its cutting outline, the material
// thickness it is cut from, and the rigid pose placing it in the scene.
// Pose must be a valid transform; the zero matrix is not the identity.
type Part struct {
	Name      string
	Outline   sdf.SDF2
	Thickness float64
	Pose      sdf.M44
}

// Solid extrudes a part to its material thickness and moves it to its
// assembled pose.
func Solid(p Part) sdf.SDF3 {
	if p.Thickness <= 0 {
		panic("part thickness <= 0")
	}
	return sdf.Transform3D(sdf.Extrude3D(p.Outline, p.Thickness), p.Pose)
}

// Scene unions the posed parts into one preview solid.
func Scene(parts []Part) sdf.SDF3 {
	if len(parts) == 0 {
		panic("empty assembly")
	}
	solids := make([]sdf.SDF3, len(parts))
	for i, p := range parts {
		solids[i] = Solid(p)
	}
	if len(solids) == 1 {
		return solids[0]
	}
	return sdf.Union3D(solids...)
}
