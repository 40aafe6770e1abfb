// Package export writes the generated geometry to fabrication files:
// STL for the assembly preview, DXF and SVG for the cutting layouts,
// and a PNG overview diagram of each sheet.
package export

import (
	"errors"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
)

// STL renders a solid to a binary STL file with a marching cubes
// octree of the given cell resolution.
func STL(path string, s sdf.SDF3, cells int) error {
	if s == nil {
		return errors.New("nil solid")
	}
	if cells <= 0 {
		return errors.New("cells <= 0")
	}
	render.ToSTL(s, path, render.NewMarchingCubesOctree(cells))
	return nil
}

// DXF renders a cutting outline to DXF with a marching squares
// quadtree of the given cell resolution.
func DXF(path string, s sdf.SDF2, cells int) error {
	if s == nil {
		return errors.New("nil outline")
	}
	if cells <= 0 {
		return errors.New("cells <= 0")
	}
	render.ToDXF(s, path, render.NewMarchingSquaresQuadtree(cells))
	return nil
}

// SVG renders a cutting outline to SVG with a marching squares
// quadtree of the given cell resolution.
func SVG(path string, s sdf.SDF2, cells int) error {
	if s == nil {
		return errors.New("nil outline")
	}
	if cells <= 0 {
		return errors.New("cells <= 0")
	}
	render.ToSVG(s, path, render.NewMarchingSquaresQuadtree(cells))
	return nil
}
