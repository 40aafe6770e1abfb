package export

import (
	"fmt"
	"image/color"

	"github.com/cbiffle/Swamp-Thing/layout"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SheetDiagram draws the placement rectangles of a sheet layout to a
// PNG, the quick sanity check before committing stock to the cutter.
func SheetDiagram(path string, s *layout.Sheet) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s sheet", s.Material)
	p.X.Label.Text = "mm"
	p.Y.Label.Text = "mm"

	for _, pl := range s.Placements {
		bb := pl.Bounds()
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: bb.Min.X, Y: bb.Min.Y},
			{X: bb.Max.X, Y: bb.Min.Y},
			{X: bb.Max.X, Y: bb.Max.Y},
			{X: bb.Min.X, Y: bb.Max.Y},
		})
		if err != nil {
			return err
		}
		poly.Color = color.NRGBA{R: 0x60, G: 0x90, B: 0xc0, A: 0x50}
		p.Add(poly)
	}

	bb := s.Bounds()
	sz := bb.Max.Sub(bb.Min)
	if sz.X <= 0 || sz.Y <= 0 {
		return fmt.Errorf("empty %s sheet", s.Material)
	}
	// keep the image aspect close to the sheet's
	w := 6 * vg.Inch
	h := vg.Length(float64(w) * sz.Y / sz.X)
	return p.Save(w, h, path)
}
