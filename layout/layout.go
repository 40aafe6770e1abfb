// Package layout arranges panel outlines on flat material sheets for
// cutting. Placement is a deterministic margin-separated shelf walk in
// part order, not a bin packer: parts go left to right and wrap to a
// new row when the sheet width runs out. Nothing stops a part wider
// than the sheet from overhanging it; Overlaps exists so a caller (or a
// regression test) can check the result.
package layout

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Part is a named outline destined for one material sheet.
type Part struct {
	Name  string
	Shape sdf.SDF2
}

// Placement is a part plus the rigid translation that positions it on
// the sheet. The outline itself is never altered.
type Placement struct {
	Part
	Offset v2.Vec
}

// Bounds returns the part's bounding box in sheet coordinates.
func (p Placement) Bounds() sdf.Box2 {
	bb := p.Shape.BoundingBox()
	return sdf.Box2{Min: bb.Min.Add(p.Offset), Max: bb.Max.Add(p.Offset)}
}

// Sheet is one material's cutting layout.
type Sheet struct {
	Material   string
	Width      float64 // usable stock width
	Margin     float64 // spacing between parts and from the origin
	Kerf       float64 // beam width, compensated in Composite
	Placements []Placement
}

// Pack lays the parts onto a sheet in order. The sheet origin is its
// bottom-left corner.
func Pack(material string, width, margin, kerf float64, parts []Part) *Sheet {
	s := &Sheet{
		Material: material,
		Width:    width,
		Margin:   margin,
		Kerf:     kerf,
	}
	x, y, rowH := margin, margin, 0.0
	for _, part := range parts {
		bb := part.Shape.BoundingBox()
		sz := bb.Size()
		if x > margin && x+sz.X+margin > width {
			x = margin
			y += rowH + margin
			rowH = 0
		}
		s.Placements = append(s.Placements, Placement{
			Part:   part,
			Offset: v2.Vec{X: x - bb.Min.X, Y: y - bb.Min.Y},
		})
		x += sz.X + margin
		if sz.Y > rowH {
			rowH = sz.Y
		}
	}
	return s
}

// Bounds returns the bounding box of everything placed.
func (s *Sheet) Bounds() sdf.Box2 {
	if len(s.Placements) == 0 {
		return sdf.Box2{}
	}
	bb := s.Placements[0].Bounds()
	for _, p := range s.Placements[1:] {
		pb := p.Bounds()
		bb.Min = bb.Min.Min(pb.Min)
		bb.Max = bb.Max.Max(pb.Max)
	}
	return bb
}

// Overlaps returns the names of every pair of placements whose bounding
// boxes collide.
func (s *Sheet) Overlaps() [][2]string {
	var bad [][2]string
	for i := 0; i < len(s.Placements); i++ {
		for j := i + 1; j < len(s.Placements); j++ {
			a, b := s.Placements[i].Bounds(), s.Placements[j].Bounds()
			if a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
				a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y {
				bad = append(bad, [2]string{s.Placements[i].Name, s.Placements[j].Name})
			}
		}
	}
	return bad
}

// Composite unions every placed outline into the single SDF2 that gets
// cut. A positive kerf offset grows each part and shrinks its cutouts,
// which is the correct compensation on both kinds of boundary.
func (s *Sheet) Composite() sdf.SDF2 {
	if len(s.Placements) == 0 {
		return nil
	}
	outlines := make([]sdf.SDF2, len(s.Placements))
	for i, p := range s.Placements {
		shape := p.Shape
		if s.Kerf > 0 {
			shape = sdf.Offset2D(shape, s.Kerf/2)
		}
		outlines[i] = sdf.Transform2D(shape, sdf.Translate2d(p.Offset))
	}
	if len(outlines) == 1 {
		return outlines[0]
	}
	return sdf.Union2D(outlines...)
}
