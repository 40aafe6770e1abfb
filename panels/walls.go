package panels

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// SidePanelParams defines a longitudinal wall panel. Its local x axis
// runs along the enclosure depth. The top edge carries two slot rows:
// brace slots that receive the lateral brace end notches, and deeper
// divider slots that seat the plastic hanger and fan panels.
type SidePanelParams struct {
	Size             v2.Vec // depth x height
	WoodThickness    float64
	PlasticThickness float64
	HookMargin       float64

	BraceStations    []float64 // lateral brace centers, from panel center
	DividerStations  []float64 // divider plane centers, from panel center
	DividerSlotDepth float64
}

// SidePanel returns a longitudinal wall outline.
func SidePanel(k SidePanelParams) sdf.SDF2 {
	if k.Size.X <= 0 || k.Size.Y <= 0 {
		panic("side panel size <= 0")
	}
	s := box(k.Size)
	top := k.Size.Y / 2
	if len(k.BraceStations) > 0 {
		s = sdf.Difference2D(s, edgeSlots(k.BraceStations, k.WoodThickness, k.HookMargin, top))
	}
	if len(k.DividerStations) > 0 {
		s = sdf.Difference2D(s, edgeSlots(k.DividerStations, k.PlasticThickness, k.DividerSlotDepth, top))
	}
	return s
}

// endPanelParams is the shared base for the front and rear walls: a
// rectangle with brace slots along the top edge. The two exported
// variants differ only in the opening subtracted from the base.
type endPanelParams struct {
	Size          v2.Vec // width x height
	WoodThickness float64
	HookMargin    float64
	BraceStations []float64
}

func endPanel(k endPanelParams) sdf.SDF2 {
	if k.Size.X <= 0 || k.Size.Y <= 0 {
		panic("end panel size <= 0")
	}
	s := box(k.Size)
	if len(k.BraceStations) > 0 {
		s = sdf.Difference2D(s, edgeSlots(k.BraceStations, k.WoodThickness, k.HookMargin, k.Size.Y/2))
	}
	return s
}

// FrontPanelParams defines the front (intake) wall: the end-panel base
// minus the centered pad window and the hang slots flanking it, through
// which the pad hanger hooks pass.
type FrontPanelParams struct {
	Size          v2.Vec
	WoodThickness float64
	HookMargin    float64
	BraceStations []float64

	Opening       v2.Vec // pad window
	OpeningCenter v2.Vec
	HangSlot      v2.Vec // one flanking slot; zero disables the pair
}

// FrontPanel returns the front wall outline.
func FrontPanel(k FrontPanelParams) sdf.SDF2 {
	if k.Opening.X <= 0 || k.Opening.Y <= 0 {
		panic("pad opening <= 0")
	}
	s := endPanel(endPanelParams{
		Size:          k.Size,
		WoodThickness: k.WoodThickness,
		HookMargin:    k.HookMargin,
		BraceStations: k.BraceStations,
	})
	s = sdf.Difference2D(s, at(box(k.Opening), k.OpeningCenter))
	if k.HangSlot.X > 0 && k.HangSlot.Y > 0 {
		dx := k.Opening.X/2 + k.HangSlot.X
		slots := sdf.Multi2D(box(k.HangSlot), v2.VecSet{
			{X: k.OpeningCenter.X - dx, Y: k.OpeningCenter.Y},
			{X: k.OpeningCenter.X + dx, Y: k.OpeningCenter.Y},
		})
		s = sdf.Difference2D(s, slots)
	}
	return s
}

// RearPanelParams defines the rear (exhaust) wall: the end-panel base
// minus the round duct hole.
type RearPanelParams struct {
	Size          v2.Vec
	WoodThickness float64
	HookMargin    float64
	BraceStations []float64

	DuctDiameter float64
	DuctCenter   v2.Vec
}

// RearPanel returns the rear wall outline.
func RearPanel(k RearPanelParams) sdf.SDF2 {
	s := endPanel(endPanelParams{
		Size:          k.Size,
		WoodThickness: k.WoodThickness,
		HookMargin:    k.HookMargin,
		BraceStations: k.BraceStations,
	})
	return sdf.Difference2D(s, at(circle(k.DuctDiameter), k.DuctCenter))
}
