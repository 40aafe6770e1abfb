package swampthing

import (
	"math"

	"github.com/cbiffle/Swamp-Thing/assembly"
	"github.com/cbiffle/Swamp-Thing/layout"
	"github.com/cbiffle/Swamp-Thing/panels"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Panel outlines. Each method maps the Config onto one panels
// constructor; all positions are derived here so the panels package
// stays free of enclosure knowledge.

// LateralBrace spans the width between the two side panels. Its
// interior notches clear the longitudinal braces crossing it.
func (c Config) LateralBrace() sdf.SDF2 {
	return panels.Brace(panels.BraceParams{
		Length:        c.Width,
		Height:        c.BraceHeight,
		Thickness:     c.WoodThickness,
		HookMargin:    c.HookMargin,
		CutoutCenters: c.longitudinalBraceStations(),
	})
}

// LongitudinalBrace spans the depth between the front and rear panels,
// half-lapping the lateral braces from below.
func (c Config) LongitudinalBrace() sdf.SDF2 {
	return panels.Brace(panels.BraceParams{
		Length:            c.Depth,
		Height:            c.BraceHeight,
		Thickness:         c.WoodThickness,
		HookMargin:        c.HookMargin,
		CutoutCenters:     c.lateralBraceStations(),
		CutoutsFromBottom: true,
	})
}

// SidePanel is one of the two longitudinal walls.
func (c Config) SidePanel() sdf.SDF2 {
	return panels.SidePanel(panels.SidePanelParams{
		Size:             v2.Vec{X: c.Depth, Y: c.Height},
		WoodThickness:    c.WoodThickness,
		PlasticThickness: c.PlasticThickness,
		HookMargin:       c.HookMargin,
		BraceStations:    c.lateralBraceStations(),
		DividerStations:  c.dividerStations(),
		DividerSlotDepth: c.DividerSlotDepth(),
	})
}

// FrontPanel is the intake wall with the pad window.
func (c Config) FrontPanel() sdf.SDF2 {
	return panels.FrontPanel(panels.FrontPanelParams{
		Size:          v2.Vec{X: c.Width, Y: c.Height},
		WoodThickness: c.WoodThickness,
		HookMargin:    c.HookMargin,
		BraceStations: c.longitudinalBraceStations(),
		Opening:       v2.Vec{X: c.PadOpeningWidth(), Y: c.PadOpeningHeight()},
		OpeningCenter: v2.Vec{Y: c.PadCenterHeight() - c.Height/2},
		HangSlot:      v2.Vec{X: c.PlasticThickness, Y: c.PadOpeningHeight()},
	})
}

// RearPanel is the exhaust wall with the duct hole.
func (c Config) RearPanel() sdf.SDF2 {
	return panels.RearPanel(panels.RearPanelParams{
		Size:          v2.Vec{X: c.Width, Y: c.Height},
		WoodThickness: c.WoodThickness,
		HookMargin:    c.HookMargin,
		BraceStations: c.longitudinalBraceStations(),
		DuctDiameter:  c.DuctDiameter,
		DuctCenter:    v2.Vec{Y: c.DuctCenterHeight() - c.Height/2},
	})
}

// interiorBase is the divider panel base shared by the pad hangers and
// the fan panels.
func (c Config) interiorBase() panels.InteriorPanelParams {
	ih := c.InteriorHeight()
	return panels.InteriorPanelParams{
		Size: v2.Vec{X: c.InteriorWidth() + 2*c.HookMargin, Y: ih},
		WallNotch: v2.Vec{
			X: c.HookMargin + c.ReservoirClearance + 2*c.PlasticThickness,
			Y: c.ReservoirDepth + c.ReservoirClearance,
		},
		DrainDiameter: c.DrainDiameter,
		DrainCenter:   v2.Vec{Y: c.ReservoirDepth/2 - ih/2},
	}
}

// PadHanger is one of the two dividers sandwiching the pad.
func (c Config) PadHanger() sdf.SDF2 {
	return panels.PadHanger(panels.PadHangerParams{
		InteriorPanelParams: c.interiorBase(),
		Opening:             v2.Vec{X: c.PadOpeningWidth(), Y: c.PadOpeningHeight()},
		OpeningCenter:       v2.Vec{Y: c.PadCenterHeight() - c.floorHeight() - c.InteriorHeight()/2},
	})
}

// FanPanel is the divider carrying the fan, in whichever mount strategy
// the Config selects.
func (c Config) FanPanel() sdf.SDF2 {
	center := v2.Vec{Y: c.DuctCenterHeight() - c.floorHeight() - c.InteriorHeight()/2}
	if c.FanMount == FanMountArray {
		return panels.FanArrayPanel(panels.FanArrayParams{
			InteriorPanelParams: c.interiorBase(),
			Rows:                c.FanRows,
			Cols:                c.FanCols,
			BoreDiameter:        c.FanBoreDiameter,
			MountHoleDiameter:   c.FanMountHoleDiameter,
			Pitch:               c.FanPitch,
			Center:              center,
		})
	}
	return panels.FanPanel(panels.FanPanelParams{
		InteriorPanelParams: c.interiorBase(),
		BoreDiameter:        c.DuctDiameter,
		BoreCenter:          center,
	})
}

func (c Config) reservoir() panels.ReservoirParams {
	return panels.ReservoirParams{
		Floor: v2.Vec{
			X: c.InteriorWidth() - 2*c.ReservoirClearance,
			Y: c.InteriorDepth() - 2*c.ReservoirClearance,
		},
		WallHeight: c.ReservoirDepth,
		Thickness:  c.PlasticThickness,
	}
}

func (c Config) ReservoirFloor() sdf.SDF2    { return panels.ReservoirFloor(c.reservoir()) }
func (c Config) ReservoirSideWall() sdf.SDF2 { return panels.ReservoirSideWall(c.reservoir()) }
func (c Config) ReservoirEndWall() sdf.SDF2  { return panels.ReservoirEndWall(c.reservoir()) }

// RearLid seals the fan compartment.
func (c Config) RearLid() sdf.SDF2 {
	return panels.Lid(panels.LidParams{
		Size: v2.Vec{X: c.Width, Y: c.RearLidDepth()},
	})
}

// FrontLid covers the pad and intake zone and lifts out for service.
func (c Config) FrontLid() sdf.SDF2 {
	d := c.FrontLidDepth()
	return panels.Lid(panels.LidParams{
		Size:             v2.Vec{X: c.Width, Y: d},
		FingerDiameter:   c.DrainDiameter,
		FingerHoleCenter: v2.Vec{Y: c.HookMargin - d/2},
	})
}

// Part lists, one per material sheet.

// WoodParts returns every outline cut from the structural sheet.
func (c Config) WoodParts() []layout.Part {
	side := c.SidePanel()
	lat := c.LateralBrace()
	long := c.LongitudinalBrace()
	return []layout.Part{
		{Name: "side-left", Shape: side},
		{Name: "side-right", Shape: side},
		{Name: "front", Shape: c.FrontPanel()},
		{Name: "rear", Shape: c.RearPanel()},
		{Name: "lid-front", Shape: c.FrontLid()},
		{Name: "lid-rear", Shape: c.RearLid()},
		{Name: "brace-lateral-front", Shape: lat},
		{Name: "brace-lateral-rear", Shape: lat},
		{Name: "brace-longitudinal-left", Shape: long},
		{Name: "brace-longitudinal-right", Shape: long},
	}
}

// PlasticParts returns every outline cut from the divider sheet.
func (c Config) PlasticParts() []layout.Part {
	hanger := c.PadHanger()
	sideWall := c.ReservoirSideWall()
	endWall := c.ReservoirEndWall()
	return []layout.Part{
		{Name: "pad-hanger-front", Shape: hanger},
		{Name: "pad-hanger-rear", Shape: hanger},
		{Name: "fan-panel", Shape: c.FanPanel()},
		{Name: "reservoir-floor", Shape: c.ReservoirFloor()},
		{Name: "reservoir-wall-left", Shape: sideWall},
		{Name: "reservoir-wall-right", Shape: sideWall},
		{Name: "reservoir-wall-front", Shape: endWall},
		{Name: "reservoir-wall-rear", Shape: endWall},
	}
}

// Assembly. World frame: x across the width, y along the depth (front
// at -y), z up, origin centered on the footprint at the exterior
// bottom.

func pose(x, y, z float64, rot ...sdf.M44) sdf.M44 {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	for _, r := range rot {
		m = m.Mul(r)
	}
	return m
}

// parts3 places every panel at its assembled position.
func (c Config) parts3() []assembly.Part {
	const halfPi = math.Pi / 2
	upright := sdf.RotateX(halfPi)                              // XY outline stood up facing ±y
	uprightSide := sdf.RotateZ(halfPi).Mul(sdf.RotateX(halfPi)) // stood up facing ±x

	var ps []assembly.Part
	add := func(name string, outline sdf.SDF2, thickness float64, m sdf.M44) {
		ps = append(ps, assembly.Part{Name: name, Outline: outline, Thickness: thickness, Pose: m})
	}

	wt, pt := c.WoodThickness, c.PlasticThickness
	side := c.SidePanel()
	add("side-left", side, wt, pose(-(c.Width-wt)/2, 0, c.Height/2, uprightSide))
	add("side-right", side, wt, pose((c.Width-wt)/2, 0, c.Height/2, uprightSide))
	add("front", c.FrontPanel(), wt, pose(0, -(c.Depth-wt)/2, c.Height/2, upright))
	add("rear", c.RearPanel(), wt, pose(0, (c.Depth-wt)/2, c.Height/2, upright))

	braceZ := c.Height - c.BraceHeight/2
	lat := c.LateralBrace()
	for _, y := range c.lateralBraceStations() {
		add("brace-lateral", lat, wt, pose(0, y, braceZ, upright))
	}
	long := c.LongitudinalBrace()
	for _, x := range c.longitudinalBraceStations() {
		add("brace-longitudinal", long, wt, pose(x, 0, braceZ, uprightSide))
	}

	floorZ := c.floorHeight()
	ih := c.InteriorHeight()
	hanger := c.PadHanger()
	front := c.dividerStations()[0]
	rear := c.dividerStations()[1]
	fan := c.dividerStations()[2]
	add("pad-hanger-front", hanger, pt, pose(0, front, floorZ+ih/2, upright))
	add("pad-hanger-rear", hanger, pt, pose(0, rear, floorZ+ih/2, upright))
	add("fan-panel", c.FanPanel(), pt, pose(0, fan, floorZ+ih/2, upright))

	res := c.reservoir()
	wallZ := floorZ + pt + res.WallHeight/2
	add("reservoir-floor", c.ReservoirFloor(), pt, pose(0, 0, floorZ+pt/2))
	sideWall := c.ReservoirSideWall()
	add("reservoir-wall-left", sideWall, pt, pose(-(res.Floor.X-pt)/2, 0, wallZ, uprightSide))
	add("reservoir-wall-right", sideWall, pt, pose((res.Floor.X-pt)/2, 0, wallZ, uprightSide))
	endWall := c.ReservoirEndWall()
	add("reservoir-wall-front", endWall, pt, pose(0, -(res.Floor.Y-pt)/2, wallZ, upright))
	add("reservoir-wall-rear", endWall, pt, pose(0, (res.Floor.Y-pt)/2, wallZ, upright))

	lidZ := c.Height - wt/2
	add("lid-rear", c.RearLid(), wt, pose(0, (c.Depth-c.RearLidDepth())/2, lidZ))
	add("lid-front", c.FrontLid(), wt, pose(0, -(c.Depth-c.FrontLidDepth())/2, lidZ))

	return ps
}
