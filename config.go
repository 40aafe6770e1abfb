// Package swampthing generates the laser-cut panel outlines for a
// wooden evaporative (swamp) cooler enclosure. Air is pulled through a
// wetted pad suspended near the front of the box, pressurized by a fan
// panel near the rear, and pushed out a round duct in the rear wall.
// The structural shell is cut from plywood, the wetted dividers and the
// water reservoir from plastic sheet.
//
// Every outline is a pure function of a Config. The same outlines feed
// two outputs: a 3D assembly preview (STL) and flat per-material
// cutting layouts (DXF/SVG) ready for a laser cutter.
package swampthing

import "github.com/deadsy/sdfx/sdf"

const in = sdf.MillimetresPerInch

// FanMount selects how the fan panel carries its fan(s).
type FanMount int

const (
	// FanMountBore is a single large bore matching the duct diameter.
	FanMountBore FanMount = iota
	// FanMountArray is a grid of smaller fan cutouts, each with corner
	// mounting holes.
	FanMountArray
)

// Config is the full parameter set for one enclosure. All lengths are
// millimetres. Derived dimensions are methods; nothing is cached.
//
// Inconsistent values are not validated here. Dimensions that make an
// outline impossible to build (non-positive sizes, notches wider than
// the part) panic inside the panels package and surface as an error
// from the Build functions. Merely nonsensical combinations produce
// nonsensical geometry, as the original did.
type Config struct {
	// Exterior envelope.
	Width  float64 // across the pad face (x)
	Depth  float64 // front (pad) to rear (duct) (y)
	Height float64

	WoodThickness    float64 // structural sheet stock
	PlasticThickness float64 // divider and reservoir sheet stock

	// HookMargin is the extra material kept around every notch and
	// slot for structural strength.
	HookMargin float64

	// Evaporative pad block.
	PadWidth     float64
	PadHeight    float64
	PadThickness float64
	PadMargin    float64 // shelf of material retained around the pad opening

	DuctDiameter  float64
	DrainDiameter float64

	// PadClearance is the gap between the interior front face and the
	// front pad hanger; FanClearance the gap between the interior rear
	// face and the fan panel.
	PadClearance float64
	FanClearance float64

	// Water reservoir.
	ReservoirDepth     float64 // wall height (water depth capacity)
	ReservoirClearance float64 // gap between reservoir and interior walls

	BraceHeight float64 // width of the cross-brace slats

	// Fan mount strategy, selected at composition time.
	FanMount             FanMount
	FanRows, FanCols     int
	FanBoreDiameter      float64
	FanMountHoleDiameter float64
	FanPitch             float64

	// Fabrication.
	Kerf        float64 // laser kerf, compensated at layout time
	SheetWidth  float64 // usable width of the stock sheets
	SheetMargin float64 // spacing between parts on a sheet
}

// Classic returns the original build: a 23 inch cube cut from half-inch
// ply with a 6 inch pad.
func Classic() Config {
	return Config{
		Width:  23 * in,
		Depth:  23 * in,
		Height: 23 * in,

		WoodThickness:    0.5 * in,
		PlasticThickness: 6.0,

		HookMargin: 1 * in,

		PadWidth:     20 * in,
		PadHeight:    12 * in,
		PadThickness: 6 * in,
		PadMargin:    1 * in,

		DuctDiameter:  8 * in,
		DrainDiameter: 1 * in,

		PadClearance: 2 * in,
		FanClearance: 4 * in,

		ReservoirDepth:     5 * in,
		ReservoirClearance: 3.0,

		BraceHeight: 2 * in,

		FanMount:             FanMountBore,
		FanRows:              2,
		FanCols:              2,
		FanBoreDiameter:      116.0, // 120mm frame fans
		FanMountHoleDiameter: 4.5,
		FanPitch:             130,

		Kerf:        0.2,
		SheetWidth:  48 * in,
		SheetMargin: 10,
	}
}

// ThinStock is the second configuration observed in the wild: 12mm
// baltic birch and a pad hung closer to the front wall.
func ThinStock() Config {
	c := Classic()
	c.WoodThickness = 12.0
	c.PadClearance = 1.5 * in
	return c
}

// Interior dimensions. Each axis loses a hook margin and a wall
// thickness on both sides.

func (c Config) InteriorWidth() float64  { return c.Width - 2*(c.HookMargin+c.WoodThickness) }
func (c Config) InteriorDepth() float64  { return c.Depth - 2*(c.HookMargin+c.WoodThickness) }
func (c Config) InteriorHeight() float64 { return c.Height - 2*(c.HookMargin+c.WoodThickness) }

// PadOpeningWidth is the clear width of the pad window.
func (c Config) PadOpeningWidth() float64 { return c.PadWidth - 2*c.PadMargin }

// PadOpeningHeight is the clear height of the pad window.
func (c Config) PadOpeningHeight() float64 { return c.PadHeight - 2*c.PadMargin }

// PadOffset is the distance from the exterior front face to the front
// pad hanger plane.
func (c Config) PadOffset() float64 { return c.HookMargin + c.WoodThickness + c.PadClearance }

// FanOffset is the distance from the exterior rear face to the fan
// panel plane.
func (c Config) FanOffset() float64 { return c.HookMargin + c.WoodThickness + c.FanClearance }

// RearLidDepth is the depth of the sealed rear lid. The split line sits
// over the fan panel so the rear lid exactly covers the positive
// pressure compartment.
func (c Config) RearLidDepth() float64 { return c.FanOffset() + c.PlasticThickness/2 }

// FrontLidDepth is the depth of the removable front lid. Rear and front
// lids together always span the full exterior depth.
func (c Config) FrontLidDepth() float64 { return c.Depth - c.RearLidDepth() }

// PadCenterHeight is the height of the pad window center above the
// exterior bottom. The pad hangs just above the reservoir water line.
func (c Config) PadCenterHeight() float64 { return c.ReservoirDepth + c.PadHeight/2 }

// DuctCenterHeight centers the duct in the dry zone above the
// reservoir.
func (c Config) DuctCenterHeight() float64 {
	return c.ReservoirDepth + (c.Height-c.ReservoirDepth)/2
}

// DividerSlotDepth is how far the side-panel divider slots reach down
// from the top edge.
func (c Config) DividerSlotDepth() float64 { return (c.Height - c.ReservoirDepth) / 2 }

// floorHeight is the interior floor level above the exterior bottom.
func (c Config) floorHeight() float64 { return c.HookMargin + c.WoodThickness }

// Brace stations. Lateral braces run across the width at two depth
// stations; longitudinal braces run across the depth at two width
// stations. Both pairs sit at the interior quarter points so the
// crossings land well away from the wall slots.

func (c Config) lateralBraceStations() []float64 {
	q := c.InteriorDepth() / 4
	return []float64{-q, q}
}

func (c Config) longitudinalBraceStations() []float64 {
	q := c.InteriorWidth() / 4
	return []float64{-q, q}
}

// dividerStations are the divider slot centers along the side panel,
// measured from the panel center: the two pad hangers and the fan
// panel.
func (c Config) dividerStations() []float64 {
	front := -c.Depth/2 + c.PadOffset() + c.PlasticThickness/2
	rear := front + c.PadThickness + c.PlasticThickness
	fan := c.Depth/2 - c.FanOffset()
	return []float64{front, rear, fan}
}
