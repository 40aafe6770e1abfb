package panels

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

func testSidePanel() SidePanelParams {
	return SidePanelParams{
		Size:             v2.Vec{X: 500, Y: 500},
		WoodThickness:    12,
		PlasticThickness: 6,
		HookMargin:       25,
		BraceStations:    []float64{-125, 125},
		DividerStations:  []float64{-200, -40, 150},
		DividerSlotDepth: 230,
	}
}

func TestSidePanelSlots(t *testing.T) {
	s := SidePanel(testSidePanel())

	material(t, s, 0, 0)
	// corners survive every subtraction
	material(t, s, -248, -248)
	material(t, s, 248, -248)
	material(t, s, -248, 248)
	material(t, s, 248, 248)

	// brace slots reach one hook margin below the top edge
	cut(t, s, 125, 240)
	cut(t, s, -125, 240)
	material(t, s, 125, 220) // below the slot floor
	material(t, s, 139, 240) // between brace and divider slots

	// divider slots are plastic-width and much deeper
	cut(t, s, 150, 100)
	cut(t, s, -200, 50)
	cut(t, s, -40, 240)
	material(t, s, 150, 10) // below the divider slot floor
}

func TestSidePanelNoStations(t *testing.T) {
	k := testSidePanel()
	k.BraceStations = nil
	k.DividerStations = nil
	s := SidePanel(k)
	material(t, s, 0, 240)
	material(t, s, 125, 240)
}

func TestFrontPanelOpening(t *testing.T) {
	s := FrontPanel(FrontPanelParams{
		Size:          v2.Vec{X: 500, Y: 500},
		WoodThickness: 12,
		HookMargin:    25,
		BraceStations: []float64{-125, 125},
		Opening:       v2.Vec{X: 300, Y: 200},
		OpeningCenter: v2.Vec{Y: -20},
		HangSlot:      v2.Vec{X: 6, Y: 200},
	})

	cut(t, s, 0, -20)          // pad window
	cut(t, s, 140, -20)        // still window
	cut(t, s, 156, -20)        // hang slot
	cut(t, s, -156, -20)       // hang slot, mirrored
	material(t, s, 151.5, -20) // web between window and hang slot
	material(t, s, 0, 120)     // above the window
	material(t, s, 0, -180)    // below the window
	material(t, s, 200, -20)   // outboard of the hang slots
	cut(t, s, 125, 240)        // brace slot
}

func TestRearPanelDuct(t *testing.T) {
	s := RearPanel(RearPanelParams{
		Size:          v2.Vec{X: 500, Y: 500},
		WoodThickness: 12,
		HookMargin:    25,
		BraceStations: []float64{-125, 125},
		DuctDiameter:  200,
		DuctCenter:    v2.Vec{Y: 50},
	})

	cut(t, s, 0, 50)
	cut(t, s, 0, 145) // near the rim, still open
	material(t, s, 0, 160)
	material(t, s, 130, 50)
	material(t, s, 0, -100)
}

func TestWallPanelImpossible(t *testing.T) {
	expectPanic(t, func() {
		SidePanel(SidePanelParams{Size: v2.Vec{X: -1, Y: 500}})
	})
	expectPanic(t, func() {
		FrontPanel(FrontPanelParams{
			Size:    v2.Vec{X: 500, Y: 500},
			Opening: v2.Vec{X: 0, Y: 200},
		})
	})
	expectPanic(t, func() {
		RearPanel(RearPanelParams{
			Size:         v2.Vec{X: 500, Y: 500},
			DuctDiameter: -1,
		})
	})
}
