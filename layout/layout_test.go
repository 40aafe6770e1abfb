package layout_test

import (
	"testing"

	swampthing "github.com/cbiffle/Swamp-Thing"
	"github.com/cbiffle/Swamp-Thing/layout"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/floats/scalar"
)

func box(w, h float64) sdf.SDF2 {
	return sdf.Box2D(v2.Vec{X: w, Y: h}, 0)
}

func TestPackShelfWalk(t *testing.T) {
	parts := []layout.Part{
		{Name: "a", Shape: box(100, 50)},
		{Name: "b", Shape: box(200, 80)},
		{Name: "c", Shape: box(150, 30)},
	}
	s := layout.Pack("test", 400, 10, 0, parts)

	// a and b share the first row, c wraps to a second row above the
	// tallest part of the first
	want := []v2.Vec{
		{X: 60, Y: 35},
		{X: 220, Y: 50},
		{X: 85, Y: 115},
	}
	if len(s.Placements) != len(want) {
		t.Fatalf("placed %d parts, want %d", len(s.Placements), len(want))
	}
	for i, w := range want {
		got := s.Placements[i].Offset
		if !scalar.EqualWithinAbs(got.X, w.X, 1e-9) || !scalar.EqualWithinAbs(got.Y, w.Y, 1e-9) {
			t.Errorf("%s: offset %+v, want %+v", s.Placements[i].Name, got, w)
		}
	}

	bb := s.Bounds()
	if !scalar.EqualWithinAbs(bb.Min.X, 10, 1e-9) || !scalar.EqualWithinAbs(bb.Min.Y, 10, 1e-9) {
		t.Errorf("bounds min %+v, want (10,10)", bb.Min)
	}
	if !scalar.EqualWithinAbs(bb.Max.X, 320, 1e-9) || !scalar.EqualWithinAbs(bb.Max.Y, 130, 1e-9) {
		t.Errorf("bounds max %+v, want (320,130)", bb.Max)
	}
}

func TestPackDeterministic(t *testing.T) {
	parts := swampthing.Classic().WoodParts()
	a := layout.Pack("wood", 1000, 10, 0, parts)
	b := layout.Pack("wood", 1000, 10, 0, parts)
	for i := range a.Placements {
		if a.Placements[i].Offset != b.Placements[i].Offset {
			t.Fatalf("placement %d moved between runs", i)
		}
	}
}

func TestPresetSheetsFit(t *testing.T) {
	for _, tc := range []struct {
		name string
		c    swampthing.Config
	}{
		{"classic", swampthing.Classic()},
		{"thinstock", swampthing.ThinStock()},
	} {
		wood, err := swampthing.BuildWoodSheet(tc.c)
		if err != nil {
			t.Fatalf("%s wood: %v", tc.name, err)
		}
		plastic, err := swampthing.BuildPlasticSheet(tc.c)
		if err != nil {
			t.Fatalf("%s plastic: %v", tc.name, err)
		}
		for _, s := range []*layout.Sheet{wood, plastic} {
			if bad := s.Overlaps(); len(bad) != 0 {
				t.Errorf("%s %s: overlapping parts %v", tc.name, s.Material, bad)
			}
			if bb := s.Bounds(); bb.Max.X > s.Width {
				t.Errorf("%s %s: layout %g wide overruns the %g sheet", tc.name, s.Material, bb.Max.X, s.Width)
			}
		}
	}
}

func TestOverlapsDetects(t *testing.T) {
	s := &layout.Sheet{
		Material: "test",
		Width:    400,
		Placements: []layout.Placement{
			{Part: layout.Part{Name: "a", Shape: box(100, 100)}, Offset: v2.Vec{X: 60, Y: 60}},
			{Part: layout.Part{Name: "b", Shape: box(100, 100)}, Offset: v2.Vec{X: 120, Y: 60}},
		},
	}
	bad := s.Overlaps()
	if len(bad) != 1 || bad[0] != [2]string{"a", "b"} {
		t.Fatalf("overlaps = %v, want [[a b]]", bad)
	}
}

func TestCompositeKerf(t *testing.T) {
	parts := []layout.Part{{Name: "a", Shape: box(100, 50)}}
	edge := v2.Vec{X: 110, Y: 35} // right edge midpoint after placement

	plain := layout.Pack("test", 400, 10, 0, parts)
	if d := plain.Composite().Evaluate(edge); !scalar.EqualWithinAbs(d, 0, 1e-9) {
		t.Errorf("uncompensated edge distance %g, want 0", d)
	}

	kerfed := layout.Pack("test", 400, 10, 0.2, parts)
	if d := kerfed.Composite().Evaluate(edge); !scalar.EqualWithinAbs(d, -0.1, 1e-9) {
		t.Errorf("compensated edge distance %g, want half a kerf of material", d)
	}
}
