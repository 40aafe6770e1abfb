// Command swampthing emits the swamp cooler enclosure geometry: an STL
// assembly preview, or a DXF/SVG cutting layout per material sheet.
package main

import (
	"flag"
	"log"
	"path/filepath"

	swampthing "github.com/cbiffle/Swamp-Thing"
	"github.com/cbiffle/Swamp-Thing/export"
	"github.com/cbiffle/Swamp-Thing/layout"
)

func main() {
	var (
		mode   = flag.String("mode", "all", "what to emit: preview, wood, plastic or all")
		preset = flag.String("preset", "classic", "parameter preset: classic or thinstock")
		out    = flag.String("out", ".", "output directory")
		cells  = flag.Int("cells", 300, "mesh cells for rendering")
	)
	flag.Parse()

	var cfg swampthing.Config
	switch *preset {
	case "classic":
		cfg = swampthing.Classic()
	case "thinstock":
		cfg = swampthing.ThinStock()
	default:
		log.Fatalf("unknown preset %q", *preset)
	}

	switch *mode {
	case "preview":
		preview(cfg, *out, *cells)
	case "wood":
		sheet(cfg, *out, *cells, swampthing.BuildWoodSheet)
	case "plastic":
		sheet(cfg, *out, *cells, swampthing.BuildPlasticSheet)
	case "all":
		preview(cfg, *out, *cells)
		sheet(cfg, *out, *cells, swampthing.BuildWoodSheet)
		sheet(cfg, *out, *cells, swampthing.BuildPlasticSheet)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func preview(cfg swampthing.Config, out string, cells int) {
	s, err := swampthing.BuildPreview(cfg)
	if err != nil {
		log.Fatal(err)
	}
	path := filepath.Join(out, "swampthing.stl")
	if err := export.STL(path, s, cells); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", path)
}

func sheet(cfg swampthing.Config, out string, cells int, build func(swampthing.Config) (*layout.Sheet, error)) {
	sh, err := build(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if bad := sh.Overlaps(); len(bad) > 0 {
		log.Printf("warning: %s sheet has overlapping parts: %v", sh.Material, bad)
	}
	comp := sh.Composite()
	base := filepath.Join(out, sh.Material)
	if err := export.DXF(base+".dxf", comp, cells); err != nil {
		log.Fatal(err)
	}
	if err := export.SVG(base+".svg", comp, cells); err != nil {
		log.Fatal(err)
	}
	if err := export.SheetDiagram(base+".png", sh); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s.{dxf,svg,png}", base)
}
