package swampthing

import (
	"fmt"
	"runtime/debug"

	"github.com/cbiffle/Swamp-Thing/assembly"
	"github.com/cbiffle/Swamp-Thing/layout"
	"github.com/deadsy/sdfx/sdf"
)

// The panel constructors panic on impossible dimensions. The Build
// functions are the module boundary: they recover those panics into an
// error carrying the panic value and stack.

type buildErr struct {
	panicObj interface{}
	stack    string
}

func (e *buildErr) Error() string {
	return fmt.Sprintf("%v", e.panicObj)
}

func recoverErr(err *error) {
	if a := recover(); a != nil {
		*err = &buildErr{panicObj: a, stack: string(debug.Stack())}
	}
}

// BuildWoodSheet lays out every structural panel on the wood sheet.
func BuildWoodSheet(c Config) (s *layout.Sheet, err error) {
	defer recoverErr(&err)
	return layout.Pack("wood", c.SheetWidth, c.SheetMargin, c.Kerf, c.WoodParts()), nil
}

// BuildPlasticSheet lays out the dividers and reservoir on the plastic
// sheet.
func BuildPlasticSheet(c Config) (s *layout.Sheet, err error) {
	defer recoverErr(&err)
	return layout.Pack("plastic", c.SheetWidth, c.SheetMargin, c.Kerf, c.PlasticParts()), nil
}

// BuildPreview assembles the full enclosure as one solid for visual
// verification.
func BuildPreview(c Config) (s sdf.SDF3, err error) {
	defer recoverErr(&err)
	return assembly.Scene(c.parts3()), nil
}
