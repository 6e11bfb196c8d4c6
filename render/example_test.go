package render_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/render"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Text2D
////////////////////////////////////////////////////////////////////////////////

// ExampleText2D draws a small closed loop of pipes.
func ExampleText2D() {
	store, _ := compat.New(2, compat.Synthesize(2), compat.DefaultNeighbors())
	snap, _ := wfc.SnapshotFromStates(vec.V2(3, 2), []int{
		10, 3, 9,
		6, 3, 5,
	})

	r, _ := render.NewText2D(store)
	_ = r.Render(snap, nil)
	fmt.Println(r)

	// Output:
	// ┌─┐
	// └─┘
}
