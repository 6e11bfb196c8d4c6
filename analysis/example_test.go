package analysis_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/analysis"
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleRegions finds two pipe networks in a saved 4×3 grid.
// Scenario:
//
//   - Synthesized 2D store: bit 1 NegX, 2 PosX, 4 NegY, 8 PosY.
//   - Row 0 holds a horizontal pipe from (0,0) to (2,0).
//   - Column 3 holds a vertical pipe from (3,1) to (3,2).
func ExampleRegions() {
	store, _ := compat.New(2, compat.Synthesize(2), compat.DefaultNeighbors())
	snap, _ := wfc.SnapshotFromStates(vec.V2(4, 3), []int{
		2, 3, 1, 0,
		0, 0, 0, 8,
		0, 0, 0, 4,
	})

	regions, _ := analysis.Regions(snap, store)
	fmt.Println("regions:", len(regions))
	for i, r := range regions {
		fmt.Printf("region %d: %v\n", i, r)
	}

	_, cost, _ := analysis.Bridge(snap, store, 0, 1)
	fmt.Println("bridge cost:", cost)

	// Output:
	// regions: 2
	// region 0: [(0, 0) (1, 0) (2, 0)]
	// region 1: [(3, 1) (3, 2)]
	// bridge cost: 2
}
