package analysis

import (
	"github.com/katalvlaran/wfc/axis"
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

// Violation is one directed edge between resolved cells that the store rejects:
// State at At does not admit NeighborState at Neighbor = At + Axis.
type Violation[V vec.Vector[V]] struct {
	At            V
	Neighbor      V
	Axis          axis.Axis
	State         int
	NeighborState int
}

// Verify checks every pair of adjacent resolved cells in both directions and
// returns the failing edges in row-major, then axis.All order. Superposed and
// contradicted cells are skipped.
//
// An asymmetric store can report an edge from one side only.
func Verify[V vec.Vector[V]](snap *wfc.Snapshot[V], store *compat.Store) ([]Violation[V], error) {
	if err := check(snap, store); err != nil {
		return nil, err
	}

	var out []Violation[V]
	axes := axis.All(store.Dimension())
	dirs := snap.Directions()
	for _, c := range snap.Cells() {
		if c.Status != wfc.Resolved {
			continue
		}
		for i, d := range dirs {
			nb, ok := snap.At(c.Coord.Add(d))
			if !ok || nb.Status != wfc.Resolved {
				continue
			}
			fine, err := store.Compatible(c.State, axes[i], nb.State)
			if err != nil {
				return nil, err
			}
			if !fine {
				out = append(out, Violation[V]{
					At:            c.Coord,
					Neighbor:      nb.Coord,
					Axis:          axes[i],
					State:         c.State,
					NeighborState: nb.State,
				})
			}
		}
	}

	return out, nil
}
