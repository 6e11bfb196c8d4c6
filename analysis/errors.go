package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

var (
	// ErrNilSnapshot indicates a nil *wfc.Snapshot.
	ErrNilSnapshot = errors.New("analysis: snapshot is nil")
	// ErrNilStore indicates a nil *compat.Store.
	ErrNilStore = errors.New("analysis: compatibility store is nil")
	// ErrDimensionMismatch indicates a snapshot and store of different dimension.
	ErrDimensionMismatch = errors.New("analysis: snapshot and store dimensions differ")
	// ErrRegionIndex indicates a requested region index is invalid.
	ErrRegionIndex = errors.New("analysis: region index out of range")
	// ErrNoPath indicates no path exists between two regions.
	ErrNoPath = errors.New("analysis: no path between specified regions")
)

// check validates the common inputs of Verify, Regions and Bridge.
func check[V vec.Vector[V]](snap *wfc.Snapshot[V], store *compat.Store) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if store == nil {
		return ErrNilStore
	}
	if d := snap.Extents().Dim(); d != store.Dimension() {
		return fmt.Errorf("%w: %dD snapshot, %dD store", ErrDimensionMismatch, d, store.Dimension())
	}

	return nil
}
