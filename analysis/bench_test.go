package analysis_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/wfc/analysis"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

// BenchmarkRegions measures region extraction on a generated 200×200 grid.
// Complexity: O(C×D)
func BenchmarkRegions(b *testing.B) {
	s := synth(b)
	e, err := wfc.New(s, vec.V2(200, 200), wfc.Options{Seed: 42, BoundaryConstraint: true})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	if err = e.Run(context.Background(), nil); err != nil {
		b.Fatalf("setup Run failed: %v", err)
	}
	snap := e.Snapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = analysis.Regions(snap, s)
	}
}

// BenchmarkVerify measures the soundness check on the same grid.
func BenchmarkVerify(b *testing.B) {
	s := synth(b)
	e, err := wfc.New(s, vec.V2(200, 200), wfc.Options{Seed: 42, BoundaryConstraint: true})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	if err = e.Run(context.Background(), nil); err != nil {
		b.Fatalf("setup Run failed: %v", err)
	}
	snap := e.Snapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = analysis.Verify(snap, s)
	}
}
