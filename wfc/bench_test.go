package wfc_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

// BenchmarkRun_2D generates a 32×32 grid on the synthesized 2D store.
func BenchmarkRun_2D(b *testing.B) {
	s := synthStore(b, 2)
	ext := vec.V2(32, 32)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e, _ := wfc.New(s, ext, wfc.Options{Seed: int64(i + 1), BoundaryConstraint: true})
		_ = e.Run(context.Background(), nil)
	}
}

// BenchmarkRun_3D generates a 12×12×12 grid on the synthesized 3D store (64 patterns).
func BenchmarkRun_3D(b *testing.B) {
	s := synthStore(b, 3)
	ext := vec.V3(12, 12, 12)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e, _ := wfc.New(s, ext, wfc.Options{Seed: int64(i + 1), BoundaryConstraint: true})
		_ = e.Run(context.Background(), nil)
	}
}

// BenchmarkNew_2D measures grid allocation and boundary constraints only.
func BenchmarkNew_2D(b *testing.B) {
	s := synthStore(b, 2)
	ext := vec.V2(64, 64)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = wfc.New(s, ext, wfc.Options{BoundaryConstraint: true})
	}
}
