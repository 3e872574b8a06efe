package terrain_test

import (
	"testing"

	"github.com/katalvlaran/terrapath/terrain"
)

// BenchmarkNewGrid measures one-shot generation of the default 100×100 map
// (sampling + classification, the O(cols×rows) cost paid once per map).
func BenchmarkNewGrid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := terrain.NewGrid(terrain.WithSeed(int64(i))); err != nil {
			b.Fatalf("NewGrid failed: %v", err)
		}
	}
}

// BenchmarkClassify measures the per-sample classification hot path.
func BenchmarkClassify(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = terrain.Classify(float64(i%200)/100.0 - 1.0)
	}
}
