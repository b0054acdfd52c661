package builder_test

import (
	"testing"

	"github.com/katalvlaran/kmeanslab/builder"
)

// benchmarkGenerate runs Generate for one distribution at a fixed size.
func benchmarkGenerate(b *testing.B, d builder.Distribution, amount, k int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Generate(d, amount, k, builder.WithSeed(int64(i))); err != nil {
			b.Fatalf("Generate(%s) failed: %v", d, err)
		}
	}
}

func BenchmarkGenerate_Uniform(b *testing.B)  { benchmarkGenerate(b, builder.Uniform, 1000, 5) }
func BenchmarkGenerate_Circles(b *testing.B)  { benchmarkGenerate(b, builder.Circles, 1000, 5) }
func BenchmarkGenerate_Gaussian(b *testing.B) { benchmarkGenerate(b, builder.Gaussian, 1000, 5) }
func BenchmarkGenerate_Grid(b *testing.B)     { benchmarkGenerate(b, builder.Grid, 1000, 5) }
