package geodesy_test

import (
	"testing"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/geodesy"
)

func benchPair(depth core.Depth) (mask, marker *core.Image) {
	mask = core.MustCreate(256, 256, depth)
	marker = core.MustCreate(256, 256, depth)
	for i := 0; i < mask.Len(); i++ {
		mask.Set(i, uint32(i*2654435761>>7))
		marker.Set(i, uint32(i*40503>>3))
	}
	return mask, marker
}

// BenchmarkHierarBuild measures the hierarchical flood on a grey pair.
func BenchmarkHierarBuild(b *testing.B) {
	mask, marker := benchPair(core.Grey)
	wrk := marker.Clone()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Copy(marker, wrk)
		_ = geodesy.HierarBuild(mask, wrk)
	}
}

// BenchmarkBuild measures the iterative reconstruction on the same pair.
func BenchmarkBuild(b *testing.B) {
	mask, marker := benchPair(core.Grey)
	wrk := marker.Clone()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Copy(marker, wrk)
		_ = geodesy.Build(mask, wrk)
	}
}
