package benchmark

import (
	"testing"

	"github.com/osmike/purespeed"
)

func BenchmarkForwarded(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Same work as BenchmarkDirect, routed through the adapter; the
		// delta between the two is the forwarding cost.
		v, err := purespeed.CallSlice(sumInts, input)
		if err != nil {
			b.Fatalf("err: %v", err)
		}
		if v != 36 {
			b.Fatalf("sum = %d; want 36", v)
		}
	}
}
