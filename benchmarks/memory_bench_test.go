// Package benchmarks provides memory footprint benchmarks.
package benchmarks

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/comalice/lexicon"
)

func BenchmarkMemoryFootprint(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("terms=%d", n), func(b *testing.B) {
			entries := GenEntries(n, false)
			numLexicons := 100
			var before runtime.MemStats
			runtime.ReadMemStats(&before)
			lexicons := make([]*lexicon.Lexicon, numLexicons)
			for i := range lexicons {
				lx, err := lexicon.New(entries...)
				if err != nil {
					b.Fatal(err)
				}
				lexicons[i] = lx
			}
			runtime.GC()
			var after runtime.MemStats
			runtime.ReadMemStats(&after)
			bytesPerLexicon := (after.TotalAlloc - before.TotalAlloc) / uint64(numLexicons)
			b.ReportMetric(float64(bytesPerLexicon)/1024, "KB/lexicon")
			runtime.KeepAlive(lexicons)
		})
	}
}
