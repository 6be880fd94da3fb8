// Package benchmarks provides lookup and construction benchmarks.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/lexicon"
)

func BenchmarkGet(b *testing.B) {
	for _, n := range []int{10, 1000, 100000} {
		b.Run(fmt.Sprintf("terms=%d", n), func(b *testing.B) {
			lx := GenLexicon(n)
			terms := make([]string, 64)
			for i := range terms {
				terms[i] = fmt.Sprintf("t%d", (i*7919)%n)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := lx.Get(terms[i%len(terms)]); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkHasMiss(b *testing.B) {
	lx := GenLexicon(1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if ok, _ := lx.Has(" missing "); ok {
			b.Fatal("unexpected hit")
		}
	}
}

func BenchmarkGetParallel(b *testing.B) {
	lx := GenLexicon(10000)
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if _, err := lx.Validate(fmt.Sprintf("t%d", i%10000)); err != nil {
				b.Error(err)
				return
			}
			i++
		}
	})
}

func BenchmarkNew(b *testing.B) {
	for _, padded := range []bool{false, true} {
		b.Run(fmt.Sprintf("padded=%v", padded), func(b *testing.B) {
			entries := GenEntries(10000, padded)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := lexicon.New(entries...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkItems(b *testing.B) {
	lx := GenLexicon(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range lx.Items() {
			n++
		}
		if n != 10000 {
			b.Fatalf("iterated %d entries", n)
		}
	}
}
