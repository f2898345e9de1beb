package hll_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/keilerkonzept/hll"
)

var (
	precisions = []uint8{4, 10, 14, 16}
	items      = generateItems(1_000_000)
)

func generateItems(n int) []string {
	items := make([]string, n)
	for i := 0; i < n; i++ {
		items[i] = fmt.Sprintf("item%d", i)
	}
	return items
}

func hashFuncs() map[string]hll.HashFunc[string] {
	return map[string]hll.HashFunc[string]{
		"xxhash":  hll.XXHash32String(0),
		"murmur3": hll.Murmur3String(0),
	}
}

// BenchmarkSketchAdd benchmarks the Add method of Sketch.
func BenchmarkSketchAdd(b *testing.B) {
	for _, p := range precisions {
		for name, hash := range hashFuncs() {
			b.Run(fmt.Sprintf("P=%d_Hash=%s", p, name), func(b *testing.B) {
				sketch, err := hll.New(p, hash)
				if err != nil {
					b.Fatal(err)
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sketch.Add(items[rand.IntN(len(items))])
				}
			})
		}
	}
}

// BenchmarkSketchCardinality benchmarks the Cardinality method of Sketch.
func BenchmarkSketchCardinality(b *testing.B) {
	for _, p := range precisions {
		b.Run(fmt.Sprintf("P=%d", p), func(b *testing.B) {
			sketch, err := hll.New(p, hll.XXHash32String(0))
			if err != nil {
				b.Fatal(err)
			}
			for _, item := range items {
				sketch.Add(item)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sketch.Cardinality()
			}
		})
	}
}
