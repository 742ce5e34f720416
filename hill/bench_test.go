// Package hill_test provides benchmarks for key generation and the block transform.
package hill_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/classica/hill"
	"github.com/katalvlaran/classica/matrix"
)

var (
	sinkS string
	sinkK *matrix.Dense
)

func BenchmarkGenerateKey(b *testing.B) {
	for _, n := range []int{2, 4, 8} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				k, err := hill.GenerateKey(n)
				if err != nil {
					b.Fatal(err)
				}
				sinkK = k
			}
		})
	}
}

func BenchmarkEncrypt(b *testing.B) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 100)
	for _, n := range []int{2, 4, 8} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			c, err := hill.NewRandom(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ct, err := c.Encrypt(text)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = ct
			}
		})
	}
}
