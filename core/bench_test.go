// Package core_test benchmarks the container's hot paths: mutation,
// lookup, and full enumeration.

package core_test

import (
	"fmt"
	"testing"

	"github.com/grava-graph/grava/core"
)

// newChain returns an undirected path graph 0-1-…-n with string IDs.
func newChain(n int) *core.Graph[string] {
	g := core.New[string]()
	for i := 0; i < n; i++ {
		g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1))
	}

	return g
}

func BenchmarkAddEdge(b *testing.B) {
	ids := make([]string, b.N+1)
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i)
	}
	g := core.New[string]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(ids[i], ids[i+1])
	}
}

func BenchmarkHasEdge(b *testing.B) {
	g := newChain(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge("n100", "n101")
	}
}

func BenchmarkEdgesSeq(b *testing.B) {
	g := newChain(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range g.Edges().Seq() {
		}
	}
}

func BenchmarkDegree(b *testing.B) {
	g := newChain(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Degree("n512")
	}
}

func BenchmarkCopy(b *testing.B) {
	g := newChain(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Copy()
	}
}
