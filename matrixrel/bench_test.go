package matrixrel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/reachrel/matrixrel"
)

// BenchmarkRemoveNodes measures bulk removal of a random third of a
// random graph.
func BenchmarkRemoveNodes(b *testing.B) {
	const (
		numNodes = 512
		numEdges = 4096
	)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		rng := rand.New(rand.NewSource(7))
		r := matrixrel.New[region](numNodes)
		for range numEdges {
			r.AddEdge(region(rng.Intn(numNodes)), region(rng.Intn(numNodes)))
		}
		order := rng.Perm(numNodes)
		var dead []region
		for _, n := range order[:numNodes/3] {
			dead = append(dead, region(n))
		}
		var live []region
		for _, n := range order[numNodes/3:] {
			live = append(live, region(n))
		}
		b.StartTimer()

		if err := r.Kill(live, dead); err != nil {
			b.Fatal(err)
		}
	}
}
