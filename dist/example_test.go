// SPDX-License-Identifier: MIT

package dist_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/randgraph/dist"
	"github.com/katalvlaran/randgraph/randx"
)

// ExampleUniform demonstrates the exact invariant of G(n,M): every
// sample carries exactly n nodes and exactly M edges.
func ExampleUniform() {
	d, _ := dist.NewUniform(4, 2)
	src := randx.New(42)

	for round := 0; round < 3; round++ {
		g := d.Sample(src)
		fmt.Printf("nodes=%d edges=%d\n", g.NodeCount(), g.EdgeCount())
	}

	// The upper bound is validated at construction, never mid-sample:
	_, err := dist.NewUniform(4, 7)
	fmt.Println("7 edges on 4 nodes:", errors.Is(err, dist.ErrTooManyEdges))

	// Output:
	// nodes=4 edges=2
	// nodes=4 edges=2
	// nodes=4 edges=2
	// 7 edges on 4 nodes: true
}

// ExampleBinomial demonstrates the degenerate probabilities, which are
// exact rather than statistical.
func ExampleBinomial() {
	src := randx.New(7)

	empty, _ := dist.NewBinomial(5, 0.0)
	complete, _ := dist.NewBinomial(5, 1.0)
	fmt.Println("p=0 edges:", empty.Sample(src).EdgeCount())
	fmt.Println("p=1 edges:", complete.Sample(src).EdgeCount())

	_, err := dist.NewBinomial(5, 1.01)
	fmt.Println("p=1.01:", errors.Is(err, dist.ErrInvalidProbability))

	// Output:
	// p=0 edges: 0
	// p=1 edges: 10
	// p=1.01: true
}

// ExampleTree demonstrates the recursive-tree guarantee: always exactly
// n-1 edges, no failure branch.
func ExampleTree() {
	d, _ := dist.NewTree(6)
	g := d.Sample(randx.New(3))

	fmt.Printf("nodes=%d edges=%d\n", g.NodeCount(), g.EdgeCount())

	// Output:
	// nodes=6 edges=5
}
