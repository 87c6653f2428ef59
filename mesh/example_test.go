package mesh_test

import (
	"fmt"
	"log"

	"github.com/dut09/arap/mesh"
)

// ExampleCotangentWeights builds the weight matrix of a unit equilateral
// triangle; every edge carries half the opposite angle's cotangent.
func ExampleCotangentWeights() {
	w, err := mesh.CotangentWeights(mesh.Equilateral())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("edge 0-1: %.4f\n", w.At(0, 1))
	fmt.Printf("diagonal: %.4f\n", w.At(0, 0))
	// Output:
	// edge 0-1: 0.2887
	// diagonal: -0.5774
}
