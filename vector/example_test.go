package vector_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

func ExampleAreLinearlyIndependent() {
	ok, _ := vector.AreLinearlyIndependent(
		[]float64{1, 0, 0},
		[]float64{0, 1, 0},
		[]float64{0, 0, 1},
	)
	dep, _ := vector.AreLinearlyIndependent([]float64{1, 2, 3}, []float64{2, 4, 6})
	fmt.Println(ok, dep)
	// Output:
	// true false
}

// ExampleBuildMatrix places each vector in its own column.
func ExampleBuildMatrix() {
	m, _ := vector.BuildMatrix([]float64{1, 2, 3}, []float64{4, 5, 6})
	fmt.Print(m)
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
