package hermite_test

import (
	"fmt"

	"github.com/katalvlaran/fastwave/hermite"
)

// ExampleBuildCoefficientMatrix prints the N=2 table: H0 = 1, H1 = 2x,
// H2 = 4x² − 2, each row in descending-power order.
func ExampleBuildCoefficientMatrix() {
	cm, err := hermite.BuildCoefficientMatrix(2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(cm)
	// Output:
	// [0, 0, 1]
	// [0, 2, 0]
	// [4, 0, -2]
}

// ExampleCoefficientMatrix_Eval evaluates H3 at x = 0.5 through the table.
func ExampleCoefficientMatrix_Eval() {
	cm, err := hermite.BuildCoefficientMatrix(5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	h3, _ := cm.Eval(3, 0.5)
	coeffs, _ := cm.Coefficients(3)
	fmt.Println("H3 coefficients:", coeffs)
	fmt.Println("H3(0.5) =", h3)
	// Output:
	// H3 coefficients: [8 0 -12 0]
	// H3(0.5) = -5
}
