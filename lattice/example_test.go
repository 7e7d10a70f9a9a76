package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/bloch/lattice"
)

// ExampleAsToBs derives the reciprocal vectors of the unit square lattice.
func ExampleAsToBs() {
	b1, b2, err := lattice.AsToBs(lattice.Vec2{X: 1}, lattice.Vec2{Y: 1})
	if err != nil {
		fmt.Println(err)

		return
	}
	a1, a2 := lattice.Vec2{X: 1}, lattice.Vec2{Y: 1}
	fmt.Printf("|b1| = %.4f  |b2| = %.4f\n", b1.Norm(), b2.Norm())
	fmt.Printf("a1·b1 = %.4f  a1·b2 = %.4f\n", a1.Dot(b1), a1.Dot(b2))
	fmt.Printf("a2·b1 = %.4f  a2·b2 = %.4f\n", a2.Dot(b1), a2.Dot(b2))
	// Output:
	// |b1| = 6.2832  |b2| = 6.2832
	// a1·b1 = 6.2832  a1·b2 = 0.0000
	// a2·b1 = 0.0000  a2·b2 = 6.2832
}

// ExampleNewBasis shows the size of a circular plane-wave truncation.
func ExampleNewBasis() {
	b1, b2, _ := lattice.AsToBs(lattice.Vec2{X: 1}, lattice.Vec2{Y: 1})
	basis, err := lattice.NewBasis(b1, b2, 7)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println("plane waves:", basis.Len())

	i, ok := basis.Index(0, 0)
	fmt.Println("G = 0 at position", i, ok)
	// Output:
	// plane waves: 37
	// G = 0 at position 18 true
}
