// Package geometry describes 2D periodic crystals as continuous material
// fields and turns them into the Fourier-space operators consumed by the
// plane-wave solver.
//
// 🚀 What is geometry?
//
//	  • Geometry — immutable unit cell: permittivity ε(x,y) and permeability
//	    μ(x,y) as plain Go functions, real-space lattice vectors a1, a2, and
//	    the grid resolution used to sample the cell.
//	  • Convmat — the convolution matrix of a sampled field: entry (i,j) is
//	    the Fourier coefficient of the field at the reciprocal difference
//	    k_i − k_j, so the matrix represents "multiply by the field" in the
//	    plane-wave basis.
//
// ✨ Correctness anchor:
//
//	A homogeneous field of value x has all of its Fourier weight at zero
//	frequency, so its convolution matrix is exactly x·I — tests pin this.
//
// ⚙️ Usage:
//
//	rod := func(x, y float64) complex128 { // dielectric rod in air
//		if math.Hypot(x, y) < 0.2 {
//			return 9
//		}
//		return 1
//	}
//	one := func(x, y float64) complex128 { return 1 }
//	geo, err := geometry.New(rod, one, a1, a2, 0.01, 0.01)
//	epc, err := geo.ConvmatPermittivity(basis)
//
// Complexity: sampling is O(N1·N2); Convmat is O(N1·N2·log) for the FFT
// plus O(N²) for the matrix fill.
package geometry
