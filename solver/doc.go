// Package solver assembles and solves the TE/TM generalized eigenproblems of
// a 2D photonic crystal in the plane-wave basis.
//
// 🚀 What is solver?
//
//	One Solver per crystal and cutoff: it builds the plane-wave basis from
//	the geometry's lattice, computes the ε and μ convolution matrices (and
//	their inverses) once, and then solves
//
//	    A(k)·x = ω²·B·x
//
//	at any Bloch wavevector k, reusing the precomputed operators. TE and TM
//	are a closed enumeration with their own (A, B) assembly rule:
//
//	    TE: A = Kx·ε⁻¹·Kx + Ky·ε⁻¹·Ky,  B = μ
//	    TM: A = Kx·μ⁻¹·Kx + Ky·μ⁻¹·Ky,  B = ε
//
//	with Kx, Ky the diagonal operators of the (k + k_pw) components.
//
// ✨ Guarantees:
//
//   - Eigenvalues are real and non-negative (the pencil is Hermitian with a
//     positive-definite right-hand side); modes are returned sorted by
//     ascending frequency ω = √λ.
//   - Every returned mode carries the right-hand operator B as its weighting
//     matrix, and its coefficients arrive with unit weighted norm: the
//     Cholesky reduction makes eigenvectors B-orthonormal by construction.
//
// ⚙️ Usage:
//
//	s, err := solver.New(geo, 7)
//	modes, err := s.Solve(lattice.Vec2{X: 1}, solver.TE)
//	modes, err = s.SolveBZ(lattice.BrillouinZoneCoordinate{P: 0.5, Label: "M"}, solver.TM)
//
// A Solver is immutable after construction; concurrent Solve calls at
// different k-points are safe.
//
// Complexity: construction O(N³) for the inverses; each solve O(N³).
package solver
