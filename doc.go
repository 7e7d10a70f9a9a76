// Package bloch solves the Bloch eigenmodes of two-dimensional photonic
// crystals by plane-wave expansion and extracts their topological
// fingerprints — symmetry eigenvalues and Wilson-loop spectra.
//
// 🚀 What is bloch?
//
//	A library that takes a periodic ε(r), μ(r) pattern and answers, for any
//	wavevector k in the Brillouin zone:
//		• Spectra: TE and TM eigenfrequencies, sorted band by band
//		• Modes: plane-wave coefficient vectors with a weighted inner product
//		• Symmetry: point-group eigenvalues of (degenerate) band groups
//		• Topology: Wilson-loop / multi-band Berry-phase spectra
//
// ✨ Why choose bloch?
//
//   - Physical inner products – every mode carries its weighting operator,
//     so overlaps mean what the physics says they mean
//   - Gauge-safe topology – parallel transport with nearest-unitary
//     projection cancels the arbitrary phases of the eigensolver
//   - Explicit failure – degenerate lattices, coarse grids and
//     non-converging solves surface as wrapped sentinel errors
//
// Under the hood, everything is organized under seven subpackages:
//
//	lattice/  — real/reciprocal lattice vectors, plane-wave basis truncation
//	geometry/ — unit-cell material fields, sampling, convolution matrices
//	linalg/   — dense complex kernels: Hermitian eigen, Cholesky, SVD, LU
//	mode/     — eigenmodes, eigenspaces, overlaps, k-space transforms
//	solver/   — TE/TM generalized eigenproblem assembly and solving
//	symmetry/ — point-group restriction, symmetry eigenmodes/eigenvalues
//	wilson/   — Wilson-loop parallel transport and loop spectra
//
// Quick sketch of a session:
//
//	geo, _ := geometry.New(eps, mu, a1, a2, 1.0/64, 1.0/64)
//	s, _ := solver.New(geo, 7)
//	modes, _ := s.Solve(k, solver.TM)
//	space, _ := s.Space(gamma, solver.TM, 0, 1, 2)
//	_, vals, _ := symmetry.Eigenmodes(space, symmetry.C3())
//
// Dive into examples/ for full band-diagram, symmetry and Wilson-loop
// walkthroughs.
//
//	go get github.com/katalvlaran/bloch
package bloch
