// Package mode defines the Bloch eigenmode and eigenspace values produced by
// the plane-wave solver, together with the weighted inner product that makes
// them physically comparable.
//
// 🚀 What is mode?
//
//	  • Eigenmode  — one solved Bloch mode: normalized frequency, plane-wave
//	    coefficients, the Hermitian weighting matrix of its inner product,
//	    and the basis/k-point it was solved at.
//	  • Eigenspace — an ordered set of (typically degenerate) modes analyzed
//	    jointly by the symmetry and Wilson-loop engines.
//	  • Overlap / Normalise / Orthonormalise — the weighted inner-product
//	    algebra: ⟨a,b⟩ = aᴴ·W·b, never the bare dot product.
//	  • KMap / Transform — relabeling of plane-wave coefficients under
//	    reciprocal translations and lattice point-group operations.
//
// ✨ Why a first-class weighting?
//
//	The generalized eigenproblem defines its own inner product through its
//	right-hand operator; carrying that matrix on every mode (instead of a
//	hidden global convention) lets overlap computations fail fast when two
//	modes come from incompatible solvers.
//
// All values are immutable: operations return new modes and spaces, never
// mutate coefficient slices in place.
//
// Complexity: Overlap is O(N²); Orthonormalise is O(d²·N²) for d modes.
package mode
