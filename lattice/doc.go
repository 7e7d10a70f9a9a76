// Package lattice provides 2D real/reciprocal lattice conversion and the
// truncated plane-wave basis used to discretize periodic Maxwell
// eigenproblems.
//
// 🚀 What is lattice?
//
//	The geometric foundation of the plane-wave expansion method:
//	  • AsToBs / BsToAs: real ↔ reciprocal lattice vectors with the
//	    dot(aᵢ,bᵢ) = 2π convention
//	  • Basis: a deterministic enumeration of reciprocal vectors
//	    k_pw = p·b1 + q·b2 inside a circular or rhombic cutoff
//	  • BrillouinZoneCoordinate: fractional k-points (Γ, M, K, …)
//
// ✨ Why it matters:
//
//   - The enumeration order of a Basis is frozen at construction and defines
//     the coefficient indexing of every Bloch mode built on it — two modes
//     are comparable exactly when they share a Basis.
//   - Odd cutoffs keep the truncation symmetric about the origin, so every
//     included plane wave has its negative included too.
//
// ⚙️ Usage:
//
//	b1, b2, err := lattice.AsToBs(a1, a2)
//	basis, err := lattice.NewBasis(b1, b2, 7)          // circular cutoff
//	basis, err := lattice.NewBasisRhombic(b1, b2, 7, 9) // rhombic cutoff
//
// Complexity: basis construction is O(cutoff²); index lookup is O(1).
package lattice
