// Package symmetry classifies Bloch eigenmodes by their point-group behavior:
// given a (possibly degenerate) eigenspace at a high-symmetry k-point, it
// recombines the modes into symmetry eigenmodes and extracts their
// eigenvalues — the band labels from which topological indices are read off.
//
// 🚀 What is symmetry?
//
//	A Symmetry is a k-space map (an integer matrix on the reciprocal
//	coordinates (p, q), plus an optional non-symmorphic phase) together with
//	a label. Constructors cover the common point-group generators:
//
//	    C2()                  — π rotation, any lattice
//	    C4(), MirrorX/Y()     — square lattice (b2 = b1 rotated by +90°)
//	    C3(), C6()            — hexagonal lattice (a2 at +60° from a1)
//
//	Eigenmodes restricts the operator to the given eigenspace, projects the
//	restriction to its nearest unitary, diagonalizes it, and recombines:
//
//	    S[α][a] = ⟨b_α, T·b_a⟩   →   S ≈ V·diag(λ)·Vᴴ   →   modes·V
//
//	Each returned mode satisfies T·mode ≈ λ·mode; for a rotation of order n
//	the eigenvalues are n-th roots of unity.
//
// ✨ Preconditions:
//
//   - The k-point must be invariant under the operation modulo a reciprocal
//     lattice vector (Γ, M, K, ... for the matching lattice); elsewhere the
//     restricted operator is far from unitary and diagnostics surface as
//     linalg.ErrNoConvergence rather than silently wrong labels.
//   - The eigenspace should contain whole degenerate groups. Splitting a
//     degenerate pair across the space boundary makes the restriction leaky.
//
// ⚙️ Usage:
//
//	space, _ := s.Space(gamma, solver.TM, 0, 1, 2)
//	modes, vals, err := symmetry.Eigenmodes(space, symmetry.C3())
//
// Complexity: O(d²·N²) for the restricted operator plus O(d³) to diagonalize.
package symmetry
