// Package wilson computes Wilson-loop spectra: the multi-band Berry phases of
// an eigenspace transported around a closed loop in k-space. Their winding as
// the loop sweeps the Brillouin zone is the bulk fingerprint of a topological
// band gap.
//
// 🚀 What is wilson?
//
//	The caller samples a closed k-loop as a sequence of eigenspaces (the
//	last entry returns to the start — same k, or the start shifted by a
//	reciprocal vector and transported with mode.Transform). Gauge then
//
//	 1. orthonormalises every space,
//	 2. fixes a parallel-transport gauge: each step overlap is projected to
//	    its nearest unitary and absorbed into the next frame, so transport
//	    between consecutive frames becomes the identity,
//	 3. diagonalizes the loop closure — the one overlap that cannot be
//	    absorbed — and rotates all frames into its eigenbasis.
//
//	The closure eigenvalues lie on the unit circle; their phases are the
//	Wilson-loop (multi-band Berry) phases. In the returned gauge the closure
//	overlap is diagonal and every consecutive overlap stays ≈ identity.
//
// ✨ Guarantees:
//
//   - Input gauges do not matter: each Solve call returns eigenvectors with
//     arbitrary phases (and arbitrary mixing inside degenerate groups), and
//     the parallel transport cancels all of it. Only the loop itself is
//     physical.
//   - The returned spaces span the same band subspaces as the input, frame
//     by frame.
//
// ⚙️ Usage:
//
//	spaces := make([]mode.Eigenspace, 0, steps+1)
//	for _, k := range loop {
//	    sp, _ := s.Space(k, solver.TM, 0, 1)
//	    spaces = append(spaces, sp)
//	}
//	vals, _, gauge, err := wilson.Gauge(spaces)
//
// Complexity: O(L·d²·N²) overlaps plus O(L·d³) projections for L spaces of
// dimension d over length-N modes.
package wilson
