// Package linalg provides the complex dense numerical routines behind the
// plane-wave eigensolver: Hermitian eigendecomposition, Cholesky reduction of
// generalized eigenproblems, one-sided Jacobi SVD, nearest-unitary
// projection, diagonalization of unitary operators, and LU-based inversion.
//
// 🚀 What is linalg?
//
//	A small, dependency-light complex linear-algebra kernel on top of
//	gonum's mat.CDense:
//	  • HermEigen         — cyclic Jacobi for Hermitian matrices
//	  • Cholesky          — L·Lᴴ factorization of positive-definite matrices
//	  • SolveGeneralized  — A·x = λ·B·x with Hermitian A and positive-definite B
//	  • SVD / UnitaryApprox — Hestenes one-sided Jacobi SVD and the nearest
//	    unitary matrix U·Vᴴ
//	  • UnitaryEigen      — spectrum of a unitary (normal) matrix
//	  • Inverse           — LU with partial pivoting
//	  • Diagonal          — sparse diagonal operator with O(n²) scaling and
//	    O(n) left-division
//
// ✨ Why Jacobi?
//
//   - Rotation methods are simple, numerically well-behaved and need no
//     external LAPACK; the matrices here are small and dense (N ≈ 10²),
//     so the O(n³)-per-sweep cost is irrelevant next to robustness.
//   - The one-sided variant delivers the full SVD needed for gauge fixing
//     without forming MᴴM explicitly.
//
// Errors are sentinel values (ErrNotHermitian, ErrNoConvergence, …) wrapped
// with operation context; no routine panics on numerical failure.
//
// Complexity: every decomposition is O(n³) time, O(n²) memory.
package linalg
