// Package quantum provides the core value types for the 1-D potential
// well solver:
//
//   - [Grid]: spatial sample positions over the well domain
//   - [Potential]: potential-energy samples parallel to a grid
//   - [Profile]: a grid/potential pair with its generating parameters
//   - [Spectrum]: eigenvalues and eigenvectors from a diagonalization
//
// Boundary conditions are encoded in the data: every profile carries the
// [MaxPotential] sentinel at both ends, which the finite-difference
// Hamiltonian treats as infinite Dirichlet walls.
//
// # Units
//
// The solver works in grid units with hbar^2/2m = 1, so eigenvalues come
// out in the same units as the potential samples.
//
// All types are plain values; a solve request never shares mutable state
// with its caller.
package quantum
