// Package analysis post-processes eigenfunctions and spectra.
//
// The package includes small observables computed from solver output:
//
//   - [Normalize]: L2 grid normalization of a sampled wavefunction
//   - [Density]: probability density |psi|^2
//   - [ExpectationX]: position expectation value
//   - [NodeCount]: interior sign changes, the quantum number for 1-D states
//   - [Spacings]: gaps between consecutive energy levels
package analysis
