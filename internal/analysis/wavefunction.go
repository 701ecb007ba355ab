package analysis

import "math"

// Normalize rescales psi so that sum |psi|^2 dx = 1 on a uniform grid with
// spacing dx. A zero vector comes back unchanged.
func Normalize(psi []float64, dx float64) []float64 {
	norm := 0.0
	for _, c := range psi {
		norm += c * c * dx
	}
	if norm == 0 {
		out := make([]float64, len(psi))
		copy(out, psi)
		return out
	}

	scale := 1 / math.Sqrt(norm)
	out := make([]float64, len(psi))
	for i, c := range psi {
		out[i] = c * scale
	}
	return out
}

// Density returns the probability density |psi|^2.
func Density(psi []float64) []float64 {
	out := make([]float64, len(psi))
	for i, c := range psi {
		out[i] = c * c
	}
	return out
}

// ExpectationX computes <x> = sum x |psi|^2 dx for psi sampled at x.
// The wavefunction is normalized internally, so unscaled eigenvectors are
// fine.
func ExpectationX(x, psi []float64, dx float64) float64 {
	n := len(psi)
	if n == 0 || len(x) != n {
		return 0
	}
	p := Normalize(psi, dx)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += x[i] * p[i] * p[i] * dx
	}
	return sum
}

// NodeCount counts interior sign changes of psi, skipping samples below a
// small fraction of the peak so discretization jitter around zero does not
// register as a crossing. For well-resolved eigenstates this equals the
// quantum number n (ground state 0, first excited 1, ...).
func NodeCount(psi []float64) int {
	peak := 0.0
	for _, c := range psi {
		if a := math.Abs(c); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return 0
	}
	threshold := peak * 1e-6

	nodes := 0
	prev := 0.0
	for _, c := range psi {
		if math.Abs(c) < threshold {
			continue
		}
		if prev != 0 && math.Signbit(c) != math.Signbit(prev) {
			nodes++
		}
		prev = c
	}
	return nodes
}
