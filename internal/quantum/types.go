package quantum

import "math"

// MaxPotential is the sentinel forced at both ends of every profile. It
// stands in for an infinitely high wall, pinning the wavefunction to zero
// at the domain boundary.
const MaxPotential = 1e7

// Grid holds spatial sample positions, strictly increasing from XMin to XMax.
type Grid []float64

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	copy(c, g)
	return c
}

// Spacing returns the distance between adjacent samples. Grids produced by
// the potential package are uniform, so the first gap is representative.
func (g Grid) Spacing() float64 {
	if len(g) < 2 {
		return 0
	}
	return g[1] - g[0]
}

func (g Grid) IsStrictlyIncreasing() bool {
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			return false
		}
	}
	return true
}

// Potential holds potential-energy values parallel to a Grid.
type Potential []float64

func (p Potential) Clone() Potential {
	c := make(Potential, len(p))
	copy(c, p)
	return c
}

func (p Potential) Sum() float64 {
	sum := 0.0
	for _, v := range p {
		sum += v
	}
	return sum
}

func (p Potential) IsValid() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Profile pairs a grid with its potential samples. Both slices have length
// Steps+2: walls at index 0 and Steps+1, interior samples in between.
// Profiles are built fresh per solve and never mutated afterwards.
type Profile struct {
	X     Grid
	V     Potential
	XMin  float64
	XMax  float64
	Steps int
}

func (p Profile) Len() int { return len(p.X) }

// Width is the physical extent of the domain.
func (p Profile) Width() float64 { return p.XMax - p.XMin }

// Interior returns the samples between the two boundary walls. The
// slices are copies, so callers can rescale or normalize them without
// touching the profile.
func (p Profile) Interior() (Grid, Potential) {
	if len(p.X) < 3 {
		return Grid{}, Potential{}
	}
	return p.X[1 : len(p.X)-1].Clone(), p.V[1 : len(p.V)-1].Clone()
}

// Spectrum is the output of a diagonalization: eigenvalues ascending,
// Vectors[k] the eigenvector paired with Values[k].
type Spectrum struct {
	Values  []float64
	Vectors [][]float64
}

func (s Spectrum) States() int { return len(s.Values) }

// Trim returns the lowest n eigenpairs. It shares backing storage with the
// receiver; callers treat spectra as immutable.
func (s Spectrum) Trim(n int) Spectrum {
	if n >= len(s.Values) {
		return s
	}
	return Spectrum{Values: s.Values[:n], Vectors: s.Vectors[:n]}
}

// IsAscending reports whether eigenvalues are sorted low to high.
func (s Spectrum) IsAscending() bool {
	for i := 1; i < len(s.Values); i++ {
		if s.Values[i] < s.Values[i-1] {
			return false
		}
	}
	return true
}
