package analysis

// Spacings returns the gaps between consecutive energy levels.
func Spacings(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = values[i] - values[i-1]
	}
	return out
}

// MeanSpacing averages the level gaps; zero for fewer than two levels.
func MeanSpacing(values []float64) float64 {
	gaps := Spacings(values)
	if len(gaps) == 0 {
		return 0
	}
	sum := 0.0
	for _, g := range gaps {
		sum += g
	}
	return sum / float64(len(gaps))
}
