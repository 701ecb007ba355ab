package solver

import (
	"context"
	"fmt"
	"sync"

	"github.com/avirni/qwell/internal/quantum"
)

// SweepPoint is one sample of a parameter sweep.
type SweepPoint struct {
	Amplitude float64
	Energies  []float64
}

// GroundEnergy is the lowest eigenvalue at this sweep point.
func (p SweepPoint) GroundEnergy() float64 {
	if len(p.Energies) == 0 {
		return 0
	}
	return p.Energies[0]
}

// Sweep solves the same request across count evenly spaced amplitudes in
// [ampMin, ampMax]. Solves are independent, so they fan out across
// goroutines; results come back ordered by amplitude. All solves run to
// completion, and the first error found is returned in place of the
// points.
func Sweep(ctx context.Context, req Request, ampMin, ampMax float64, count int) ([]SweepPoint, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: sweep count %d, need at least 1", quantum.ErrInvalidParameter, count)
	}

	points := make([]SweepPoint, count)
	errs := make([]error, count)

	step := 0.0
	if count > 1 {
		step = (ampMax - ampMin) / float64(count-1)
	}

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			r := req
			r.Amplitude = ampMin + float64(idx)*step

			res, err := Solve(ctx, r)
			if err != nil {
				errs[idx] = err
				return
			}
			points[idx] = SweepPoint{Amplitude: r.Amplitude, Energies: res.Spectrum.Values}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
