package potential

import (
	"fmt"
	"math"

	"github.com/avirni/qwell/internal/quantum"
)

// Params describes one profile request. Amplitude is shape-specific: a
// height for the square family, a slope for Linear, a curvature for the
// quadratic family, a field strength for CoupledSquarePlusField.
type Params struct {
	XMin      float64
	XMax      float64
	Steps     int
	Shape     Shape
	Amplitude float64
}

func (p Params) Validate() error {
	if p.Steps < 1 {
		return fmt.Errorf("%w: steps %d, need at least 1", quantum.ErrInvalidParameter, p.Steps)
	}
	if math.IsNaN(p.XMin) || math.IsInf(p.XMin, 0) || math.IsNaN(p.XMax) || math.IsInf(p.XMax, 0) {
		return fmt.Errorf("%w: non-finite domain bounds", quantum.ErrInvalidParameter)
	}
	if p.XMin >= p.XMax {
		return fmt.Errorf("%w: xMin %g must be below xMax %g", quantum.ErrInvalidParameter, p.XMin, p.XMax)
	}
	if math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
		return fmt.Errorf("%w: non-finite amplitude", quantum.ErrInvalidParameter)
	}
	return nil
}

// Generate samples the requested shape over a uniform grid. The result has
// Steps+2 entries: interior samples at x = XMin + i*(XMax-XMin)/(Steps+1)
// for i = 1..Steps, bracketed by walls at XMin and XMax carrying the
// quantum.MaxPotential sentinel. Every shape, the coupled ones included,
// shares this fixed-length grid.
func Generate(p Params) (quantum.Profile, error) {
	if err := p.Validate(); err != nil {
		return quantum.Profile{}, err
	}

	rule := p.rule()
	n := p.Steps + 2
	h := (p.XMax - p.XMin) / float64(p.Steps+1)

	x := make(quantum.Grid, 0, n)
	v := make(quantum.Potential, 0, n)

	x = append(x, p.XMin)
	v = append(v, quantum.MaxPotential)
	for i := 1; i <= p.Steps; i++ {
		xi := p.XMin + float64(i)*h
		x = append(x, xi)
		v = append(v, rule(i, xi))
	}
	x = append(x, p.XMax)
	v = append(v, quantum.MaxPotential)

	// Finite amplitude and bounds can still overflow through the shape
	// rule (e.g. a near-max curvature squared).
	if !v.IsValid() {
		return quantum.Profile{}, fmt.Errorf("%w: shape rule produced non-finite potential", quantum.ErrInvalidParameter)
	}

	return quantum.Profile{X: x, V: v, XMin: p.XMin, XMax: p.XMax, Steps: p.Steps}, nil
}

// rule maps the shape selector to its pointwise sampling function. The
// index argument only matters for SquarePlusLinear, which splits the grid
// by step count rather than by position.
func (p Params) rule() func(i int, x float64) float64 {
	amp := p.Amplitude
	mid := (p.XMin + p.XMax) / 2
	span := p.XMax - p.XMin

	switch p.Shape {
	case Square:
		return func(int, float64) float64 { return amp }

	case Linear:
		return func(_ int, x float64) float64 { return amp * x }

	case Quadratic:
		return func(_ int, x float64) float64 { return amp * x * x }

	case CenteredQuadratic:
		return func(_ int, x float64) float64 {
			if 0.5*mid < x && x < 1.5*mid {
				d := x - mid
				return amp * d * d
			}
			return 0
		}

	case SquareBarrier:
		return func(_ int, x float64) float64 {
			frac := (x - p.XMin) / span
			if frac >= 0.4 && frac <= 0.6 {
				return amp
			}
			return 0
		}

	case CoupledSquarePlusField:
		// Same barrier geometry as SquareBarrier but the field segment is
		// half-open: the right segment boundary belongs to the outer zero
		// region.
		return func(_ int, x float64) float64 {
			frac := (x - p.XMin) / span
			if frac >= 0.4 && frac < 0.6 {
				return amp
			}
			return 0
		}

	case KronigPenney:
		spacing := p.XMax / 2
		width := spacing / 6
		return func(_ int, x float64) float64 {
			// Barriers centered at -spacing/2 + k*spacing for integer k.
			k := math.Round(x/spacing + 0.5)
			center := -spacing/2 + k*spacing
			if math.Abs(x-center) <= width/2 {
				return amp
			}
			return 0
		}

	case TriangleBarrier:
		// The ramp is anchored on fractions of XMax, not of the domain
		// span, so it sits mid-domain only when XMin is zero.
		lo, peak, hi := 0.4*p.XMax, 0.5*p.XMax, 0.6*p.XMax
		return func(_ int, x float64) float64 {
			switch {
			case x >= lo && x <= peak:
				return amp * (x - lo) / (peak - lo)
			case x > peak && x <= hi:
				return amp * (hi - x) / (hi - peak)
			default:
				return 0
			}
		}

	case CoupledQuadratic:
		left := p.XMin + span/4
		right := p.XMax - span/4
		return func(_ int, x float64) float64 {
			if x < mid {
				d := x - left
				return amp * d * d
			}
			d := x - right
			return amp * d * d
		}

	case SquarePlusLinear:
		half := p.Steps / 2
		return func(i int, x float64) float64 {
			if i <= half {
				return 0
			}
			return (x - mid) * amp
		}

	default:
		return func(int, float64) float64 { return 0 }
	}
}
