// Package solver orchestrates a full solve: potential generation, matrix
// assembly, and diagonalization. Results come back by value; nothing is
// published through shared state.
package solver

import (
	"context"
	"fmt"

	"github.com/avirni/qwell/internal/eigen"
	"github.com/avirni/qwell/internal/hamiltonian"
	"github.com/avirni/qwell/internal/potential"
	"github.com/avirni/qwell/internal/quantum"
)

// Method selects how the Hamiltonian is assembled from the profile.
type Method string

const (
	// MethodFiniteDifference is the default: the standard kinetic+potential
	// operator over interior grid points.
	MethodFiniteDifference Method = "fd"

	// MethodCoupling selects the legacy basis-coupling matrix.
	MethodCoupling Method = "coupling"
)

// ParseMethod resolves a CLI string to a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodFiniteDifference, MethodCoupling:
		return Method(s), nil
	case "":
		return MethodFiniteDifference, nil
	default:
		return "", fmt.Errorf("unknown method: %s", s)
	}
}

// Request describes one solve.
type Request struct {
	Shape     potential.Shape
	XMin      float64
	XMax      float64
	Steps     int
	Amplitude float64
	States    int
	Method    Method
}

// Result carries everything a solve produced. Spectrum holds the States
// lowest eigenpairs in ascending order.
type Result struct {
	Profile  quantum.Profile
	Spectrum quantum.Spectrum
	Method   Method
}

// Solve runs the full pipeline for one request. The context is checked
// between stages; the stages themselves are bounded by Steps and States
// and need no cancellation mid-way.
func Solve(ctx context.Context, req Request) (*Result, error) {
	method := req.Method
	if method == "" {
		method = MethodFiniteDifference
	}

	prof, err := potential.Generate(potential.Params{
		XMin:      req.XMin,
		XMax:      req.XMax,
		Steps:     req.Steps,
		Shape:     req.Shape,
		Amplitude: req.Amplitude,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var spectrum quantum.Spectrum
	switch method {
	case MethodCoupling:
		h, err := hamiltonian.BuildCoupling(prof.V, prof.Width(), req.States)
		if err != nil {
			return nil, err
		}
		spectrum, err = eigen.Solve(h)
		if err != nil {
			return nil, err
		}

	case MethodFiniteDifference:
		interior := prof.Len() - 2
		if req.States < 1 || req.States > interior {
			return nil, fmt.Errorf("%w: states %d outside [1, %d]", quantum.ErrInvalidParameter, req.States, interior)
		}
		h, err := hamiltonian.BuildFiniteDifference(prof)
		if err != nil {
			return nil, err
		}
		spectrum, err = eigen.Solve(h)
		if err != nil {
			return nil, err
		}
		spectrum = spectrum.Trim(req.States)

	default:
		return nil, fmt.Errorf("%w: method %q", quantum.ErrInvalidParameter, method)
	}

	return &Result{Profile: prof, Spectrum: spectrum, Method: method}, nil
}
