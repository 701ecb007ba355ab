package solver_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avirni/qwell/internal/analysis"
	"github.com/avirni/qwell/internal/potential"
	"github.com/avirni/qwell/internal/quantum"
	"github.com/avirni/qwell/internal/solver"
)

var _ = Describe("Solve", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("finite-difference method on an empty square well", func() {
		var res *solver.Result

		BeforeEach(func() {
			var err error
			res, err = solver.Solve(ctx, solver.Request{
				Shape:     potential.Square,
				XMin:      0,
				XMax:      10,
				Steps:     400,
				Amplitude: 0,
				States:    4,
				Method:    solver.MethodFiniteDifference,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns the requested number of states", func() {
			Expect(res.Spectrum.States()).To(Equal(4))
		})

		It("orders eigenvalues ascending", func() {
			Expect(res.Spectrum.IsAscending()).To(BeTrue())
		})

		It("matches the particle-in-a-box spectrum E_n ~ n^2", func() {
			// E_n = (n pi / L)^2 with hbar^2/2m = 1.
			e1 := res.Spectrum.Values[0]
			Expect(e1).To(BeNumerically("~", math.Pi*math.Pi/100, e1*0.01))
			Expect(res.Spectrum.Values[1] / e1).To(BeNumerically("~", 4, 0.05))
			Expect(res.Spectrum.Values[2] / e1).To(BeNumerically("~", 9, 0.1))
			Expect(res.Spectrum.Values[3] / e1).To(BeNumerically("~", 16, 0.2))
		})

		It("gives eigenstate n exactly n nodes", func() {
			for n, vec := range res.Spectrum.Vectors {
				Expect(analysis.NodeCount(vec)).To(Equal(n), "state %d", n)
			}
		})

		It("centers every eigenstate in the symmetric well", func() {
			x, _ := res.Profile.Interior()
			dx := res.Profile.X.Spacing()
			for n, vec := range res.Spectrum.Vectors {
				Expect(analysis.ExpectationX(x, vec, dx)).To(BeNumerically("~", 5, 0.01), "state %d", n)
			}
		})
	})

	Context("coupling method", func() {
		It("produces a states-sized spectrum from the legacy matrix", func() {
			res, err := solver.Solve(ctx, solver.Request{
				Shape:     potential.Quadratic,
				XMin:      0,
				XMax:      5,
				Steps:     20,
				Amplitude: 1,
				States:    6,
				Method:    solver.MethodCoupling,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Spectrum.States()).To(Equal(6))
			Expect(res.Spectrum.IsAscending()).To(BeTrue())
			Expect(len(res.Spectrum.Vectors[0])).To(Equal(6))
		})
	})

	Context("invalid requests", func() {
		It("rejects zero steps", func() {
			_, err := solver.Solve(ctx, solver.Request{
				Shape: potential.Square, XMin: 0, XMax: 1, Steps: 0, States: 1,
			})
			Expect(err).To(MatchError(quantum.ErrInvalidParameter))
		})

		It("rejects zero states", func() {
			_, err := solver.Solve(ctx, solver.Request{
				Shape: potential.Square, XMin: 0, XMax: 1, Steps: 10, States: 0,
			})
			Expect(err).To(MatchError(quantum.ErrInvalidParameter))
		})

		It("rejects states beyond the interior dimension", func() {
			_, err := solver.Solve(ctx, solver.Request{
				Shape: potential.Square, XMin: 0, XMax: 1, Steps: 10, States: 11,
				Method: solver.MethodFiniteDifference,
			})
			Expect(err).To(MatchError(quantum.ErrInvalidParameter))
		})

		It("fails identically on repeated calls", func() {
			req := solver.Request{Shape: potential.Square, XMin: 1, XMax: 0, Steps: 10, States: 2}
			_, err1 := solver.Solve(ctx, req)
			_, err2 := solver.Solve(ctx, req)
			Expect(err1).To(MatchError(quantum.ErrInvalidParameter))
			Expect(err2.Error()).To(Equal(err1.Error()))
		})
	})

	Context("canceled context", func() {
		It("stops before diagonalizing", func() {
			canceled, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := solver.Solve(canceled, solver.Request{
				Shape: potential.Square, XMin: 0, XMax: 1, Steps: 50, States: 3,
			})
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})

var _ = Describe("Sweep", func() {
	It("solves each amplitude and keeps order", func() {
		points, err := solver.Sweep(context.Background(), solver.Request{
			Shape: potential.Square, XMin: 0, XMax: 10, Steps: 100, States: 2,
		}, 0, 9, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(10))

		for i, p := range points {
			Expect(p.Amplitude).To(BeNumerically("~", float64(i), 1e-12))
			Expect(p.Energies).To(HaveLen(2))
		}

		// A constant offset shifts the whole square-well spectrum up.
		for i := 1; i < len(points); i++ {
			Expect(points[i].GroundEnergy()).To(BeNumerically(">", points[i-1].GroundEnergy()))
		}
	})

	It("rejects a non-positive sample count", func() {
		_, err := solver.Sweep(context.Background(), solver.Request{
			Shape: potential.Square, XMin: 0, XMax: 1, Steps: 10, States: 1,
		}, 0, 1, 0)
		Expect(err).To(MatchError(quantum.ErrInvalidParameter))
	})

	It("propagates solve errors", func() {
		_, err := solver.Sweep(context.Background(), solver.Request{
			Shape: potential.Square, XMin: 0, XMax: 1, Steps: 0, States: 1,
		}, 0, 1, 4)
		Expect(err).To(MatchError(quantum.ErrInvalidParameter))
	})
})
