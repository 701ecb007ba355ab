package potential

import "fmt"

// Shape selects one of the ten well/barrier profiles.
type Shape int

const (
	Square Shape = iota
	Linear
	Quadratic
	CenteredQuadratic
	SquareBarrier
	CoupledSquarePlusField
	KronigPenney
	TriangleBarrier
	CoupledQuadratic
	SquarePlusLinear
)

var shapeNames = map[Shape]string{
	Square:                 "Square Well",
	Linear:                 "Linear Well",
	Quadratic:              "Quadratic Well",
	CenteredQuadratic:      "Centered Quadratic Well",
	SquareBarrier:          "Square Barrier",
	CoupledSquarePlusField: "Coupled Square+Field",
	KronigPenney:           "Kronig Penney",
	TriangleBarrier:        "Triangle Barrier",
	CoupledQuadratic:       "Coupled Quadratic",
	SquarePlusLinear:       "Square+Linear",
}

var shapeSlugs = map[string]Shape{
	"square":             Square,
	"linear":             Linear,
	"quadratic":          Quadratic,
	"centered-quadratic": CenteredQuadratic,
	"square-barrier":     SquareBarrier,
	"coupled-field":      CoupledSquarePlusField,
	"kronig-penney":      KronigPenney,
	"triangle-barrier":   TriangleBarrier,
	"coupled-quadratic":  CoupledQuadratic,
	"square-linear":      SquarePlusLinear,
}

// Name returns the display name for the shape.
func (s Shape) Name() string {
	name, ok := shapeNames[s]
	if !ok {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return name
}

// Slug returns the CLI identifier for the shape.
func (s Shape) Slug() string {
	for slug, sh := range shapeSlugs {
		if sh == s {
			return slug
		}
	}
	return fmt.Sprintf("shape-%d", int(s))
}

// Parse resolves a CLI slug to its shape.
func Parse(slug string) (Shape, error) {
	s, ok := shapeSlugs[slug]
	if !ok {
		return 0, fmt.Errorf("unknown shape: %s", slug)
	}
	return s, nil
}

// Shapes lists all shapes in declaration order.
func Shapes() []Shape {
	return []Shape{
		Square, Linear, Quadratic, CenteredQuadratic, SquareBarrier,
		CoupledSquarePlusField, KronigPenney, TriangleBarrier,
		CoupledQuadratic, SquarePlusLinear,
	}
}
