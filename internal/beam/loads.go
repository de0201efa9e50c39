package beam

import (
	"fmt"

	"github.com/alexiusacademia/gosmd/internal/poly"
)

// PointLoad is a force concentrated at a single position, measured from
// the fixed end. Positive forces point down.
type PointLoad struct {
	Distance float64 `json:"distance"`
	Force    float64 `json:"force"`
}

// DistributedLoad is a load intensity w(x) acting over [Start, End].
// The polynomial is evaluated in global beam coordinates, not relative
// to Start.
type DistributedLoad struct {
	Start      float64         `json:"start"`
	End        float64         `json:"end"`
	Polynomial poly.Polynomial `json:"polynomial"`
}

// Uniform returns a constant intensity w over [start, end]
func Uniform(start, end, w float64) DistributedLoad {
	return DistributedLoad{Start: start, End: end, Polynomial: poly.Polynomial{w}}
}

// LinearLoad returns the load whose intensity runs linearly from w0 at
// x0 to w1 at x1. The endpoints are swapped if x1 < x0.
func LinearLoad(x0, w0, x1, w1 float64) DistributedLoad {
	if x1 < x0 {
		x0, x1 = x1, x0
		w0, w1 = w1, w0
	}
	if x1 == x0 {
		return Uniform(x0, x1, w0)
	}
	m := (w1 - w0) / (x1 - x0)
	c := w0 - m*x0
	return DistributedLoad{Start: x0, End: x1, Polynomial: poly.Polynomial{c, m}}
}

// Resultant returns the total force of the load over its own extent
func (d DistributedLoad) Resultant() float64 {
	return d.Polynomial.Definite(d.Start, d.End)
}

func (p PointLoad) String() string {
	return fmt.Sprintf("P(%.4g @ %.4g)", p.Force, p.Distance)
}

func (d DistributedLoad) String() string {
	return fmt.Sprintf("w(x) = %s on [%.4g, %.4g]", d.Polynomial, d.Start, d.End)
}

// Scale returns copies of the loads with every force multiplied by k.
// Used to build factored load combinations.
func Scale(points []PointLoad, distributed []DistributedLoad, k float64) ([]PointLoad, []DistributedLoad) {
	ps := make([]PointLoad, len(points))
	for i, p := range points {
		ps[i] = PointLoad{Distance: p.Distance, Force: k * p.Force}
	}
	ds := make([]DistributedLoad, len(distributed))
	for i, d := range distributed {
		ds[i] = DistributedLoad{Start: d.Start, End: d.End, Polynomial: d.Polynomial.Scale(k)}
	}
	return ps, ds
}
