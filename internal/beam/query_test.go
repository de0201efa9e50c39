package beam

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_query01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("query01. evaluate diagrams at x")

	b := solve(tst, 1.0, []PointLoad{{Distance: 0.5, Force: 2}, {Distance: 1, Force: 1}}, nil)

	chk.Float64(tst, "V(0)", 1e-15, b.ShearAt(0), 3)
	chk.Float64(tst, "V(0.25)", 1e-15, b.ShearAt(0.25), 3)
	chk.Float64(tst, "V(0.5) after jump", 1e-15, b.ShearAt(0.5), 1)
	chk.Float64(tst, "V(1) left limit", 1e-15, b.ShearAt(1), 1)

	chk.Float64(tst, "M(0)", 1e-15, b.MomentAt(0), -b.WallReactionMoment)
	chk.Float64(tst, "M slope", 1e-15, b.MomentAt(0.25)-b.MomentAt(0), 0.75)

	var empty Beam
	chk.Float64(tst, "unsolved", 1e-15, empty.ShearAt(0.3), 0)
}

func Test_query02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("query02. stations")

	b := solve(tst, 1.0, []PointLoad{{Distance: 1, Force: 1}}, nil)
	st := Stations(b.Shear, 2)
	chk.Int(tst, "stations", len(st), 4)

	xs := make([]float64, len(st))
	ys := make([]float64, len(st))
	for i, s := range st {
		xs[i], ys[i] = s.X, s.Y
	}
	chk.Array(tst, "x", 1e-15, xs, []float64{0, 0.5, 1, 1})
	chk.Array(tst, "V", 1e-15, ys, []float64{1, 1, 1, 0})
}

func Test_query03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("query03. extremes")

	b := solve(tst, 2.0, nil, []DistributedLoad{Uniform(0, 2, 1)})
	e := b.Extremes()
	chk.Float64(tst, "max shear", 1e-15, e.Shear, 2)
	chk.Float64(tst, "at", 1e-15, e.ShearAt, 0)

	// moment is quadratic with its vertex inside the span
	m := b.Moment[0].Polynomial
	d := m.Derivative()
	if d[1] == 0 {
		tst.Errorf("moment should be quadratic")
		return
	}
	vertex := -d[0] / d[1]
	want := m.Eval(0)
	at := 0.0
	for _, x := range []float64{2, vertex} {
		if x >= 0 && x <= 2 && abs(m.Eval(x)) > abs(want) {
			want, at = m.Eval(x), x
		}
	}
	chk.Float64(tst, "max moment", 1e-12, e.Moment, want)
	chk.Float64(tst, "at", 1e-12, e.MomentAt, at)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func Test_query04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("query04. uniform samples")

	b := solve(tst, 1.0, []PointLoad{{Distance: 0.5, Force: 2}, {Distance: 1, Force: 1}}, nil)
	chk.Array(tst, "V", 1e-15, Sample(b.Shear, b.Length, 5), []float64{3, 3, 1, 1, 1})
	chk.Int(tst, "minimum two", len(Sample(b.Shear, b.Length, 0)), 2)
}
