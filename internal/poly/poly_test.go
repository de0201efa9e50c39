package poly

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_eval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval01. ascending powers")

	p := Polynomial{1, 2, 3, 4}
	chk.Float64(tst, "p(0)", 1e-15, p.Eval(0), 1)
	chk.Float64(tst, "p(1)", 1e-15, p.Eval(1), 10)
	chk.Float64(tst, "p(2)", 1e-15, p.Eval(2), 1+4+12+32)
	chk.Float64(tst, "p(-1)", 1e-15, p.Eval(-1), 1-2+3-4)

	var zero Polynomial
	chk.Float64(tst, "zero(3)", 1e-15, zero.Eval(3), 0)
}

func Test_integrate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integrate01. constant term and truncation")

	p := Polynomial{6, 4, 3, 8}
	q := p.Integrate()
	chk.Array(tst, "∫p", 1e-15, q[:], []float64{0, 6, 2, 1})

	// twice
	r := q.Integrate()
	chk.Array(tst, "∫∫p", 1e-15, r[:], []float64{0, 0, 3, 2.0 / 3.0})
}

func Test_definite01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("definite01. area under load")

	chk.Float64(tst, "∫1 on [0,1]", 1e-15, Polynomial{1}.Definite(0, 1), 1)
	chk.Float64(tst, "∫x on [0,1]", 1e-15, Polynomial{0, 1}.Definite(0, 1), 0.5)
	chk.Float64(tst, "∫x² on [0,1]", 1e-15, Polynomial{0, 0, 1}.Definite(0, 1), 1.0/3.0)
	chk.Float64(tst, "∫2 on [0.5,1]", 1e-15, Polynomial{2}.Definite(0.5, 1), 1)
}

func Test_arith01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arith01. add scale negate")

	p := Polynomial{1, 2}
	q := Polynomial{0, 1, 1}
	s := p.Add(q)
	chk.Array(tst, "p+q", 1e-15, s[:], []float64{1, 3, 1, 0})
	chk.Array(tst, "p unchanged", 1e-15, p[:], []float64{1, 2, 0, 0})

	n := s.Negate()
	chk.Array(tst, "-(p+q)", 1e-15, n[:], []float64{-1, -3, -1, 0})

	w := s.WithoutConstant()
	chk.Array(tst, "no c0", 1e-15, w[:], []float64{0, 3, 1, 0})

	chk.Int(tst, "degree", s.Degree(), 2)
	chk.Int(tst, "zero degree", Polynomial{}.Degree(), -1)
}

func Test_fromSlice01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fromSlice01. padding and dropping")

	p := FromSlice([]float64{3, 1})
	chk.Array(tst, "padded", 1e-15, p[:], []float64{3, 1, 0, 0})

	q := FromSlice([]float64{1, 2, 3, 4, 5, 6})
	chk.Array(tst, "dropped", 1e-15, q[:], []float64{1, 2, 3, 4})
}

func Test_nearly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nearly01. tolerance")

	if !NearlyEqual(0, 0) {
		tst.Errorf("0 and 0 should compare equal")
	}
	if NearlyEqual(0.25, 0) {
		tst.Errorf("0.25 and 0 should differ")
	}
	if !NearlyEqual(1, 1+Epsilon/2) {
		tst.Errorf("values within epsilon should compare equal")
	}
}

func Test_string01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("string01. formatting")

	chk.String(tst, Polynomial{}.String(), "0")
	chk.String(tst, Polynomial{2, -1}.String(), "2 - 1·x")
	chk.String(tst, Polynomial{0, 0, 3}.String(), "3·x²")
}
