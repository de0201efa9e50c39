package nscp

import (
	"context"
	"errors"
	"testing"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func testCases() LoadCases {
	return LoadCases{
		Dead: LoadCase{Distributed: []beam.DistributedLoad{beam.Uniform(0, 4, 3)}},
		Live: LoadCase{Points: []beam.PointLoad{{Distance: 4, Force: 2}}},
		Wind: LoadCase{Points: []beam.PointLoad{{Distance: 2, Force: -5}}},
	}
}

func combination(tst *testing.T, id string) LoadCombination {
	for _, c := range LoadCombinations {
		if c.ID == id {
			return c
		}
	}
	tst.Fatalf("no combination %s", id)
	return LoadCombination{}
}

func Test_combo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combo01. factored loads")

	cases := testCases()
	points, distributed := combination(tst, "2a").Factor(cases)
	chk.Int(tst, "points", len(points), 1)
	chk.Int(tst, "distributed", len(distributed), 1)
	chk.Float64(tst, "1.6L", 1e-15, points[0].Force, 3.2)
	chk.Float64(tst, "1.2D", 1e-15, distributed[0].Polynomial[0], 3.6)
	chk.Float64(tst, "case untouched", 1e-15, cases.Dead.Distributed[0].Polynomial[0], 3)

	points, _ = combination(tst, "6").Factor(cases)
	chk.Int(tst, "0.9D + 1.0W points", len(points), 1)
	chk.Float64(tst, "W", 1e-15, points[0].Force, -5)

	if cases.Empty() {
		tst.Errorf("cases should not be empty")
	}
	if !(LoadCases{}).Empty() {
		tst.Errorf("zero cases should be empty")
	}
}

func Test_combo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combo02. solve all combinations")

	cases := testCases()
	results, err := SolveAll(context.Background(), 4, beam.DefaultCapacity, cases, LoadCombinations)
	if err != nil {
		tst.Errorf("SolveAll failed:\n%v", err)
		return
	}
	chk.Int(tst, "results", len(results), len(LoadCombinations))

	moments, err := WallMoments(4, beam.DefaultCapacity, cases)
	if err != nil {
		tst.Errorf("WallMoments failed:\n%v", err)
		return
	}
	chk.Float64(tst, "M dead", 1e-12, moments.Dead, -24)
	chk.Float64(tst, "M live", 1e-12, moments.Live, -8)
	chk.Float64(tst, "M wind", 1e-12, moments.Wind, 10)

	// superposition: solving factored loads equals factoring solved moments
	for i, r := range results {
		io.Pforan("%s %-40s WRM = %g\n", r.Combination.ID, r.Combination.Description, r.Beam.WallReactionMoment)
		want := r.Combination.CalculateFactoredMoment(moments)
		chk.Float64(tst, "WRM "+r.Combination.ID, 1e-12, r.Beam.WallReactionMoment, want)
		chk.String(tst, r.Combination.ID, LoadCombinations[i].ID)
	}

	mu, combo := CalculateGoverningMoment(moments, LoadCombinations)
	m, _ := Governing(results)
	chk.String(tst, results[m].Combination.ID, combo.ID)
	chk.Float64(tst, "Mu", 1e-12, mu, 1.2*-24+1.6*-8)
}

func Test_combo03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combo03. capacity failure cancels")

	_, err := SolveAll(context.Background(), 4, 1, testCases(), SimplifiedCombinations)
	if !errors.Is(err, beam.ErrCapacityExceeded) {
		tst.Errorf("expected capacity error, got %v", err)
	}
}

func Test_combo04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combo04. alternates are never combined")

	for _, c := range LoadCombinations {
		if c.Roof != 0 && c.Rain != 0 {
			tst.Errorf("%s applies both Lr and R", c.ID)
		}
		if c.Roof > 1 || c.Rain > 1 {
			// 1.6(Lr or R) pairs with 1.0L or 0.5W, not both
			if c.Live != 0 && c.Wind != 0 {
				tst.Errorf("%s applies both L and W", c.ID)
			}
		}
	}

	roof := LoadCase{Points: []beam.PointLoad{{Distance: 1, Force: 10}}}
	rain := LoadCase{Points: []beam.PointLoad{{Distance: 1, Force: 20}}}
	cases := LoadCases{Roof: roof, Rain: rain}

	points, _ := combination(tst, "3a").Factor(cases)
	chk.Int(tst, "3a points", len(points), 1)
	chk.Float64(tst, "1.6Lr", 1e-15, points[0].Force, 16)

	points, _ = combination(tst, "3c").Factor(cases)
	chk.Int(tst, "3c points", len(points), 1)
	chk.Float64(tst, "1.6R", 1e-15, points[0].Force, 32)

	results, err := SolveAll(context.Background(), 1, beam.DefaultCapacity, cases, LoadCombinations)
	if err != nil {
		tst.Errorf("SolveAll failed:\n%v", err)
		return
	}
	_, v := Governing(results)
	io.Pforan("governing shear %s: %g\n", results[v].Combination.ID, results[v].Extremes.Shear)
	chk.Float64(tst, "governing |V| uses R alone", 1e-12, results[v].Extremes.Shear, 32)
}
