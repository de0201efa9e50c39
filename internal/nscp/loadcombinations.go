package nscp

import (
	"context"
	"math"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"golang.org/x/sync/errgroup"
)

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations.
// Each "or" alternative of the code is its own entry (2a, 2b, ...) so
// no combination carries two alternates at once.
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2a", Description: "1.2D + 1.6L + 0.5Lr", Dead: 1.2, Live: 1.6, Roof: 0.5},
	{ID: "2b", Description: "1.2D + 1.6L + 0.5R", Dead: 1.2, Live: 1.6, Rain: 0.5},
	{ID: "3a", Description: "1.2D + 1.6Lr + 1.0L", Dead: 1.2, Roof: 1.6, Live: 1.0},
	{ID: "3b", Description: "1.2D + 1.6Lr + 0.5W", Dead: 1.2, Roof: 1.6, Wind: 0.5},
	{ID: "3c", Description: "1.2D + 1.6R + 1.0L", Dead: 1.2, Rain: 1.6, Live: 1.0},
	{ID: "3d", Description: "1.2D + 1.6R + 0.5W", Dead: 1.2, Rain: 1.6, Wind: 0.5},
	{ID: "4a", Description: "1.2D + 1.0W + 1.0L + 0.5Lr", Dead: 1.2, Wind: 1.0, Live: 1.0, Roof: 0.5},
	{ID: "4b", Description: "1.2D + 1.0W + 1.0L + 0.5R", Dead: 1.2, Wind: 1.0, Live: 1.0, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// SimplifiedCombinations covers gravity loads only
var SimplifiedCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// LoadCase is the set of unfactored loads of one load type
type LoadCase struct {
	Points      []beam.PointLoad
	Distributed []beam.DistributedLoad
}

// Empty reports whether the case carries no load
func (c LoadCase) Empty() bool {
	return len(c.Points) == 0 && len(c.Distributed) == 0
}

// LoadCases holds the unfactored load case of every load type
type LoadCases struct {
	Dead       LoadCase
	Live       LoadCase
	Roof       LoadCase
	Wind       LoadCase
	Earthquake LoadCase
	Rain       LoadCase
}

// Empty reports whether no load type carries any load
func (lc LoadCases) Empty() bool {
	for _, c := range lc.list(LoadCombination{}) {
		if !c.LoadCase.Empty() {
			return false
		}
	}
	return true
}

type factoredCase struct {
	LoadCase
	factor float64
}

func (lc LoadCases) list(combo LoadCombination) []factoredCase {
	return []factoredCase{
		{lc.Dead, combo.Dead},
		{lc.Live, combo.Live},
		{lc.Roof, combo.Roof},
		{lc.Wind, combo.Wind},
		{lc.Earthquake, combo.Earthquake},
		{lc.Rain, combo.Rain},
	}
}

// Factor returns the loads of every case scaled by its factor in the
// combination. The inputs are not modified.
func (lc LoadCombination) Factor(cases LoadCases) ([]beam.PointLoad, []beam.DistributedLoad) {
	var points []beam.PointLoad
	var distributed []beam.DistributedLoad
	for _, c := range cases.list(lc) {
		if c.factor == 0 || c.Empty() {
			continue
		}
		p, d := beam.Scale(c.Points, c.Distributed, c.factor)
		points = append(points, p...)
		distributed = append(distributed, d...)
	}
	return points, distributed
}

// CalculateFactoredMoment calculates the factored moment for a given load combination
func (lc LoadCombination) CalculateFactoredMoment(moments LoadMoments) float64 {
	return lc.Dead*moments.Dead +
		lc.Live*moments.Live +
		lc.Roof*moments.Roof +
		lc.Wind*moments.Wind +
		lc.Earthquake*moments.Earthquake +
		lc.Rain*moments.Rain
}

// LoadMoments holds unfactored wall moments from different load types
type LoadMoments struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// WallMoments solves each non-empty case alone and returns its wall
// reaction moment
func WallMoments(length float64, capacity int, cases LoadCases) (LoadMoments, error) {
	var m LoadMoments
	targets := []*float64{&m.Dead, &m.Live, &m.Roof, &m.Wind, &m.Earthquake, &m.Rain}
	for i, c := range cases.list(LoadCombination{}) {
		if c.Empty() {
			continue
		}
		b := beam.New(length, capacity)
		if err := b.Solve(c.Points, c.Distributed); err != nil {
			return LoadMoments{}, err
		}
		*targets[i] = b.WallReactionMoment
	}
	return m, nil
}

// Result is one solved load combination
type Result struct {
	Combination LoadCombination
	Beam        *beam.Beam
	Extremes    beam.Extremes
}

// SolveAll factors and solves every combination on its own beam. The
// solves run concurrently; results keep the order of combos. The first
// failure cancels the rest and is returned.
func SolveAll(ctx context.Context, length float64, capacity int, cases LoadCases, combos []LoadCombination) ([]Result, error) {
	results := make([]Result, len(combos))
	g, ctx := errgroup.WithContext(ctx)
	for i, combo := range combos {
		i, combo := i, combo
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			points, distributed := combo.Factor(cases)
			b := beam.New(length, capacity)
			if err := b.Solve(points, distributed); err != nil {
				return err
			}
			results[i] = Result{Combination: combo, Beam: b, Extremes: b.Extremes()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Governing returns the indices of the results with the largest absolute
// moment and the largest absolute shear. Ties keep the earlier result.
func Governing(results []Result) (moment, shear int) {
	var maxMoment, maxShear float64
	for i, r := range results {
		if m := math.Abs(r.Extremes.Moment); m > maxMoment {
			maxMoment, moment = m, i
		}
		if v := math.Abs(r.Extremes.Shear); v > maxShear {
			maxShear, shear = v, i
		}
	}
	return moment, shear
}

// CalculateGoverningMoment finds the maximum factored moment from all combinations
func CalculateGoverningMoment(moments LoadMoments, combinations []LoadCombination) (float64, LoadCombination) {
	var maxMoment float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		mu := combo.CalculateFactoredMoment(moments)
		if math.Abs(mu) > math.Abs(maxMoment) {
			maxMoment = mu
			governingCombo = combo
		}
	}

	return maxMoment, governingCombo
}
