package beam

import (
	"math"
)

// Station is one sampled point of a diagram
type Station struct {
	X float64
	Y float64
}

// Extremes holds the largest absolute shear and moment of a solved beam.
// Values keep their sign.
type Extremes struct {
	Shear    float64
	ShearAt  float64
	Moment   float64
	MomentAt float64
}

// ShearAt evaluates the shear diagram at x
func (b *Beam) ShearAt(x float64) float64 {
	return valueAt(b.Shear, x)
}

// MomentAt evaluates the moment diagram at x
func (b *Beam) MomentAt(x float64) float64 {
	return valueAt(b.Moment, x)
}

// valueAt uses the last non-empty section starting at or before x, so a
// jump at x is already applied and x = Length gives the left limit.
func valueAt(sections []Section, x float64) float64 {
	if len(sections) == 0 {
		return 0
	}
	pick := 0
	for i, s := range sections {
		if s.Start > x {
			break
		}
		if s.Width() > 0 {
			pick = i
		}
	}
	return sections[pick].Polynomial.Eval(x)
}

// Stations samples each section at n+1 evenly spaced points, both ends
// included, so jumps between sections show as two stations at the same x.
// Empty sections contribute a single station.
func Stations(sections []Section, n int) []Station {
	if n < 1 {
		n = 1
	}
	var out []Station
	for _, s := range sections {
		if s.Width() <= 0 {
			out = append(out, Station{X: s.Start, Y: s.Polynomial.Eval(s.Start)})
			continue
		}
		dx := s.Width() / float64(n)
		for k := 0; k <= n; k++ {
			x := s.Start + float64(k)*dx
			if k == n {
				x = s.End
			}
			out = append(out, Station{X: x, Y: s.Polynomial.Eval(x)})
		}
	}
	return out
}

// Sample evaluates the diagram at n evenly spaced points over [0, length]
func Sample(sections []Section, length float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = valueAt(sections, length*float64(i)/float64(n-1))
	}
	return ys
}

// Extremes finds the largest absolute shear and moment, checking section
// ends and interior stationary points.
func (b *Beam) Extremes() Extremes {
	var e Extremes
	e.Shear, e.ShearAt = extreme(b.Shear)
	e.Moment, e.MomentAt = extreme(b.Moment)
	return e
}

func extreme(sections []Section) (value, at float64) {
	for _, s := range sections {
		candidates := []float64{s.Start, s.End}
		if s.Width() > 0 {
			d := s.Polynomial.Derivative()
			for _, r := range quadraticRoots(d[2], d[1], d[0]) {
				if r > s.Start && r < s.End {
					candidates = append(candidates, r)
				}
			}
		}
		for _, x := range candidates {
			y := s.Polynomial.Eval(x)
			if math.Abs(y) > math.Abs(value) {
				value, at = y, x
			}
		}
	}
	return value, at
}

// quadraticRoots returns the real roots of a·x² + b·x + c
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}
