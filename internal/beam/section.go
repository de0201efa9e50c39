package beam

import (
	"fmt"

	"github.com/alexiusacademia/gosmd/internal/poly"
)

// Section is a maximal interval over which one set of distributed loads
// is active. PointForce is the point load sitting exactly at Start.
type Section struct {
	Start      float64         `json:"start"`
	End        float64         `json:"end"`
	PointForce float64         `json:"point_force"`
	Polynomial poly.Polynomial `json:"polynomial"`
}

// Width returns End - Start
func (s Section) Width() float64 {
	return s.End - s.Start
}

// Midpoint returns the centre of the section
func (s Section) Midpoint() float64 {
	return (s.Start + s.End) / 2
}

// Contains reports whether x lies in [Start, End)
func (s Section) Contains(x float64) bool {
	return x >= s.Start && x < s.End
}

// Area returns the definite integral of the section polynomial
func (s Section) Area() float64 {
	return s.Polynomial.Definite(s.Start, s.End)
}

func (s Section) String() string {
	return fmt.Sprintf("Section{start: %.4f, end: %.4f, pointForce: %.4f, poly: %v}",
		s.Start, s.End, s.PointForce, s.Polynomial)
}

// SectionsEqual compares the boundaries and point force of two sections
// within poly.Epsilon. Polynomials are not compared.
func SectionsEqual(a, b Section) bool {
	return poly.NearlyEqual(a.Start, b.Start) &&
		poly.NearlyEqual(a.End, b.End) &&
		poly.NearlyEqual(a.PointForce, b.PointForce)
}
