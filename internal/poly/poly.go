package poly

import (
	"fmt"
	"math"
	"strings"
)

// Terms is the number of coefficients every polynomial carries.
// Each integration raises the degree by one, so a load of degree d
// survives two integrations exactly only while d+2 <= Terms.
const Terms = 4

// Epsilon is the tolerance used when comparing beam positions
const Epsilon = 1.0 / 2048.0

// Polynomial holds coefficients in ascending powers of x:
// p(x) = p[0] + p[1]*x + p[2]*x² + ...
type Polynomial [Terms]float64

// FromSlice copies up to Terms coefficients. Higher terms are dropped
// and missing terms are zero.
func FromSlice(coeffs []float64) Polynomial {
	var p Polynomial
	copy(p[:], coeffs)
	return p
}

// Eval returns p(x)
func (p Polynomial) Eval(x float64) float64 {
	sum := 0.0
	pow := 1.0
	for i := 0; i < Terms; i++ {
		sum += p[i] * pow
		pow *= x
	}
	return sum
}

// Integrate returns the indefinite integral with a zero constant term.
// The highest input term cannot be represented and is dropped.
func (p Polynomial) Integrate() Polynomial {
	var q Polynomial
	for i := 1; i < Terms; i++ {
		q[i] = p[i-1] / float64(i)
	}
	return q
}

// Derivative returns dp/dx
func (p Polynomial) Derivative() Polynomial {
	var q Polynomial
	for i := 1; i < Terms; i++ {
		q[i-1] = float64(i) * p[i]
	}
	return q
}

// Definite returns the integral of p over [a, b]
func (p Polynomial) Definite(a, b float64) float64 {
	q := p.Integrate()
	return q.Eval(b) - q.Eval(a)
}

// Add returns the coefficient-wise sum p + q
func (p Polynomial) Add(q Polynomial) Polynomial {
	for i := range p {
		p[i] += q[i]
	}
	return p
}

// Scale multiplies every coefficient by k
func (p Polynomial) Scale(k float64) Polynomial {
	for i := range p {
		p[i] *= k
	}
	return p
}

// Negate returns -p
func (p Polynomial) Negate() Polynomial {
	return p.Scale(-1)
}

// WithoutConstant returns p with its x⁰ coefficient cleared
func (p Polynomial) WithoutConstant() Polynomial {
	p[0] = 0
	return p
}

// Degree returns the highest power with a non-zero coefficient, or -1
// for the zero polynomial.
func (p Polynomial) Degree() int {
	for i := Terms - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// IsZero reports whether every coefficient is zero
func (p Polynomial) IsZero() bool {
	return p.Degree() < 0
}

// String formats p as "c0 + c1·x + c2·x² ...", skipping zero terms.
func (p Polynomial) String() string {
	var terms []string
	for i, c := range p {
		if c == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%.4g", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%.4g·x", c))
		default:
			terms = append(terms, fmt.Sprintf("%.4g·x%s", c, superscript(i)))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.ReplaceAll(strings.Join(terms, " + "), "+ -", "- ")
}

// NearlyEqual reports whether a and b differ by less than Epsilon
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func superscript(n int) string {
	digits := []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")
	s := fmt.Sprint(n)
	var sb strings.Builder
	for _, r := range s {
		sb.WriteRune(digits[r-'0'])
	}
	return sb.String()
}
