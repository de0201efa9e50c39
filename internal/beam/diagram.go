package beam

// ShearSections integrates the raw load sections into the shear diagram.
// Each piece starts where the previous one ended, less the point force
// located at the shared boundary.
func ShearSections(raw []Section, wallForce float64) []Section {
	shear := make([]Section, len(raw))
	for i, r := range raw {
		s := Section{
			Start:      r.Start,
			End:        r.End,
			Polynomial: r.Polynomial.Integrate().Negate(),
		}
		if i == 0 {
			s.Polynomial[0] = wallForce - r.PointForce
		} else {
			prev := shear[i-1]
			s.Polynomial[0] = prev.Polynomial.Eval(prev.End) -
				s.Polynomial.WithoutConstant().Eval(s.Start) -
				r.PointForce
		}
		shear[i] = s
	}
	return shear
}

// MomentSections integrates the shear diagram into the bending moment
// diagram. Point moments are not modelled, so the moment is continuous.
func MomentSections(shear []Section, wallMoment float64) []Section {
	moment := make([]Section, len(shear))
	for i, v := range shear {
		m := Section{
			Start:      v.Start,
			End:        v.End,
			Polynomial: v.Polynomial.Integrate(),
		}
		if i == 0 {
			m.Polynomial[0] = -wallMoment
		} else {
			prev := moment[i-1]
			m.Polynomial[0] = prev.Polynomial.Eval(prev.End) -
				m.Polynomial.WithoutConstant().Eval(m.Start)
		}
		moment[i] = m
	}
	return moment
}
