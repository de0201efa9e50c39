package beam

// WallReactionForce returns the force the wall must supply: every point
// force plus the area under the piecewise distributed load.
func WallReactionForce(sections []Section) float64 {
	var points, distributed float64
	for _, s := range sections {
		points += s.PointForce
		distributed += s.Area()
	}
	return points + distributed
}

// WallReactionMoment returns the moment the wall must supply. The
// distributed load of each section acts at the section midpoint, which
// is exact for a constant intensity only.
func WallReactionMoment(sections []Section) float64 {
	sum := 0.0
	for _, s := range sections {
		sum += s.PointForce*s.Start + s.Area()*s.Midpoint()
	}
	return -sum
}
