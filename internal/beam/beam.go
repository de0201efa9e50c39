package beam

// DefaultCapacity is the section limit used when the input names none
const DefaultCapacity = 20

// Beam is a cantilever fixed at x = 0 and free at x = Length.
// Raw, Shear and Moment are index-aligned after a successful Solve.
type Beam struct {
	Length   float64 `json:"length"`
	Capacity int     `json:"capacity"` // maximum number of sections

	WallReactionForce  float64 `json:"wall_reaction_force"`
	WallReactionMoment float64 `json:"wall_reaction_moment"`

	Raw    []Section `json:"raw"`
	Shear  []Section `json:"shear"`
	Moment []Section `json:"moment"`
}

// New creates an unsolved beam
func New(length float64, capacity int) *Beam {
	return &Beam{
		Length:   length,
		Capacity: capacity,
	}
}

// Solve recomputes the reactions and all three diagrams from the given
// loads. Nothing from a previous call is reused. When the loads need
// more sections than Capacity the derived fields are cleared and an
// error matching ErrCapacityExceeded is returned.
func (b *Beam) Solve(points []PointLoad, distributed []DistributedLoad) error {
	raw, err := Partition(b.Length, points, distributed, b.Capacity)
	if err != nil {
		b.reset()
		return err
	}

	b.Raw = raw
	b.WallReactionForce = WallReactionForce(raw)
	b.WallReactionMoment = WallReactionMoment(raw)
	b.Shear = ShearSections(raw, b.WallReactionForce)
	b.Moment = MomentSections(b.Shear, b.WallReactionMoment)
	return nil
}

// SectionCount returns the number of sections of the last solve
func (b *Beam) SectionCount() int {
	return len(b.Raw)
}

// Equal compares the length and section count of two beams
func (b *Beam) Equal(o *Beam) bool {
	return b.Length == o.Length && b.SectionCount() == o.SectionCount()
}

func (b *Beam) reset() {
	b.WallReactionForce = 0
	b.WallReactionMoment = 0
	b.Raw = nil
	b.Shear = nil
	b.Moment = nil
}
