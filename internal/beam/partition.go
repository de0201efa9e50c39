package beam

import (
	"cmp"
	"slices"

	"github.com/alexiusacademia/gosmd/internal/poly"
)

type eventKind int

const (
	noEvent eventKind = iota
	pointEvent
	startEvent
	endEvent
)

// sweep holds the scratch state of one Partition call
type sweep struct {
	points      []PointLoad
	distributed []DistributedLoad
	byStart     []int // indices into distributed, ascending Start
	byEnd       []int // indices into distributed, ascending End
	active      []int // indices of loads acting on the open section

	ip, is, ie int
}

// Partition tiles [0, length] into sections at every point load and
// every start or end of a distributed load. The inputs are not
// reordered. It fails with a *CapacityError when the tiling needs more
// than capacity sections.
func Partition(length float64, points []PointLoad, distributed []DistributedLoad, capacity int) ([]Section, error) {
	sw := newSweep(points, distributed)
	sections := []Section{{Start: 0}}

	for {
		kind, pos := sw.next()
		if kind == noEvent {
			break
		}

		open := &sections[len(sections)-1]
		if !poly.NearlyEqual(pos, open.Start) {
			// close with the loads active before this event
			open.End = pos
			open.Polynomial = sw.activeSum()
			sections = append(sections, Section{Start: pos})
			open = &sections[len(sections)-1]
		}

		switch kind {
		case pointEvent:
			open.PointForce += sw.points[sw.ip].Force
			sw.ip++
		case startEvent:
			sw.active = append(sw.active, sw.byStart[sw.is])
			sw.is++
		case endEvent:
			sw.deactivate(sw.byEnd[sw.ie])
			sw.ie++
		}
	}

	last := len(sections) - 1
	if sections[last].Start < length || last == 0 {
		sections[last].End = length
	} else {
		sections[last-1].End = length
		sections[last].End = length
	}

	if len(sections) > capacity {
		return nil, &CapacityError{Required: len(sections), Capacity: capacity}
	}
	return sections, nil
}

func newSweep(points []PointLoad, distributed []DistributedLoad) *sweep {
	sw := &sweep{
		points:      slices.Clone(points),
		distributed: distributed,
		byStart:     make([]int, len(distributed)),
		byEnd:       make([]int, len(distributed)),
	}
	slices.SortStableFunc(sw.points, func(a, b PointLoad) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	for i := range distributed {
		sw.byStart[i] = i
		sw.byEnd[i] = i
	}
	slices.SortStableFunc(sw.byStart, func(a, b int) int {
		return cmp.Compare(distributed[a].Start, distributed[b].Start)
	})
	slices.SortStableFunc(sw.byEnd, func(a, b int) int {
		return cmp.Compare(distributed[a].End, distributed[b].End)
	})
	return sw
}

// next picks the pending event with the smallest position. On equal
// positions a point load wins over a start, and a start over an end.
func (sw *sweep) next() (eventKind, float64) {
	kind, pos := noEvent, 0.0
	consider := func(k eventKind, x float64) {
		if kind == noEvent || x < pos {
			kind, pos = k, x
		}
	}
	if sw.ip < len(sw.points) {
		consider(pointEvent, sw.points[sw.ip].Distance)
	}
	if sw.is < len(sw.byStart) {
		consider(startEvent, sw.distributed[sw.byStart[sw.is]].Start)
	}
	if sw.ie < len(sw.byEnd) {
		consider(endEvent, sw.distributed[sw.byEnd[sw.ie]].End)
	}
	return kind, pos
}

func (sw *sweep) activeSum() poly.Polynomial {
	var sum poly.Polynomial
	for _, i := range sw.active {
		sum = sum.Add(sw.distributed[i].Polynomial)
	}
	return sum
}

// deactivate is a no-op for a load that never started, which only
// happens for loads with End < Start.
func (sw *sweep) deactivate(load int) {
	if k := slices.Index(sw.active, load); k >= 0 {
		sw.active = slices.Delete(sw.active, k, k+1)
	}
}
