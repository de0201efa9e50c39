package beamio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/alexiusacademia/gosmd/internal/poly"
)

// ParsePoint reads "distance:force"
func ParsePoint(s string) (beam.PointLoad, error) {
	vals, err := splitFloats(s, ":", 2)
	if err != nil {
		return beam.PointLoad{}, fmt.Errorf("point load %q: %w", s, err)
	}
	return beam.PointLoad{Distance: vals[0], Force: vals[1]}, nil
}

// ParseDistributed reads "start:end:c0,c1,..."
func ParseDistributed(s string) (beam.DistributedLoad, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return beam.DistributedLoad{}, fmt.Errorf("distributed load %q: expected start:end:c0,c1,...", s)
	}
	bounds, err := splitFloats(parts[0]+":"+parts[1], ":", 2)
	if err != nil {
		return beam.DistributedLoad{}, fmt.Errorf("distributed load %q: %w", s, err)
	}
	coeffs, err := splitFloats(parts[2], ",", -1)
	if err != nil {
		return beam.DistributedLoad{}, fmt.Errorf("distributed load %q: %w", s, err)
	}
	return beam.DistributedLoad{Start: bounds[0], End: bounds[1], Polynomial: poly.FromSlice(coeffs)}, nil
}

// ParseLinear reads "x0:w0:x1:w1", a load varying linearly from w0 to w1
func ParseLinear(s string) (beam.DistributedLoad, error) {
	vals, err := splitFloats(s, ":", 4)
	if err != nil {
		return beam.DistributedLoad{}, fmt.Errorf("linear load %q: %w", s, err)
	}
	return beam.LinearLoad(vals[0], vals[1], vals[2], vals[3]), nil
}

// FromFlags builds an input from repeated command line load specs
func FromFlags(length float64, capacity int, points, distributed, linear []string) (*Input, error) {
	in := &Input{Length: length, Capacity: capacity}
	for _, s := range points {
		p, err := ParsePoint(s)
		if err != nil {
			return nil, err
		}
		in.PointLoads = append(in.PointLoads, p)
	}
	for _, s := range distributed {
		d, err := ParseDistributed(s)
		if err != nil {
			return nil, err
		}
		in.DistributedLoads = append(in.DistributedLoads, d)
	}
	for _, s := range linear {
		d, err := ParseLinear(s)
		if err != nil {
			return nil, err
		}
		in.DistributedLoads = append(in.DistributedLoads, d)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// splitFloats splits s by sep and parses every field. n < 0 accepts any
// non-zero count.
func splitFloats(s, sep string, n int) ([]float64, error) {
	fields := strings.Split(s, sep)
	if n >= 0 && len(fields) != n {
		return nil, fmt.Errorf("expected %d values separated by %q", n, sep)
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		vals[i] = v
	}
	return vals, nil
}
