package beamio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosmd/internal/beam"
)

// Input describes a beam and the loads acting on it
type Input struct {
	Name string `json:"name,omitempty"`

	Length   float64 `json:"length"`
	Capacity int     `json:"capacity,omitempty"` // 0 means beam.DefaultCapacity

	PointLoads       []beam.PointLoad       `json:"point_loads"`
	DistributedLoads []beam.DistributedLoad `json:"distributed_loads"`
}

// Validate checks the beam definition. Loads are not checked, the
// solver accepts any load and reports only capacity overflow.
func (in *Input) Validate() error {
	if in.Length < 0 {
		return &ValidationError{fmt.Sprintf("beam length must not be negative, got %g", in.Length)}
	}
	if in.Capacity < 0 {
		return &ValidationError{fmt.Sprintf("section capacity must not be negative, got %d", in.Capacity)}
	}
	return nil
}

// Beam returns an unsolved beam sized for this input
func (in *Input) Beam() *beam.Beam {
	capacity := in.Capacity
	if capacity == 0 {
		capacity = beam.DefaultCapacity
	}
	return beam.New(in.Length, capacity)
}

// Solve builds the beam and solves it for the input loads
func (in *Input) Solve() (*beam.Beam, error) {
	b := in.Beam()
	if err := b.Solve(in.PointLoads, in.DistributedLoads); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadFromFile reads an input by file extension: .json, .xlsx, anything
// else is the #B/#PF/#DF text format. The path "-" reads text from stdin.
func LoadFromFile(path string) (*Input, error) {
	var (
		in  *Input
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		in, err = readJSON(path)
	case ".xlsx":
		in, err = ReadWorkbook(path)
	default:
		in, err = readText(path)
	}
	if err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

func readJSON(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &in, nil
}

func readText(path string) (*Input, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// ValidationError represents an invalid beam definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
