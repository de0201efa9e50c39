package beam

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is matched by every *CapacityError
var ErrCapacityExceeded = errors.New("section capacity exceeded")

// CapacityError reports a partition that needs more sections than the
// caller allowed.
type CapacityError struct {
	Required int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("beam needs %d sections but capacity is %d", e.Required, e.Capacity)
}

// Is makes errors.Is(err, ErrCapacityExceeded) succeed
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
