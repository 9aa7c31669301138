package core

import (
	"errors"
	"fmt"
)

// ErrDegenerateVector is returned when an operation needs a direction but
// the vector has zero length.
var ErrDegenerateVector = errors.New("degenerate vector")

// DegenerateVectorError records the vector that could not be normalized
type DegenerateVectorError struct {
	Vector Vec3H
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("cannot normalize zero-length vector %v", e.Vector)
}

func (e *DegenerateVectorError) Unwrap() error {
	return ErrDegenerateVector
}
