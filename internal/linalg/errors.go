package linalg

import (
	"errors"
	"fmt"
)

// ErrLinearDependence is matched by every [LinearDependenceError].
var ErrLinearDependence = errors.New("linalg: vector with norm 0 occurred")

// LinearDependenceError reports the input row that became exactly zero after
// projection onto the rows before it.
type LinearDependenceError struct {
	Index int
}

func (e *LinearDependenceError) Error() string {
	return fmt.Sprintf("linalg: vector %d has norm 0 after orthogonalization (input set is linearly dependent)", e.Index)
}

func (e *LinearDependenceError) Unwrap() error {
	return ErrLinearDependence
}
