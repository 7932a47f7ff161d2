package FV1D

import (
	"errors"
	"fmt"
)

// ErrNumericalInstability is returned when the state leaves the physically valid region
var ErrNumericalInstability = errors.New("FV1D: numerical instability")

// NumericalInstabilityError locates the first invalid cell found after a step
type NumericalInstabilityError struct {
	Step        int
	Time        float64
	Cell        int // Row index in the full table, ghost cells included
	Rho, P      float64
	Description string
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("%s: %s at step %d, time %8.6f, cell %d (rho = %v, p = %v)",
		ErrNumericalInstability.Error(), e.Description, e.Step, e.Time, e.Cell, e.Rho, e.P)
}

func (e *NumericalInstabilityError) Unwrap() error { return ErrNumericalInstability }
