package experiment

import "errors"

var (
	// ErrNilDependency indicates a missing generator or sort function.
	ErrNilDependency = errors.New("experiment: nil dependency")

	// ErrEmptyPlan indicates a Plan without sizes, distributions or strategies.
	ErrEmptyPlan = errors.New("experiment: empty plan")
)
