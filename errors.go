package charts

import (
	"errors"
)

var (
	// ErrTooFewSamples is returned when a line needs at least two samples.
	ErrTooFewSamples = errors.New("at least two samples are required")
	// ErrNoData is returned when a bar chart is given no stacks.
	ErrNoData = errors.New("no data")
)
