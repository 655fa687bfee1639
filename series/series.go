// Package series provides the validated univariate input accepted by the
// smoother: an ordered sequence of (x, y) samples with strictly increasing
// x values.
package series

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoSamples            = errors.New("no samples in series")
	ErrSeriesLenMismatch    = errors.New("x feature has a different length than observations")
	ErrNonIncreasing        = errors.New("x feature is not strictly increasing")
	ErrNonFiniteObservation = errors.New("observation is not a finite number")
)

// Series represents an ordered sample sequence storing a slice of x values
// and observations. Both must be of the same length and x must be strictly
// increasing, which also guarantees uniqueness.
type Series struct {
	X []float64
	Y []float64
}

// New returns an instance of a Series given an x and observation slice. The
// input slices are copied so later mutation by the caller cannot affect a
// running smooth.
func New(x, y []float64) (*Series, error) {
	if len(y) == 0 {
		return nil, ErrNoSamples
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"x feature has length of %d, but observations has a length of %d, %w",
			len(x), len(y), ErrSeriesLenMismatch,
		)
	}

	lastX := math.Inf(-1)
	for i := 0; i < len(x); i++ {
		if x[i] <= lastX {
			return nil, fmt.Errorf("non-increasing x at %d, %w", i, ErrNonIncreasing)
		}
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return nil, fmt.Errorf("observation at %d is %f, %w", i, y[i], ErrNonFiniteObservation)
		}
		lastX = x[i]
	}

	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	s := &Series{
		X: xSeries,
		Y: ySeries,
	}

	return s, nil
}

func (s *Series) Len() int {
	return len(s.X)
}

func (s *Series) Copy() *Series {
	xSeries := make([]float64, len(s.X))
	ySeries := make([]float64, len(s.Y))
	copy(xSeries, s.X)
	copy(ySeries, s.Y)
	return &Series{
		X: xSeries,
		Y: ySeries,
	}
}
