// Package window selects the local neighborhood used for each smoother fit
// and computes its tricube regression weights.
package window

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aouyang1/go-loess/series"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrWindowTooSmall    = errors.New("window must have at least 2 members")
	ErrDegenerateWindow  = errors.New("window max distance is zero")
	ErrWindowNotWeighted = errors.New("window weights have not been computed")
)

// Window holds the k samples nearest to a center x value, ordered by their
// original series position, along with their distances to the center.
// Weights is populated by Weigh.
type Window struct {
	Center  float64
	MaxDist float64

	Indices   []int
	X         []float64
	Y         []float64
	Distances []float64
	Weights   []float64
}

// Select picks the k samples of s whose x distance to center is smallest.
// Ranking ties are broken by original series order so the selection is
// deterministic, and the returned members keep series order rather than
// distance order.
func Select(s *series.Series, center float64, k int) (*Window, error) {
	n := s.Len()
	if k < 2 {
		return nil, fmt.Errorf("requested window of %d members, %w", k, ErrWindowTooSmall)
	}
	if k > n {
		return nil, fmt.Errorf("requested window of %d members from %d samples, %w", k, n, ErrWindowTooSmall)
	}

	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Abs(s.X[i] - center)
	}

	rank := make([]int, n)
	for i := range rank {
		rank[i] = i
	}
	sort.SliceStable(rank, func(a, b int) bool {
		return dist[rank[a]] < dist[rank[b]]
	})

	idx := make([]int, k)
	copy(idx, rank[:k])
	sort.Ints(idx)

	w := &Window{
		Center:    center,
		Indices:   idx,
		X:         make([]float64, 0, k),
		Y:         make([]float64, 0, k),
		Distances: make([]float64, 0, k),
	}
	for _, i := range idx {
		w.X = append(w.X, s.X[i])
		w.Y = append(w.Y, s.Y[i])
		w.Distances = append(w.Distances, dist[i])
	}
	w.MaxDist = floats.Max(w.Distances)
	return w, nil
}

// Weigh computes the tricube weight of every member from its distance to
// the center. The center itself gets weight 1 and members at the window
// radius get weight 0.
func (w *Window) Weigh() error {
	if w.MaxDist == 0 {
		return ErrDegenerateWindow
	}
	w.Weights = make([]float64, 0, len(w.Distances))
	for _, d := range w.Distances {
		w.Weights = append(w.Weights, Tricube(d/w.MaxDist))
	}
	return nil
}

// PositiveWeights returns the number of members contributing to the fit.
func (w *Window) PositiveWeights() (int, error) {
	if w.Weights == nil {
		return 0, ErrWindowNotWeighted
	}
	var cnt int
	for _, wt := range w.Weights {
		if wt > 0 {
			cnt++
		}
	}
	return cnt, nil
}

// Tricube evaluates the tricube kernel (1-u^3)^3 for u in [0, 1]. The
// result is clamped so floating point overshoot at the boundary can never
// leak a weight outside [0, 1].
func Tricube(u float64) float64 {
	v := 1.0 - u*u*u
	v = v * v * v
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
