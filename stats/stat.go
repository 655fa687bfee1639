// Package stats flags anomalous residuals left after smoothing.
package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var ErrNoFiniteValues = errors.New("no finite values to detect anomalies over")

// AnomalyOptions bounds the inner percentile range of values considered
// normal and the Tukey fence factor applied outside of it.
type AnomalyOptions struct {
	LowerPercentile float64
	UpperPercentile float64
	TukeyFactor     float64
}

func NewDefaultAnomalyOptions() *AnomalyOptions {
	return &AnomalyOptions{
		LowerPercentile: 0.1,
		UpperPercentile: 0.9,
		TukeyFactor:     1.0,
	}
}

// Anomalies returns the indices of values falling on or outside the Tukey
// fences derived from the inner percentile range. NaN values are skipped
// and never flagged, so a residual series with prediction holes can be
// passed directly.
func Anomalies(y []float64, opt *AnomalyOptions) ([]int, error) {
	if opt == nil {
		opt = NewDefaultAnomalyOptions()
	}
	lowerPerc := math.Max(opt.LowerPercentile, 0.0)
	upperPerc := math.Min(opt.UpperPercentile, 1.0)
	tukeyFactor := math.Max(opt.TukeyFactor, 0.0)

	finite := make([]float64, 0, len(y))
	for _, v := range y {
		if math.IsNaN(v) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return nil, ErrNoFiniteValues
	}
	sort.Float64s(finite)

	lower := stat.Quantile(lowerPerc, stat.Empirical, finite, nil)
	upper := stat.Quantile(upperPerc, stat.Empirical, finite, nil)
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var anomalyIdx []int
	for i, v := range y {
		if math.IsNaN(v) {
			continue
		}
		if v >= upper || v <= lower {
			anomalyIdx = append(anomalyIdx, i)
		}
	}
	return anomalyIdx, nil
}
