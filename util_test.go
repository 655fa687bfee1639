package loess

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSmoother(t *testing.T) {
	n := 30
	x, y := generateRingWidths(n)

	s, err := New(&Options{Spans: []float64{0.5, 1.0}})
	require.NoError(t, err)
	require.NoError(t, s.Fit(x, y))

	res, err := s.Results()
	require.NoError(t, err)

	line := LineSmoother(res)
	require.NotNil(t, line)

	// observed plus one series per span
	assert.Len(t, line.MultiSeries, 3)
}

func TestLineLocalWeights(t *testing.T) {
	n := 30
	x, y := generateRingWidths(n)

	s, err := New(&Options{Spans: []float64{0.5}, KeepWindows: true})
	require.NoError(t, err)
	require.NoError(t, s.Fit(x, y))

	res, err := s.Results()
	require.NoError(t, err)
	sp := &res.Spans[0]

	line, err := LineLocalWeights(sp, x[n/2])
	require.NoError(t, err)
	require.NotNil(t, line)

	_, err = LineLocalWeights(sp, -1.0)
	require.ErrorIs(t, err, ErrNoWindowRows)
}

func TestLineLocalWeightsNotKept(t *testing.T) {
	n := 30
	x, y := generateRingWidths(n)

	s, err := New(&Options{Spans: []float64{0.5}})
	require.NoError(t, err)
	require.NoError(t, s.Fit(x, y))

	res, err := s.Results()
	require.NoError(t, err)

	_, err = LineLocalWeights(&res.Spans[0], x[0])
	require.ErrorIs(t, err, ErrNoWindowRows)
}

func TestPlotFit(t *testing.T) {
	n := 30
	x, y := generateRingWidths(n)

	s, err := New(&Options{Spans: []float64{0.5}, KeepWindows: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.ErrorIs(t, s.PlotFit(&buf, nil), ErrUntrainedSmoother)

	require.NoError(t, s.Fit(x, y))
	require.NoError(t, s.PlotFit(&buf, nil))

	out := buf.String()
	assert.Contains(t, out, "Local Regression Smooth")
	assert.Contains(t, out, "Window Weights")
}

func TestPlotFitWeightSpanSelection(t *testing.T) {
	n := 30
	x, y := generateRingWidths(n)

	s, err := New(&Options{Spans: []float64{0.3, 0.6}, KeepWindows: true})
	require.NoError(t, err)
	require.NoError(t, s.Fit(x, y))

	// a weight span outside the fitted set is an error, not a fallback
	var buf bytes.Buffer
	require.ErrorIs(t, s.PlotFit(&buf, &PlotOpts{WeightSpan: 0.4}), ErrUnknownSpan)

	buf.Reset()
	require.NoError(t, s.PlotFit(&buf, &PlotOpts{WeightSpan: 0.6, WeightCenter: x[n/4]}))
	assert.Contains(t, buf.String(), "span 0.60")

	// zero values keep the first-span/middle-center defaults
	buf.Reset()
	require.NoError(t, s.PlotFit(&buf, &PlotOpts{}))
	assert.Contains(t, buf.String(), "span 0.30")
}
