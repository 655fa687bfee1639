package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testData := map[string]struct {
		x        []float64
		y        []float64
		expected *Series
		err      error
	}{
		"valid": {
			x:        []float64{1500, 1501, 1503},
			y:        []float64{0.52, 0.61, 0.47},
			expected: &Series{X: []float64{1500, 1501, 1503}, Y: []float64{0.52, 0.61, 0.47}},
		},
		"empty": {
			err: ErrNoSamples,
		},
		"length mismatch": {
			x:   []float64{1500, 1501},
			y:   []float64{0.52},
			err: ErrSeriesLenMismatch,
		},
		"duplicate x": {
			x:   []float64{1500, 1500, 1501},
			y:   []float64{0.52, 0.61, 0.47},
			err: ErrNonIncreasing,
		},
		"decreasing x": {
			x:   []float64{1502, 1501, 1500},
			y:   []float64{0.52, 0.61, 0.47},
			err: ErrNonIncreasing,
		},
		"nan observation": {
			x:   []float64{1500, 1501},
			y:   []float64{0.52, math.NaN()},
			err: ErrNonFiniteObservation,
		},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := New(td.x, td.y)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, s)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	x := []float64{1500, 1501}
	y := []float64{0.52, 0.61}
	s, err := New(x, y)
	require.NoError(t, err)

	x[0] = -1
	y[0] = -1
	assert.Equal(t, 1500.0, s.X[0])
	assert.Equal(t, 0.52, s.Y[0])
}

func TestCopy(t *testing.T) {
	s, err := New([]float64{1500, 1501}, []float64{0.52, 0.61})
	require.NoError(t, err)

	c := s.Copy()
	require.Equal(t, s, c)

	c.Y[0] = -1
	assert.Equal(t, 0.52, s.Y[0])
}

func TestGenerators(t *testing.T) {
	n := 8
	x := GenerateX(n, 1500, 1)
	require.Len(t, x, n)
	assert.Equal(t, 1500.0, x[0])
	assert.Equal(t, 1507.0, x[n-1])

	y := GenerateConstY(n, 1.2).
		Add(GenerateTrendY(x, 0.0, 0.5)).
		Add(GenerateWaveY(x, 0.0, 100.0, 0.0))
	for i := 0; i < n; i++ {
		assert.InDelta(t, 1.2+0.5*x[i], y[i], 1e-12)
	}

	noise := GenerateNoise(n, 0.0)
	for i := 0; i < n; i++ {
		assert.Zero(t, noise[i])
	}
}
