package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnomalies(t *testing.T) {
	y := make([]float64, 101)
	for i := range y {
		y[i] = float64(i%11) - 5.0
	}
	y[13] = 250.0
	y[77] = -250.0

	idxs, err := Anomalies(y, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{13, 77}, idxs)
}

func TestAnomaliesSkipsNaN(t *testing.T) {
	y := make([]float64, 101)
	for i := range y {
		y[i] = float64(i%11) - 5.0
	}
	y[13] = math.NaN()
	y[77] = 250.0

	idxs, err := Anomalies(y, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{77}, idxs)
}

func TestAnomaliesNoFiniteValues(t *testing.T) {
	_, err := Anomalies([]float64{math.NaN(), math.NaN()}, nil)
	require.ErrorIs(t, err, ErrNoFiniteValues)
}

func TestAnomaliesTightFence(t *testing.T) {
	y := []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 10}
	opt := &AnomalyOptions{
		LowerPercentile: 0.25,
		UpperPercentile: 0.75,
		TukeyFactor:     0.0,
	}
	idxs, err := Anomalies(y, opt)
	require.NoError(t, err)
	// zero inner range puts every member on the fence
	assert.Len(t, idxs, len(y))
}
