package series

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// GenerateX creates n evenly spaced x values starting at start. For a
// yearly record a step of 1.0 yields one sample per year.
func GenerateX(n int, start, step float64) []float64 {
	x := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, start+float64(i)*step)
	}
	return x
}

// Values is a composable observation slice used to build synthetic series
// for tests and examples.
type Values []float64

func (v Values) Add(src Values) Values {
	floats.Add(v, src)
	return v
}

func GenerateConstY(n int, val float64) Values {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Values(y)
}

func GenerateTrendY(x []float64, intercept, slope float64) Values {
	y := make([]float64, 0, len(x))
	for i := 0; i < len(x); i++ {
		y = append(y, intercept+slope*x[i])
	}
	return Values(y)
}

func GenerateWaveY(x []float64, amp, period, phase float64) Values {
	y := make([]float64, 0, len(x))
	for i := 0; i < len(x); i++ {
		y = append(y, amp*math.Sin(2.0*math.Pi/period*(x[i]+phase)))
	}
	return Values(y)
}

func GenerateNoise(n int, scale float64) Values {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*scale)
	}
	return Values(y)
}
