// Package models is a collection of linear regression fitting implementations to be used in the
// smoother
package models

type Model interface {
	Fit(x, y, weights []float64) error
	Predict(x []float64) ([]float64, error)
	Score(x, y, weights []float64) (float64, error)
	Intercept() float64
	Slope() float64
}
