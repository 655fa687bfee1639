package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

type WLSOptions struct {
	FitIntercept bool
}

func NewDefaultWLSOptions() *WLSOptions {
	return &WLSOptions{
		FitIntercept: true,
	}
}

// WLSRegression fits y = a + b*x by weighted least squares, minimizing
// sum(w_i * (y_i - a - b*x_i)^2) over the training points.
type WLSRegression struct {
	opt       *WLSOptions
	slope     float64
	intercept float64
	trained   bool
}

func NewWLSRegression(opt *WLSOptions) (*WLSRegression, error) {
	if opt == nil {
		opt = NewDefaultWLSOptions()
	}
	return &WLSRegression{
		opt: opt,
	}, nil
}

// Fit computes the weighted least squares coefficients. A nil weights slice
// is an unweighted fit. The fit fails with ErrSingularFit when the weighted
// spread of x is zero since the normal equations then have no unique
// solution.
func (w *WLSRegression) Fit(x, y, weights []float64) error {
	if w.opt == nil {
		return ErrNoOptions
	}
	if len(x) == 0 {
		return ErrNoTrainingData
	}
	if len(x) != len(y) {
		return fmt.Errorf("training data has %d points and target has %d, %w", len(x), len(y), ErrTargetLenMismatch)
	}
	if weights != nil && len(weights) != len(x) {
		return fmt.Errorf("training data has %d points and weights has %d, %w", len(x), len(weights), ErrWeightLenMismatch)
	}
	if len(x) < 2 {
		return fmt.Errorf("got %d training points, %w", len(x), ErrInsufficientData)
	}

	if stat.Variance(x, weights) == 0 {
		return fmt.Errorf("weighted x spread is zero over %d points, %w", len(x), ErrSingularFit)
	}

	alpha, beta := stat.LinearRegression(x, y, weights, !w.opt.FitIntercept)
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return fmt.Errorf("non-finite coefficients a=%f b=%f, %w", alpha, beta, ErrSingularFit)
	}

	w.intercept = alpha
	w.slope = beta
	w.trained = true
	return nil
}

// Predict evaluates a + b*x for every input point.
func (w *WLSRegression) Predict(x []float64) ([]float64, error) {
	if w.opt == nil {
		return nil, ErrNoOptions
	}
	if !w.trained {
		return nil, ErrUntrainedModel
	}
	res := make([]float64, 0, len(x))
	for _, xi := range x {
		res = append(res, w.intercept+w.slope*xi)
	}
	return res, nil
}

// Score returns the weighted coefficient of determination of the fit.
func (w *WLSRegression) Score(x, y, weights []float64) (float64, error) {
	if w.opt == nil {
		return 0.0, ErrNoOptions
	}
	if !w.trained {
		return 0.0, ErrUntrainedModel
	}
	if len(x) != len(y) {
		return 0.0, fmt.Errorf("data has %d points and target has %d, %w", len(x), len(y), ErrTargetLenMismatch)
	}
	if weights != nil && len(weights) != len(x) {
		return 0.0, fmt.Errorf("data has %d points and weights has %d, %w", len(x), len(weights), ErrWeightLenMismatch)
	}
	return stat.RSquared(x, y, weights, w.intercept, w.slope), nil
}

func (w *WLSRegression) Intercept() float64 {
	return w.intercept
}

func (w *WLSRegression) Slope() float64 {
	return w.slope
}
