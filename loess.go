// Package loess smooths an ordered univariate series by locally weighted
// linear regression. For every requested span a window of the nearest
// floor(span*n) samples is selected around each sample's x value, weighted
// with the tricube kernel, and fit by weighted least squares; the smoothed
// value at that center is the fit evaluated at the center itself.
package loess

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/aouyang1/go-loess/models"
	"github.com/aouyang1/go-loess/series"
	"github.com/aouyang1/go-loess/stats"
	"github.com/aouyang1/go-loess/window"
	"github.com/stockparfait/iterator"
)

var (
	ErrNoSpans           = errors.New("no spans to smooth with")
	ErrInvalidSpan       = errors.New("span must be in (0, 1]")
	ErrWindowTooNarrow   = errors.New("span yields a window of fewer than 2 samples")
	ErrUntrainedSmoother = errors.New("smoother has not been fit yet")
	ErrUnknownSpan       = errors.New("span was not part of the fit")
	ErrNoWindowRows      = errors.New("window rows were not retained, enable KeepWindows")
)

// Smoother fits a locally weighted regression per (span, center) pair and
// retains the assembled predictions. Every pair is independent so the fits
// fan out across a worker pool and results are placed back by index.
type Smoother struct {
	opt *Options

	trainingData *series.Series
	fitResults   *Results
}

// New creates a new instance of a Smoother using the provided options. If
// no options are provided a default is used. Span values are validated
// here; the window size they produce depends on the series length and is
// validated during Fit.
func New(opt *Options) (*Smoother, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if len(opt.Spans) == 0 {
		return nil, ErrNoSpans
	}
	for _, span := range opt.Spans {
		if span <= 0.0 || span > 1.0 {
			return nil, fmt.Errorf("got span of %f, %w", span, ErrInvalidSpan)
		}
	}
	return &Smoother{
		opt: opt,
	}, nil
}

// NewFromModel creates a new instance of a Smoother from a pre-existing
// model. This should be generated from a previous smoother call to Model().
func NewFromModel(model Model) (*Smoother, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	if model.Results == nil {
		return nil, ErrNoResultsInModel
	}
	sr, err := series.New(model.Results.X, model.Results.Y)
	if err != nil {
		return nil, fmt.Errorf("unable to restore training series from model, %w", err)
	}
	return &Smoother{
		opt:          model.Options,
		trainingData: sr,
		fitResults:   model.Results,
	}, nil
}

type fitUnit struct {
	spanIdx   int
	centerIdx int
}

type fitUnitResult struct {
	spanIdx   int
	centerIdx int

	fit  LocalFit
	yhat float64
	rows []WindowRow
	err  error
}

// Fit smooths the input series under every configured span. The series
// must have strictly increasing x values; spans whose window would have
// fewer than 2 samples fail the whole call before any fitting starts. A
// singular local fit leaves a NaN hole at its center with a Diagnostic
// rather than failing the batch.
func (s *Smoother) Fit(x, y []float64) error {
	sr, err := series.New(x, y)
	if err != nil {
		return fmt.Errorf("unable to create training series, %w", err)
	}
	n := sr.Len()

	// validate the whole span set up front so a bad span cannot fail the
	// batch halfway through
	ks := make([]int, len(s.opt.Spans))
	for i, span := range s.opt.Spans {
		k := int(math.Floor(span * float64(n)))
		if k < 2 {
			return fmt.Errorf("span of %f over %d samples yields a window of %d, %w", span, n, k, ErrWindowTooNarrow)
		}
		ks[i] = k
	}

	res := &Results{
		X:     sr.X,
		Y:     sr.Y,
		Spans: make([]SpanResult, len(s.opt.Spans)),
	}
	for i, span := range s.opt.Spans {
		res.Spans[i] = SpanResult{
			Span:     span,
			K:        ks[i],
			Smoothed: make([]float64, n),
			Fits:     make([]LocalFit, n),
		}
	}

	units := make([]fitUnit, 0, len(s.opt.Spans)*n)
	for si := range s.opt.Spans {
		for ci := 0; ci < n; ci++ {
			units = append(units, fitUnit{spanIdx: si, centerIdx: ci})
		}
	}

	workers := s.opt.Parallelism
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	f := func(u fitUnit) fitUnitResult {
		return fitOne(sr, ks[u.spanIdx], u, s.opt.KeepWindows)
	}
	pm := iterator.ParallelMap(context.Background(), workers, iterator.FromSlice(units), f)
	defer pm.Close()

	rowsBySpan := make([][][]WindowRow, len(s.opt.Spans))
	errsBySpan := make([][]error, len(s.opt.Spans))
	for si := range s.opt.Spans {
		rowsBySpan[si] = make([][]WindowRow, n)
		errsBySpan[si] = make([]error, n)
	}

	var fatal error
	iterator.Reduce[fitUnitResult, int](pm, 0, func(r fitUnitResult, acc int) int {
		sp := &res.Spans[r.spanIdx]
		if r.err != nil {
			if errors.Is(r.err, window.ErrDegenerateWindow) || errors.Is(r.err, window.ErrWindowTooSmall) {
				// cannot happen for a validated series and span set;
				// treat as a hard failure instead of a prediction hole
				fatal = r.err
				return acc
			}
			errsBySpan[r.spanIdx][r.centerIdx] = r.err
			sp.Smoothed[r.centerIdx] = math.NaN()
			sp.Fits[r.centerIdx] = LocalFit{Center: sr.X[r.centerIdx], Intercept: math.NaN(), Slope: math.NaN()}
			return acc
		}
		sp.Smoothed[r.centerIdx] = r.yhat
		sp.Fits[r.centerIdx] = r.fit
		rowsBySpan[r.spanIdx][r.centerIdx] = r.rows
		return acc
	})
	if fatal != nil {
		return fatal
	}

	for si := range res.Spans {
		sp := &res.Spans[si]
		if s.opt.KeepWindows {
			sp.Windows = make([]WindowRow, 0, ks[si]*n)
			for ci := 0; ci < n; ci++ {
				sp.Windows = append(sp.Windows, rowsBySpan[si][ci]...)
			}
		}
		for ci := 0; ci < n; ci++ {
			if err := errsBySpan[si][ci]; err != nil {
				sp.Diagnostics = append(sp.Diagnostics, Diagnostic{Center: sr.X[ci], Reason: err.Error()})
			}
		}
		scores, err := NewScores(sp.Smoothed, sr.Y)
		if err != nil {
			return fmt.Errorf("unable to score span %f, %w", sp.Span, err)
		}
		sp.Scores = scores
	}

	s.trainingData = sr
	s.fitResults = res
	return nil
}

// fitOne runs a single independent (span, center) unit: select the window,
// weigh it, fit, and evaluate the fit at the center.
func fitOne(sr *series.Series, k int, u fitUnit, keepWindows bool) fitUnitResult {
	res := fitUnitResult{
		spanIdx:   u.spanIdx,
		centerIdx: u.centerIdx,
	}
	center := sr.X[u.centerIdx]

	w, err := window.Select(sr, center, k)
	if err != nil {
		res.err = err
		return res
	}
	if err := w.Weigh(); err != nil {
		res.err = err
		return res
	}

	weights := w.Weights
	cnt, err := w.PositiveWeights()
	if err != nil {
		res.err = err
		return res
	}
	if cnt < 2 {
		// the tricube kernel zeroed all but one member, leaving an
		// underdetermined weighted system. Refit unweighted over the
		// window, which for k=2 is the exact interpolating line.
		weights = nil
	}

	m, err := models.NewWLSRegression(nil)
	if err != nil {
		res.err = err
		return res
	}
	if err := m.Fit(w.X, w.Y, weights); err != nil {
		res.err = err
		return res
	}

	yhat, err := m.Predict([]float64{center})
	if err != nil {
		res.err = err
		return res
	}
	res.yhat = yhat[0]
	res.fit = LocalFit{
		Center:    center,
		Intercept: m.Intercept(),
		Slope:     m.Slope(),
	}

	if keepWindows {
		res.rows = make([]WindowRow, 0, len(w.X))
		for i := range w.X {
			res.rows = append(res.rows, WindowRow{
				Center:   center,
				X:        w.X[i],
				Y:        w.Y[i],
				Distance: w.Distances[i],
				Weight:   w.Weights[i],
			})
		}
	}
	return res
}

// TrainingData returns the series used in the last Fit call.
func (s *Smoother) TrainingData() *series.Series {
	return s.trainingData
}

// Results returns the assembled predictions of the last Fit call.
func (s *Smoother) Results() (*Results, error) {
	if s.fitResults == nil {
		return nil, ErrUntrainedSmoother
	}
	return s.fitResults, nil
}

func (s *Smoother) spanResult(span float64) (*SpanResult, error) {
	if s.fitResults == nil {
		return nil, ErrUntrainedSmoother
	}
	for i := range s.fitResults.Spans {
		if s.fitResults.Spans[i].Span == span {
			return &s.fitResults.Spans[i], nil
		}
	}
	return nil, fmt.Errorf("got span of %f, %w", span, ErrUnknownSpan)
}

// Smoothed returns the smoothed series for one of the fitted spans. The
// result carries NaN wherever the local fit produced no prediction.
func (s *Smoother) Smoothed(span float64) ([]float64, error) {
	sp, err := s.spanResult(span)
	if err != nil {
		return nil, err
	}
	smoothed := make([]float64, len(sp.Smoothed))
	copy(smoothed, sp.Smoothed)
	return smoothed, nil
}

// Residuals returns the difference between the observations and a span's
// smoothed series.
func (s *Smoother) Residuals(span float64) ([]float64, error) {
	sp, err := s.spanResult(span)
	if err != nil {
		return nil, err
	}
	residual := make([]float64, len(sp.Smoothed))
	for i := range sp.Smoothed {
		residual[i] = s.fitResults.Y[i] - sp.Smoothed[i]
	}
	return residual, nil
}

// AnomalousResiduals flags the sample indices whose residual after
// smoothing falls outside the Tukey fences. This is a diagnostic for the
// caller; the smoother never reweights or refits based on it.
func (s *Smoother) AnomalousResiduals(span float64, opt *stats.AnomalyOptions) ([]int, error) {
	residual, err := s.Residuals(span)
	if err != nil {
		return nil, err
	}
	idxs, err := stats.Anomalies(residual, opt)
	if err != nil {
		return nil, fmt.Errorf("unable to detect residual anomalies, %w", err)
	}
	return idxs, nil
}

// SmoothedAt evaluates a span's smooth at an arbitrary x by applying the
// local fit of the nearest center. For x values of the training series
// this matches the stored smoothed value.
func (s *Smoother) SmoothedAt(span, x float64) (float64, error) {
	sp, err := s.spanResult(span)
	if err != nil {
		return 0, err
	}
	xs := s.fitResults.X
	i := sort.SearchFloat64s(xs, x)
	if i == len(xs) {
		i = len(xs) - 1
	} else if i > 0 && x-xs[i-1] <= xs[i]-x {
		i--
	}
	fit := sp.Fits[i]
	return fit.Intercept + fit.Slope*x, nil
}
