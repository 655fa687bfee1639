package loess

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotOpts selects which center's window weights to chart alongside the
// smoothed lines. A zero WeightSpan picks the first fitted span and a zero
// WeightCenter picks the middle center; spans live in (0, 1] and centers
// are drawn from the series, so zero is outside both domains. A non-zero
// WeightSpan must be one of the fitted spans.
type PlotOpts struct {
	WeightSpan   float64
	WeightCenter float64
}

// LineSmoother generates an echart line chart of the observed series with
// one smoothed line per span. NaN prediction holes render as gaps.
func LineSmoother(res *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Local Regression Smooth",
			},
		),
	)

	lineDataObserved := make([]opts.LineData, 0, len(res.X))
	for i := 0; i < len(res.X); i++ {
		lineDataObserved = append(lineDataObserved, opts.LineData{Value: res.Y[i]})
	}

	line = line.SetXAxis(res.X).
		AddSeries("Observed", lineDataObserved)

	for _, sp := range res.Spans {
		lineData := make([]opts.LineData, 0, len(sp.Smoothed))
		for i := 0; i < len(sp.Smoothed); i++ {
			if math.IsNaN(sp.Smoothed[i]) {
				lineData = append(lineData, opts.LineData{Value: nil})
				continue
			}
			lineData = append(lineData, opts.LineData{Value: sp.Smoothed[i]})
		}
		line = line.AddSeries(fmt.Sprintf("Span %.2f", sp.Span), lineData)
	}

	return line
}

// LineLocalWeights generates an echart line chart of the tricube weight
// profile of one center's window, the view a window animation renders
// frame by frame. The span result must have been fit with KeepWindows.
func LineLocalWeights(sp *SpanResult, center float64) (*charts.Line, error) {
	if len(sp.Windows) == 0 {
		return nil, ErrNoWindowRows
	}

	x := make([]float64, 0, sp.K)
	lineData := make([]opts.LineData, 0, sp.K)
	for _, row := range sp.Windows {
		if row.Center != center {
			continue
		}
		x = append(x, row.X)
		lineData = append(lineData, opts.LineData{Value: row.Weight})
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("no window rows for center %f, %w", center, ErrNoWindowRows)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: fmt.Sprintf("Window Weights at %.1f (span %.2f)", center, sp.Span),
			},
		),
	)
	line = line.SetXAxis(x).
		AddSeries("Tricube Weight", lineData)
	return line, nil
}

// PlotFit uses the Apache Echarts library to generate an html page showing
// the smoothed series per span and, when window rows were retained, the
// weight profile of one center's window.
func (s *Smoother) PlotFit(w io.Writer, opt *PlotOpts) error {
	res, err := s.Results()
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(LineSmoother(res))

	if s.opt.KeepWindows && len(res.Spans) > 0 {
		spanIdx := 0
		center := res.X[len(res.X)/2]
		if opt != nil {
			if opt.WeightSpan != 0 {
				spanIdx = -1
				for i := range res.Spans {
					if res.Spans[i].Span == opt.WeightSpan {
						spanIdx = i
						break
					}
				}
				if spanIdx < 0 {
					return fmt.Errorf("got weight span of %f, %w", opt.WeightSpan, ErrUnknownSpan)
				}
			}
			if opt.WeightCenter != 0 {
				center = opt.WeightCenter
			}
		}
		weightChart, err := LineLocalWeights(&res.Spans[spanIdx], center)
		if err != nil {
			return fmt.Errorf("unable to chart window weights, %w", err)
		}
		page.AddCharts(weightChart)
	}

	return page.Render(w)
}
