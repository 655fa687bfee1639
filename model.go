package loess

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
)

var (
	ErrNoOptionsInModel = errors.New("no options set in model")
	ErrNoResultsInModel = errors.New("no results set in model")
)

// Model represents a serializeable format of a smoother storing the
// options along with the full fit results, so a smooth can be rendered or
// queried later without refitting.
type Model struct {
	Options *Options `json:"options"`
	Results *Results `json:"results"`
}

// Model returns a serializeable representation of the last fit.
func (s *Smoother) Model() (Model, error) {
	if s.fitResults == nil {
		return Model{}, ErrUntrainedSmoother
	}
	return Model{
		Options: s.opt,
		Results: s.fitResults,
	}, nil
}

// TablePrint writes a per-span summary of the fit.
func (m Model) TablePrint(w io.Writer) error {
	if m.Results == nil {
		return ErrNoResultsInModel
	}
	if _, err := fmt.Fprintf(w, "Samples: %d\n", len(m.Results.X)); err != nil {
		return err
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "Span\tWindow\tMSE\tMAPE\tR2\tHoles\t\n"); err != nil {
		return err
	}
	for _, sp := range m.Results.Spans {
		var mse, mape, r2 float64
		if sp.Scores != nil {
			mse = sp.Scores.MSE
			mape = sp.Scores.MAPE
			r2 = sp.Scores.R2
		}
		if _, err := fmt.Fprintf(tbl, "%.3f\t%d\t%.5f\t%.5f\t%.5f\t%d\t\n",
			sp.Span, sp.K, mse, mape, r2, len(sp.Diagnostics)); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
