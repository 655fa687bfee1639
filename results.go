package loess

// Results stores the full output of a smooth: the training samples plus one
// SpanResult per requested span.
type Results struct {
	X     []float64    `json:"x"`
	Y     []float64    `json:"y"`
	Spans []SpanResult `json:"spans"`
}

// SpanResult holds the smoothed values for one span along with the local
// fit coefficients per center. Smoothed carries NaN wherever a local fit
// failed; the failure reason is recorded in Diagnostics.
type SpanResult struct {
	Span     float64   `json:"span"`
	K        int       `json:"k"`
	Smoothed []float64 `json:"smoothed"`

	Fits        []LocalFit   `json:"fits"`
	Windows     []WindowRow  `json:"windows,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`

	Scores *Scores `json:"scores,omitempty"`
}

// LocalFit is the weighted linear fit evaluated at one center.
type LocalFit struct {
	Center    float64 `json:"center"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// WindowRow describes one window member of one center's fit. These rows
// are the boundary to the visualization layer which renders contributing
// points and their weights per center.
type WindowRow struct {
	Center   float64 `json:"center"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Distance float64 `json:"distance"`
	Weight   float64 `json:"weight"`
}

// Diagnostic records a center whose local fit produced no prediction.
type Diagnostic struct {
	Center float64 `json:"center"`
	Reason string  `json:"reason"`
}
