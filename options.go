package loess

type Options struct {
	// Spans holds the window fractions to smooth with. Every span must be
	// in (0, 1] and must yield a window of at least 2 samples for the
	// series being fit.
	Spans []float64 `json:"spans"`

	// Parallelism bounds the number of workers fanning out the local
	// fits. Values below 1 use GOMAXPROCS.
	Parallelism int `json:"parallelism"`

	// KeepWindows retains the per-center member rows (x, y, distance,
	// weight) so a visualization layer can reconstruct what each local
	// fit used and how much it counted.
	KeepWindows bool `json:"keep_windows"`
}

func NewDefaultOptions() *Options {
	return &Options{
		Spans: []float64{0.25, 0.5, 0.75},
	}
}
