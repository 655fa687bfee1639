package loess

import (
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

var benchSmoothedRes []float64

func BenchmarkFitToModel(b *testing.B) {
	x, y := generateExampleRecord()
	opt := &Options{
		Spans: []float64{0.1, 0.25, 0.5},
	}

	var s *Smoother
	var err error

	b.ResetTimer()
	for b.Loop() {
		s, err = New(opt)
		if err != nil {
			panic(err)
		}

		if err := s.Fit(x, y); err != nil {
			panic(err)
		}
	}

	m, err := s.Model()
	if err != nil {
		panic(err)
	}

	bytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile("benchmark_model.json", bytes, 0o644); err != nil {
		panic(err)
	}
}

func BenchmarkSmoothedFromModel(b *testing.B) {
	bytes, err := os.ReadFile("benchmark_model.json")
	if err != nil {
		panic(err)
	}

	var model Model
	if err := json.Unmarshal(bytes, &model); err != nil {
		panic(err)
	}
	s, err := NewFromModel(model)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchSmoothedRes, err = s.Smoothed(0.25)
		if err != nil {
			panic(err)
		}
	}
}
