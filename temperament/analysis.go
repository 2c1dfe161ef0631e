package temperament

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Tuning comparison helpers using gonum for the statistics

// Cents returns the size of the interval between two frequencies in
// cents (1/100 of an equal-tempered semitone).
func Cents(f1, f2 float64) float64 {
	if f1 <= 0 || f2 <= 0 {
		return 0
	}
	return 1200 * math.Log2(f2/f1)
}

// DeviationFromEqual returns the per-note deviation, in cents, of the
// first octave of the lattice against the equal division of the same
// cardinality. Equal temperaments deviate by (at most rounding) zero.
func (t *Temperament) DeviationFromEqual() []float64 {
	n := t.octaveLength
	deviations := make([]float64, 0, n)
	if n == 0 || len(t.freqs) == 0 {
		return deviations
	}
	step := 1200.0 / float64(n)
	base := t.freqs[0]
	for i := 0; i < n && i < len(t.freqs); i++ {
		deviations = append(deviations, Cents(base, t.freqs[i])-step*float64(i))
	}
	return deviations
}

// DeviationSummary describes how far a lattice sits from the equal
// division of its octave.
type DeviationSummary struct {
	Mean float64 `json:"mean"` // Mean absolute deviation in cents
	Max  float64 `json:"max"`  // Largest absolute deviation in cents
	RMS  float64 `json:"rms"`  // Root mean square deviation in cents
}

// SummarizeDeviation computes deviation statistics for the lattice
// against the equal division of its octave.
func (t *Temperament) SummarizeDeviation() DeviationSummary {
	deviations := t.DeviationFromEqual()
	if len(deviations) == 0 {
		return DeviationSummary{}
	}

	abs := make([]float64, len(deviations))
	for i, d := range deviations {
		abs[i] = math.Abs(d)
	}

	sumSquares := floats.Dot(deviations, deviations)
	return DeviationSummary{
		Mean: stat.Mean(abs, nil),
		Max:  floats.Max(abs),
		RMS:  math.Sqrt(sumSquares / float64(len(deviations))),
	}
}
