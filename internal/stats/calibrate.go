package stats

import (
	"fmt"
	"math"
	"sort"

	"ltrgraph/internal/classify"
)

// Percentiles used for the detector configuration.
const (
	RedPercentile        = 0.02
	ConnectionPercentile = 0.05
)

// Underflow selects what Percentile does when floor(n*p)-1 is negative.
type Underflow int

const (
	Fail  Underflow = iota // return *CalibrationIndexError
	Clamp                  // use index 0
)

// MinSample is the smallest pool size whose percentile index is >= 0.
func MinSample(p float64) int { return int(math.Ceil(1 / p)) }

// PercentileIndex is floor(n*p) - 1, possibly negative.
func PercentileIndex(n int, p float64) int { return int(math.Floor(float64(n)*p)) - 1 }

// Percentile sorts a copy of values and returns the element at
// floor(n*p)-1. An empty pool always fails.
func Percentile(values []float64, p float64, u Underflow) (float64, error) {
	if p <= 0 || p > 1 {
		return 0, fmt.Errorf("stats: percentile %v outside (0, 1]", p)
	}
	idx := PercentileIndex(len(values), p)
	if idx < 0 {
		if u != Clamp || len(values) == 0 {
			return 0, &CalibrationIndexError{N: len(values), P: p, Index: idx}
		}
		idx = 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return sorted[idx], nil
}

// NonZeroRatio is the share of non-zero scores in one interior vector.
// It is 0 for an empty vector.
func NonZeroRatio(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	nz := 0
	for _, s := range scores {
		if s != 0 {
			nz++
		}
	}
	return float64(nz) / float64(len(scores))
}

// RedThreshold is the low-end percentile of the per-vector non-zero ratios.
func RedThreshold(vectors [][]int, u Underflow) (float64, error) {
	ratios := make([]float64, len(vectors))
	for i, v := range vectors {
		ratios[i] = NonZeroRatio(v)
	}
	return Percentile(ratios, RedPercentile, u)
}

// ConnectionWeights pools both weights of every Bidirectional record.
func ConnectionWeights(recs []classify.Record) []float64 {
	var w []float64
	for _, r := range recs {
		if r.Kind == classify.Bidirectional {
			w = append(w, r.LR, r.RL)
		}
	}
	return w
}

// ConnectionThreshold is the low-end percentile of the pooled two-way weights.
func ConnectionThreshold(recs []classify.Record, u Underflow) (float64, error) {
	return Percentile(ConnectionWeights(recs), ConnectionPercentile, u)
}
