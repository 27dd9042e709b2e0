package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ConStat summarises one series of connection values.
type ConStat struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64 // sample (n-1) standard deviation
}

// NewConStat summarises xs, which is not modified. It needs at least two
// values; name labels the series in the error.
func NewConStat(name string, xs []float64) (ConStat, error) {
	if len(xs) < 2 {
		return ConStat{}, &SeriesError{Series: name, N: len(xs)}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return ConStat{
		N:      len(xs),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Mean:   stat.Mean(xs, nil),
		Median: median(sorted),
		StdDev: stat.StdDev(xs, nil),
	}, nil
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
