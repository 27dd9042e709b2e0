package stats

import (
	"errors"
	"fmt"
)

// ErrEmptyStatistics is returned when a summary is requested over too few values.
var ErrEmptyStatistics = errors.New("stats: empty series")

// SeriesError names the series that was too short.
type SeriesError struct {
	Series string
	N      int
}

func (e *SeriesError) Error() string {
	if e.N == 0 {
		return fmt.Sprintf("stats: series %q is empty", e.Series)
	}
	return fmt.Sprintf("stats: series %q has %d value, standard deviation needs 2", e.Series, e.N)
}

func (e *SeriesError) Is(target error) bool { return target == ErrEmptyStatistics }

// CalibrationIndexError reports a percentile index outside the pooled sample.
type CalibrationIndexError struct {
	N     int
	P     float64
	Index int
}

func (e *CalibrationIndexError) Error() string {
	return fmt.Sprintf("stats: percentile %.2f of %d values gives index %d; need at least %d values",
		e.P, e.N, e.Index, MinSample(e.P))
}
