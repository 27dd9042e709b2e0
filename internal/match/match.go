package match

import (
	"errors"
	"fmt"

	"ltrgraph/internal/element"
)

// DefaultThreshold is the reciprocal coverage used by the validation run.
const DefaultThreshold = 0.01

var (
	ErrUnsorted    = errors.New("match: input not sorted by start")
	ErrMixedStrand = errors.New("match: candidates span both strands")
)

// Reciprocal reports whether the overlap of a and b covers at least
// threshold of each interval's own length. A non-positive overlap never
// qualifies, whatever the threshold.
func Reciprocal(a, b element.Interval, threshold float64) bool {
	ov := min(a.End, b.End) - max(a.Start, b.Start)
	if ov <= 0 {
		return false
	}
	return float64(ov)/float64(b.Len()) >= threshold &&
		float64(ov)/float64(a.Len()) >= threshold
}

// Validate checks the sweep preconditions: both inputs ascending by start
// and the candidates on a single strand.
func Validate(candidates []element.Node, targets []element.LTR) error {
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Strand != candidates[0].Strand {
			return fmt.Errorf("%w: %s and %s", ErrMixedStrand, candidates[0], candidates[i])
		}
		if candidates[i].Start < candidates[i-1].Start {
			return fmt.Errorf("%w: candidate %s after %s", ErrUnsorted, candidates[i], candidates[i-1])
		}
	}
	for j := 1; j < len(targets); j++ {
		if targets[j].Start < targets[j-1].Start {
			return fmt.Errorf("%w: target %s after %s", ErrUnsorted, targets[j].Interval, targets[j-1].Interval)
		}
	}
	return nil
}

// Match sweeps candidates and targets once and maps every target to the
// last candidate that reciprocally overlaps it. Unmatched targets are absent.
func Match(candidates []element.Node, targets []element.LTR, threshold float64) map[element.LTR]element.Node {
	return Sweep(candidates, targets, threshold, nil)
}

// Sweep is Match with a hook called for every (candidate, target) index
// pair tested, in order.
func Sweep(candidates []element.Node, targets []element.LTR, threshold float64, visit func(i, j int)) map[element.LTR]element.Node {
	r := make(map[element.LTR]element.Node)
	i, j := 0, 0
	for i < len(candidates) && j < len(targets) {
		c, t := candidates[i], targets[j]
		if visit != nil {
			visit(i, j)
		}
		if Reciprocal(c.Interval(), t.Interval, threshold) {
			r[t] = c
		}
		switch {
		case c.End < t.End:
			i++
		case c.End > t.End:
			j++
		default:
			i++
			j++
		}
	}
	return r
}
