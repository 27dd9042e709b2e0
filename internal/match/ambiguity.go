package match

import (
	"github.com/biogo/store/interval"

	"ltrgraph/internal/element"
)

type candidate struct {
	element.Node
	uid uintptr
}

func (c candidate) Overlap(b interval.IntRange) bool { return c.End > b.Start && c.Start < b.End }
func (c candidate) ID() uintptr                      { return c.uid }
func (c candidate) Range() interval.IntRange {
	return interval.IntRange{Start: c.Start, End: c.End}
}

type query element.Interval

func (q query) Overlap(b interval.IntRange) bool { return q.End > b.Start && q.Start < b.End }

// Ambiguity counts, for each target, how many candidates pass the
// reciprocal test. Unlike Match it considers every overlapping candidate,
// so a count above one marks a target with more than one qualifying candidate.
func Ambiguity(candidates []element.Node, targets []element.LTR, threshold float64) ([]int, error) {
	var tree interval.IntTree
	for i, c := range candidates {
		if err := tree.Insert(candidate{Node: c, uid: uintptr(i)}, true); err != nil {
			return nil, err
		}
	}
	tree.AdjustRanges()

	counts := make([]int, len(targets))
	for j, t := range targets {
		for _, hit := range tree.Get(query(t.Interval)) {
			if Reciprocal(hit.(candidate).Interval(), t.Interval, threshold) {
				counts[j]++
			}
		}
	}
	return counts, nil
}

// Collisions is the number of targets with more than one qualifying candidate.
func Collisions(counts []int) int {
	n := 0
	for _, c := range counts {
		if c > 1 {
			n++
		}
	}
	return n
}
