package classify

import (
	"fmt"

	"ltrgraph/internal/element"
	"ltrgraph/internal/graph"
	"ltrgraph/internal/match"
)

// Options tune per-pair processing.
type Options struct {
	Threshold float64 // reciprocal overlap, used as given; 0 accepts any positive overlap
	Census    bool    // count targets with competing candidates
}

// Result is what one genome/chromosome file pair contributes to a run.
type Result struct {
	Records   []Record
	RTs       int // RTs read from the annotation file
	Skipped   int // RTs with an unmatched LTR
	Ambiguous int // matched LTRs that had more than one qualifying node
}

// Count returns the number of records of kind k.
func (r Result) Count(k Kind) int {
	n := 0
	for _, rec := range r.Records {
		if rec.Kind == k {
			n++
		}
	}
	return n
}

// Merge concatenates results in argument order.
func Merge(rs ...Result) Result {
	var out Result
	n := 0
	for _, r := range rs {
		n += len(r.Records)
	}
	out.Records = make([]Record, 0, n)
	for _, r := range rs {
		out.Records = append(out.Records, r.Records...)
		out.RTs += r.RTs
		out.Skipped += r.Skipped
		out.Ambiguous += r.Ambiguous
	}
	return out
}

// Pair matches the forward nodes to the RTs' left LTRs and the backward
// nodes to their right LTRs, then classifies every RT whose two LTRs both
// found a node. The rest are counted as skipped, not as Unconnected.
func Pair(rts []element.RT, g graph.Graph, o Options) (Result, error) {
	th := o.Threshold
	targets := element.Pool(rts)
	fw := g.Nodes(element.Forward)
	bw := g.Nodes(element.Backward)
	if err := match.Validate(fw, targets); err != nil {
		return Result{}, err
	}
	if err := match.Validate(bw, targets); err != nil {
		return Result{}, err
	}
	left := match.Match(fw, targets, th)
	right := match.Match(bw, targets, th)

	res := Result{RTs: len(rts)}
	for _, rt := range rts {
		l, okL := left[rt.Left]
		r, okR := right[rt.Right]
		if !okL || !okR {
			res.Skipped++
			continue
		}
		rec := Classify(g, l, r)
		rec.RT = rt
		res.Records = append(res.Records, rec)
	}

	if o.Census {
		n, err := census(fw, bw, targets, left, right, th)
		if err != nil {
			return Result{}, fmt.Errorf("ambiguity census: %w", err)
		}
		res.Ambiguous = n
	}
	return res, nil
}

func census(fw, bw []element.Node, targets []element.LTR, left, right map[element.LTR]element.Node, th float64) (int, error) {
	fc, err := match.Ambiguity(fw, targets, th)
	if err != nil {
		return 0, err
	}
	bc, err := match.Ambiguity(bw, targets, th)
	if err != nil {
		return 0, err
	}
	n := 0
	for j, t := range targets {
		var c int
		var ok bool
		if t.Side == element.Left {
			_, ok = left[t]
			c = fc[j]
		} else {
			_, ok = right[t]
			c = bc[j]
		}
		if ok && c > 1 {
			n++
		}
	}
	return n, nil
}
