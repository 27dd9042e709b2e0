package classify

import (
	"testing"

	"ltrgraph/internal/element"
	"ltrgraph/internal/graph"
	"ltrgraph/internal/match"
)

func rt(row, ls, le, rs, re int) element.RT {
	return element.NewRT(row, element.Interval{Start: ls, End: le}, element.Interval{Start: rs, End: re})
}

func TestPairClassifiesAndSkips(t *testing.T) {
	a := element.MustNode("100:200+")
	b := element.MustNode("900:1000-")
	c := element.MustNode("2000:2100+")
	d := element.MustNode("2900:3000-")
	e := element.MustNode("5000:5100+")
	g := graph.Graph{
		a: {b: 0.8},
		b: {a: 0.6},
		c: {d: 0.5},
		d: {},
		e: {},
	}
	rts := []element.RT{
		rt(0, 100, 200, 900, 1000),     // two-way
		rt(1, 2000, 2100, 2900, 3000), // left-only
		rt(2, 5000, 5100, 7000, 7100), // right LTR unmatched: skipped
	}
	res, err := Pair(rts, g, Options{Threshold: match.DefaultThreshold})
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if res.RTs != 3 || res.Skipped != 1 || len(res.Records) != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
	if r := res.Records[0]; r.Kind != Bidirectional || r.LR != 0.8 || r.RL != 0.6 || r.RT.Left.Row != 0 {
		t.Fatalf("record 0: %+v", r)
	}
	if r := res.Records[1]; r.Kind != LeftOnly || r.LR != 0.5 || r.Right != d {
		t.Fatalf("record 1: %+v", r)
	}
	if res.Count(Bidirectional) != 1 || res.Count(LeftOnly) != 1 || res.Count(Unconnected) != 0 {
		t.Fatalf("counts wrong")
	}
}

func TestPairCensus(t *testing.T) {
	a1 := element.MustNode("100:195+")
	a2 := element.MustNode("110:200+")
	b := element.MustNode("900:1000-")
	g := graph.Graph{a1: {}, a2: {b: 1}, b: {a2: 1}}
	res, err := Pair([]element.RT{rt(0, 100, 200, 900, 1000)}, g, Options{Threshold: match.DefaultThreshold, Census: true})
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if res.Ambiguous != 1 {
		t.Fatalf("want 1 ambiguous LTR, got %d", res.Ambiguous)
	}
	if len(res.Records) != 1 || res.Records[0].Left != a2 || res.Records[0].Kind != Bidirectional {
		t.Fatalf("sweep should keep the last candidate: %+v", res.Records)
	}
}

func TestMerge(t *testing.T) {
	r1 := Result{Records: []Record{{Kind: Bidirectional}}, RTs: 4, Skipped: 1}
	r2 := Result{Records: []Record{{Kind: Unconnected}, {Kind: LeftOnly}}, RTs: 2, Ambiguous: 3}
	m := Merge(r1, r2)
	if len(m.Records) != 3 || m.RTs != 6 || m.Skipped != 1 || m.Ambiguous != 3 {
		t.Fatalf("merge: %+v", m)
	}
	if m.Records[0].Kind != Bidirectional || m.Records[2].Kind != LeftOnly {
		t.Fatalf("merge must keep order")
	}
}

func TestPairZeroThresholdTakesAnyOverlap(t *testing.T) {
	// 5bp of a 1000bp LTR: 0.005 of its length.
	l := element.MustNode("1095:1200+")
	r := element.MustNode("3000:3100-")
	g := graph.Graph{l: {r: 2}, r: {l: 3}}
	rts := []element.RT{rt(0, 100, 1100, 3000, 3100)}

	res, err := Pair(rts, g, Options{Threshold: match.DefaultThreshold})
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if res.Skipped != 1 || len(res.Records) != 0 {
		t.Fatalf("default threshold should reject the sliver: %+v", res)
	}

	res, err = Pair(rts, g, Options{Threshold: 0})
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if res.Skipped != 0 || len(res.Records) != 1 || res.Records[0].Kind != Bidirectional {
		t.Fatalf("threshold 0 should match any positive overlap: %+v", res)
	}
}
