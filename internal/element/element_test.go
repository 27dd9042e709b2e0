package element

import (
	"errors"
	"testing"
)

func TestParseNodeToken(t *testing.T) {
	n, err := ParseNode("1200:1450", Forward)
	if err != nil {
		t.Fatalf("ParseNode: %v", err)
	}
	if n.Start != 1200 || n.End != 1450 || n.Strand != Forward {
		t.Fatalf("unexpected node %+v", n)
	}
	if got := n.Token(); got != "1200:1450+" {
		t.Fatalf("token: got %q", got)
	}
	if MustNode("1200:1450+") != n {
		t.Fatalf("MustNode should equal parsed node")
	}
}

func TestNodeEqualityIsByToken(t *testing.T) {
	m := map[Node]int{}
	m[MustNode("5:9+")] = 1
	m[MustNode("5:9-")] = 2
	m[MustNode("5:9+")] = 3
	if len(m) != 2 || m[MustNode("5:9+")] != 3 {
		t.Fatalf("map keyed by node token broken: %v", m)
	}
}

func TestParseNodeErrors(t *testing.T) {
	for _, pos := range []string{"12", "a:4", "4:b", "9:9", "10:3"} {
		if _, err := ParseNode(pos, Backward); !errors.Is(err, ErrParse) {
			t.Fatalf("%q: want ErrParse, got %v", pos, err)
		}
	}
	if _, err := ParseStrand("*"); !errors.Is(err, ErrInvalidStrand) {
		t.Fatalf("want ErrInvalidStrand, got %v", err)
	}
}

func TestStrandOpposite(t *testing.T) {
	if Forward.Opposite() != Backward || Backward.Opposite() != Forward {
		t.Fatalf("opposite strand broken")
	}
}

func TestParseErrorLocation(t *testing.T) {
	err := At("g.txt", 7, ErrInvalidWeight)
	if err.Error() != "g.txt:7: invalid weight" {
		t.Fatalf("message: %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("sentinel lost")
	}
	if At("x", 1, nil) != nil {
		t.Fatalf("At(nil) should be nil")
	}
}

func TestNewRTSides(t *testing.T) {
	rt := NewRT(4, Interval{1, 5}, Interval{20, 30})
	if rt.Left.Side != Left || rt.Right.Side != Right || rt.Left.Row != 4 || rt.Right.Len() != 10 {
		t.Fatalf("unexpected RT %+v", rt)
	}
}

func TestPoolSortedStable(t *testing.T) {
	rts := []RT{
		NewRT(0, Interval{100, 200}, Interval{900, 1000}),
		NewRT(1, Interval{150, 260}, Interval{700, 800}),
		NewRT(2, Interval{100, 130}, Interval{1800, 1900}),
	}
	p := Pool(rts)
	if len(p) != 6 {
		t.Fatalf("want 6 LTRs, got %d", len(p))
	}
	for i := 1; i < len(p); i++ {
		if p[i-1].Start > p[i].Start {
			t.Fatalf("not sorted at %d: %v", i, p)
		}
	}
	if p[0].Row != 0 || p[1].Row != 2 {
		t.Fatalf("equal starts must keep row order: %v", p[:2])
	}
}
