package element

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Interval is a half-open genomic span [Start, End) with End > Start.
type Interval struct {
	Start, End int
}

// Len is End-Start.
func (iv Interval) Len() int { return iv.End - iv.Start }

func (iv Interval) String() string { return fmt.Sprintf("%d:%d", iv.Start, iv.End) }

// Side tells which boundary of an RT an LTR belongs to.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// LTR is one boundary interval of an RT. Row is the zero-based data row the
// RT came from, so identical coordinates on different rows stay distinct keys.
type LTR struct {
	Interval
	Side Side
	Row  int
}

// RT pairs the left and right LTR parsed from one annotation row.
type RT struct {
	Left, Right LTR
}

// NewRT builds the RT for data row `row`.
func NewRT(row int, left, right Interval) RT {
	return RT{
		Left:  LTR{Interval: left, Side: Left, Row: row},
		Right: LTR{Interval: right, Side: Right, Row: row},
	}
}

// Pool collects the left and right LTR of every RT, stably sorted by start.
func Pool(rts []RT) []LTR {
	out := make([]LTR, 0, 2*len(rts))
	for _, rt := range rts {
		out = append(out, rt.Left, rt.Right)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Strand of a graph node.
type Strand byte

const (
	Forward  Strand = '+'
	Backward Strand = '-'
)

// ParseStrand accepts exactly "+" or "-".
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Backward, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStrand, s)
}

// Opposite returns the other strand.
func (s Strand) Opposite() Strand {
	if s == Forward {
		return Backward
	}
	return Forward
}

func (s Strand) String() string { return string(rune(s)) }

// Node is a candidate-graph element. All fields derive from its token
// "<start>:<end><strand>", so struct equality is token equality and a Node
// can key a map directly.
type Node struct {
	Start, End int
	Strand     Strand
}

// ParseNode parses a "<start>:<end>" position token for the given strand.
func ParseNode(pos string, strand Strand) (Node, error) {
	a, b, ok := strings.Cut(pos, ":")
	if !ok {
		return Node{}, fmt.Errorf("%w: position %q is not start:end", ErrParse, pos)
	}
	start, err := strconv.Atoi(a)
	if err != nil {
		return Node{}, fmt.Errorf("%w: position %q: bad start", ErrParse, pos)
	}
	end, err := strconv.Atoi(b)
	if err != nil {
		return Node{}, fmt.Errorf("%w: position %q: bad end", ErrParse, pos)
	}
	if end <= start {
		return Node{}, fmt.Errorf("%w: position %q: end must exceed start", ErrParse, pos)
	}
	if strand != Forward && strand != Backward {
		return Node{}, fmt.Errorf("%w: %q", ErrInvalidStrand, string(rune(strand)))
	}
	return Node{Start: start, End: end, Strand: strand}, nil
}

// MustNode is ParseNode for literals in tests and fixtures.
func MustNode(token string) Node {
	if token == "" {
		panic("element: empty node token")
	}
	st, err := ParseStrand(token[len(token)-1:])
	if err != nil {
		panic(err)
	}
	n, err := ParseNode(token[:len(token)-1], st)
	if err != nil {
		panic(err)
	}
	return n
}

// Interval drops the strand.
func (n Node) Interval() Interval { return Interval{Start: n.Start, End: n.End} }

// Token is the canonical identity encoding, e.g. "1200:1450+".
func (n Node) Token() string {
	return strconv.Itoa(n.Start) + ":" + strconv.Itoa(n.End) + string(rune(n.Strand))
}

func (n Node) String() string { return n.Token() }
