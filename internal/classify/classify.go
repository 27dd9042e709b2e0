// Package classify decides how each ground-truth RT is connected in the
// candidate graph once both of its LTRs have been matched to nodes.
package classify

import (
	"math"

	"ltrgraph/internal/element"
	"ltrgraph/internal/graph"
)

// Tolerance below which an edge weight counts as zero.
const Tolerance = 1e-6

// Kind is the connectivity outcome for one RT.
type Kind uint8

const (
	Unconnected Kind = iota
	LeftOnly
	RightOnly
	Bidirectional
)

var kindNames = [...]string{"unconnected", "left-only", "right-only", "two-way"}

func (k Kind) String() string { return kindNames[k] }

// Record is the classification of one RT. LR and RL hold the weights
// relevant to Kind: both for Bidirectional, LR for LeftOnly, RL for
// RightOnly, neither for Unconnected.
type Record struct {
	Kind        Kind
	RT          element.RT
	Left, Right element.Node
	LR, RL      float64
}

// IsZero reports |w| <= Tolerance.
func IsZero(w float64) bool { return math.Abs(w) <= Tolerance }

// Classify inspects both directions between the matched left node l and
// right node r. An edge that exists with zero weight disqualifies its
// direction; if the other direction also exists the RT is Unconnected.
func Classify(g graph.Graph, l, r element.Node) Record {
	rec := Record{Kind: Unconnected, Left: l, Right: r}
	lr, hasLR := g.Weight(l, r)
	rl, hasRL := g.Weight(r, l)
	switch {
	case hasLR && hasRL:
		if !IsZero(lr) && !IsZero(rl) {
			rec.Kind, rec.LR, rec.RL = Bidirectional, lr, rl
		}
	case hasLR:
		if !IsZero(lr) {
			rec.Kind, rec.LR = LeftOnly, lr
		}
	case hasRL:
		if !IsZero(rl) {
			rec.Kind, rec.RL = RightOnly, rl
		}
	}
	return rec
}
