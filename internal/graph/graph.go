// Package graph loads the detector's candidate graph: a sparse directed
// weighted graph over strand-tagged elements.
package graph

import (
	"sort"

	"ltrgraph/internal/element"
)

// Graph maps a source node to its outgoing edges and their weights.
// A node absent as a key has no outgoing edges.
type Graph map[element.Node]map[element.Node]float64

// Weight returns the weight of src -> dst and whether the edge exists.
func (g Graph) Weight(src, dst element.Node) (float64, bool) {
	w, ok := g[src][dst]
	return w, ok
}

// Edges counts all directed edges.
func (g Graph) Edges() int {
	n := 0
	for _, adj := range g {
		n += len(adj)
	}
	return n
}

// Nodes returns the source nodes on one strand sorted by start, then end.
func (g Graph) Nodes(s element.Strand) []element.Node {
	out := make([]element.Node, 0, len(g)/2+1)
	for n := range g {
		if n.Strand == s {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}
