// internal/pipeline/processor.go
package pipeline

import (
	"fmt"

	"ltrgraph/internal/classify"
	"ltrgraph/internal/graph"
	"ltrgraph/internal/pairing"
	"ltrgraph/internal/truth"
)

// Processor is the minimal capability the pipeline needs.
// Any implementation (including fakes in tests) can satisfy this.
type Processor interface {
	Process(p pairing.Pair) (classify.Result, error)
}

// Files loads both files of a pair from disk and classifies the RTs.
// The graph and RT list go out of scope as soon as Process returns.
type Files struct {
	Options classify.Options
}

func (f Files) Process(p pairing.Pair) (classify.Result, error) {
	rts, err := truth.Load(p.Truth)
	if err != nil {
		return classify.Result{}, err
	}
	g, err := graph.Load(p.Graph)
	if err != nil {
		return classify.Result{}, err
	}
	res, err := classify.Pair(rts, g, f.Options)
	if err != nil {
		return classify.Result{}, fmt.Errorf("%s vs %s: %w", p.Truth, p.Graph, err)
	}
	return res, nil
}
