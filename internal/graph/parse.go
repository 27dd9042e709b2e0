package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brentp/xopen"

	"ltrgraph/internal/element"
)

// Arrow separates a source node from its edge groups.
const Arrow = "-->"

// Load reads a graph file (plain or gzipped).
func Load(path string) (Graph, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh, path)
}

// Parse reads one source node per line:
//
//	> 100:250 [stretch...] + --> {900:1050 [stretch...] - W: 0.75}, {...},
//
// The position is the second head field and the strand the last one.
// Neighbours always sit on the opposite strand; the weight is the last
// field of each brace group.
func Parse(r io.Reader, name string) (Graph, error) {
	g := Graph{}
	br := bufio.NewReaderSize(r, 1<<20)
	ln := 0
	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return nil, element.At(name, ln+1, rerr)
		}
		if line == "" && rerr != nil {
			break
		}
		ln++
		if strings.TrimSpace(line) != "" {
			src, adj, err := parseLine(line)
			if err != nil {
				return nil, element.At(name, ln, err)
			}
			if _, dup := g[src]; dup {
				return nil, element.At(name, ln, fmt.Errorf("%w: duplicate source node %s", element.ErrParse, src))
			}
			g[src] = adj
		}
		if rerr != nil {
			break
		}
	}
	return g, nil
}

func parseLine(line string) (element.Node, map[element.Node]float64, error) {
	head, tail, ok := strings.Cut(line, Arrow)
	if !ok {
		return element.Node{}, nil, fmt.Errorf("%w: missing %q", element.ErrParse, Arrow)
	}
	hf := strings.Fields(head)
	if len(hf) < 3 {
		return element.Node{}, nil, fmt.Errorf("%w: head %q needs marker, position and strand", element.ErrParse, strings.TrimSpace(head))
	}
	strand, err := element.ParseStrand(hf[len(hf)-1])
	if err != nil {
		return element.Node{}, nil, err
	}
	src, err := element.ParseNode(hf[1], strand)
	if err != nil {
		return element.Node{}, nil, err
	}

	groups := strings.Split(tail, "}")
	adj := make(map[element.Node]float64, len(groups)-1)
	for _, grp := range groups[:len(groups)-1] {
		_, body, ok := strings.Cut(grp, "{")
		if !ok {
			return element.Node{}, nil, fmt.Errorf("%w: edge group %q lacks '{'", element.ErrParse, strings.TrimSpace(grp))
		}
		bf := strings.Fields(body)
		if len(bf) < 2 {
			return element.Node{}, nil, fmt.Errorf("%w: edge group %q needs position and weight", element.ErrParse, strings.TrimSpace(body))
		}
		dst, err := element.ParseNode(bf[0], strand.Opposite())
		if err != nil {
			return element.Node{}, nil, err
		}
		w, err := strconv.ParseFloat(bf[len(bf)-1], 64)
		if err != nil {
			return element.Node{}, nil, fmt.Errorf("%w: %q", element.ErrInvalidWeight, bf[len(bf)-1])
		}
		adj[dst] = w
	}
	return src, adj, nil
}
