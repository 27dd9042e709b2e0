// Package pairing lines up ground-truth and graph files by genome and
// chromosome so each annotation meets the graph built from the same sequence.
package pairing

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"ltrgraph/internal/element"
)

// Key orders files by genome name, then numeric chromosome.
type Key struct {
	Genome     string
	Chromosome int
}

// Less orders keys by genome, then chromosome.
func (k Key) Less(o Key) bool {
	if k.Genome != o.Genome {
		return k.Genome < o.Genome
	}
	return k.Chromosome < o.Chromosome
}

// ParseKey reads "<genome>_<chrN>.<ext>": the genome is everything before
// the last underscore, the chromosome is the rest up to the first dot with
// an optional "chr" prefix.
func ParseKey(name string) (Key, error) {
	parts := strings.Split(name, "_")
	last := parts[len(parts)-1]
	if i := strings.IndexByte(last, '.'); i >= 0 {
		last = last[:i]
	}
	n, err := strconv.Atoi(strings.Replace(last, "chr", "", 1))
	if err != nil {
		return Key{}, element.At(name, 0, fmt.Errorf("%w: no numeric chromosome in file name", element.ErrParse))
	}
	return Key{Genome: strings.Join(parts[:len(parts)-1], "_"), Chromosome: n}, nil
}

// File is a directory entry with its sort key.
type File struct {
	Path string
	Key  Key
}

// List returns the regular, non-hidden files of dir sorted by Key.
func List(dir string) ([]File, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []File
	for _, e := range ents {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		k, err := ParseKey(e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, File{Path: filepath.Join(dir, e.Name()), Key: k})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out, nil
}

// Pair is one annotation file and the graph file it is compared against.
type Pair struct {
	Truth string
	Graph string
}

// DirectoryMismatchError reports paired directories of unequal size.
type DirectoryMismatchError struct {
	TruthDir, GraphDir string
	NTruth, NGraph     int
}

func (e *DirectoryMismatchError) Error() string {
	return fmt.Sprintf("%s has %d files but %s has %d", e.TruthDir, e.NTruth, e.GraphDir, e.NGraph)
}

// Dirs pairs the sorted listings of truthDir and graphDir position by position.
func Dirs(truthDir, graphDir string) ([]Pair, error) {
	ts, err := List(truthDir)
	if err != nil {
		return nil, err
	}
	gs, err := List(graphDir)
	if err != nil {
		return nil, err
	}
	if len(ts) != len(gs) {
		return nil, &DirectoryMismatchError{TruthDir: truthDir, GraphDir: graphDir, NTruth: len(ts), NGraph: len(gs)}
	}
	out := make([]Pair, len(ts))
	for i := range ts {
		out[i] = Pair{Truth: ts[i].Path, Graph: gs[i].Path}
	}
	return out, nil
}

// RequireDirs checks that every path exists and is a directory.
func RequireDirs(paths ...string) error {
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			return fmt.Errorf("%s is not a directory", p)
		}
	}
	return nil
}
