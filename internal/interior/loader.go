// Package interior loads the per-RT interior score vectors produced by the
// training-data generator (".rsc" files).
package interior

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/brentp/xopen"

	"ltrgraph/internal/element"
)

// Ext is the conventional interior score file extension.
const Ext = ".rsc"

// Load reads one score file: each line is a label followed by integer
// scores. The label is ignored.
func Load(path string) ([][]int, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh, path)
}

// Parse reads score vectors from r; name is used in error messages.
// Blank lines are skipped; a line with a label but no scores is an error.
func Parse(r io.Reader, name string) ([][]int, error) {
	var out [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<30)
	ln := 0
	for sc.Scan() {
		ln++
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		if len(f) == 1 {
			return nil, element.At(name, ln, fmt.Errorf("%w: no scores after label %q", element.ErrParse, f[0]))
		}
		v := make([]int, len(f)-1)
		for i, s := range f[1:] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, element.At(name, ln, fmt.Errorf("%w: score %q is not an integer", element.ErrParse, s))
			}
			v[i] = n
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, element.At(name, ln, err)
	}
	return out, nil
}

// Expand resolves each path: directories contribute their *.rsc files in
// name order, anything else is taken as a file.
func Expand(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			out = append(out, p)
			continue
		}
		m, err := filepath.Glob(filepath.Join(p, "*"+Ext))
		if err != nil {
			return nil, err
		}
		sort.Strings(m)
		out = append(out, m...)
	}
	return out, nil
}

// LoadAll pools the vectors of every file.
func LoadAll(paths []string) ([][]int, error) {
	var all [][]int
	for _, p := range paths {
		v, err := Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, v...)
	}
	return all, nil
}
