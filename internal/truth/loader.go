// Package truth loads curated ground-truth retrotransposon annotations.
package truth

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brentp/xopen"

	"ltrgraph/internal/element"
)

// MinFields is the number of leading fields a data row must carry:
// chrom id flag left_start left_end right_start right_end.
const MinFields = 7

// Load reads a whitespace-separated annotation file (plain or gzipped).
func Load(path string) ([]element.RT, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh, path)
}

// Parse reads annotation rows from r; name is used in error messages.
// Leading lines whose second field is missing or not numeric (header,
// blanks, comments) are skipped. Fields past the seventh are ignored.
func Parse(r io.Reader, name string) ([]element.RT, error) {
	var rts []element.RT
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<24)
	ln := 0
	inData := false
	for sc.Scan() {
		ln++
		f := strings.Fields(sc.Text())
		if !inData {
			if len(f) < 2 || !isNumeric(f[1]) {
				continue
			}
			inData = true
		}
		if len(f) == 0 {
			continue
		}
		if len(f) < MinFields {
			return nil, element.At(name, ln, fmt.Errorf("%w: %d fields, need %d", element.ErrParse, len(f), MinFields))
		}
		var c [4]int
		for i := range c {
			v, err := strconv.Atoi(f[3+i])
			if err != nil {
				return nil, element.At(name, ln, fmt.Errorf("%w: field %d %q is not an integer", element.ErrParse, 4+i, f[3+i]))
			}
			c[i] = v
		}
		left := element.Interval{Start: c[0], End: c[1]}
		right := element.Interval{Start: c[2], End: c[3]}
		if left.Len() <= 0 || right.Len() <= 0 {
			return nil, element.At(name, ln, fmt.Errorf("%w: empty LTR interval", element.ErrParse))
		}
		rts = append(rts, element.NewRT(len(rts), left, right))
	}
	if err := sc.Err(); err != nil {
		return nil, element.At(name, ln, err)
	}
	return rts, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
