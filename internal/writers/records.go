// internal/writers/records.go
package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/brentp/xopen"

	"ltrgraph/internal/classify"
)

// RecordFiles names the output file of each kind.
var RecordFiles = map[classify.Kind]string{
	classify.Bidirectional: "TwoWay.tsv",
	classify.LeftOnly:      "LeftOnly.tsv",
	classify.RightOnly:     "RightOnly.tsv",
	classify.Unconnected:   "Unconnected.tsv",
}

// FormatWeight prints the shortest representation that round-trips.
func FormatWeight(w float64) string { return strconv.FormatFloat(w, 'g', -1, 64) }

// Row renders the raw values of one record, tab separated, without newline:
// two-way "lr rl", left-only "lr R", right-only "L rl", unconnected "L R".
func Row(r classify.Record) string {
	switch r.Kind {
	case classify.Bidirectional:
		return FormatWeight(r.LR) + "\t" + FormatWeight(r.RL)
	case classify.LeftOnly:
		return FormatWeight(r.LR) + "\t" + r.Right.Token()
	case classify.RightOnly:
		return r.Left.Token() + "\t" + FormatWeight(r.RL)
	default:
		return r.Left.Token() + "\t" + r.Right.Token()
	}
}

// StartRecordWriter spins up a writer goroutine that prints one Row per
// record received. The error channel yields once, after in is closed.
func StartRecordWriter(out io.Writer, bufSize int) (chan<- classify.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan classify.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriter(out)
		var err error
		for r := range in {
			if err != nil {
				continue // drain so the sender never blocks
			}
			_, err = fmt.Fprintln(bw, Row(r))
		}
		if err == nil {
			err = bw.Flush()
		}
		errCh <- err
	}()
	return in, errCh
}

// WriteRecordFiles writes the four per-kind TSV files into dir, keeping
// record order within each file. Every file is created, even when empty.
func WriteRecordFiles(dir string, recs []classify.Record) (err error) {
	type sink struct {
		fh   *xopen.Writer
		in   chan<- classify.Record
		done <-chan error
	}
	sinks := make(map[classify.Kind]sink, len(RecordFiles))
	defer func() {
		for _, s := range sinks {
			close(s.in)
			if werr := <-s.done; werr != nil && err == nil {
				err = werr
			}
			if cerr := s.fh.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	for k, name := range RecordFiles {
		fh, oerr := xopen.Wopen(filepath.Join(dir, name))
		if oerr != nil {
			return oerr
		}
		in, done := StartRecordWriter(fh, 256)
		sinks[k] = sink{fh: fh, in: in, done: done}
	}
	for _, r := range recs {
		s, ok := sinks[r.Kind]
		if !ok {
			return errors.New("writers: record of unknown kind")
		}
		s.in <- r
	}
	return nil
}
