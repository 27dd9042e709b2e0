package writers

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"ltrgraph/internal/classify"
	"ltrgraph/internal/element"
)

var (
	nL = element.MustNode("100:200+")
	nR = element.MustNode("900:1000-")
)

func TestRow(t *testing.T) {
	cases := []struct {
		r    classify.Record
		want string
	}{
		{classify.Record{Kind: classify.Bidirectional, LR: 0.75, RL: 2, Left: nL, Right: nR}, "0.75\t2"},
		{classify.Record{Kind: classify.LeftOnly, LR: 1.5, Left: nL, Right: nR}, "1.5\t900:1000-"},
		{classify.Record{Kind: classify.RightOnly, RL: 3, Left: nL, Right: nR}, "100:200+\t3"},
		{classify.Record{Kind: classify.Unconnected, Left: nL, Right: nR}, "100:200+\t900:1000-"},
	}
	for _, c := range cases {
		if got := Row(c.r); got != c.want {
			t.Fatalf("%v: got %q want %q", c.r.Kind, got, c.want)
		}
	}
}

func TestStartRecordWriter(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartRecordWriter(&buf, 1)
	in <- classify.Record{Kind: classify.Bidirectional, LR: 1, RL: 2}
	in <- classify.Record{Kind: classify.Unconnected, Left: nL, Right: nR}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if buf.String() != "1\t2\n100:200+\t900:1000-\n" {
		t.Fatalf("got %q", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestStartRecordWriterReportsError(t *testing.T) {
	in, done := StartRecordWriter(failWriter{}, 1)
	for i := 0; i < 5000; i++ {
		in <- classify.Record{Kind: classify.Unconnected, Left: nL, Right: nR}
	}
	close(in)
	if err := <-done; !errors.Is(err, io.ErrClosedPipe) || !IsBrokenPipe(err) {
		t.Fatalf("want closed pipe, got %v", err)
	}
}

func TestWriteRecordFiles(t *testing.T) {
	dir := t.TempDir()
	recs := []classify.Record{
		{Kind: classify.Bidirectional, LR: 1, RL: 2},
		{Kind: classify.LeftOnly, LR: 4, Right: nR},
		{Kind: classify.Bidirectional, LR: 3, RL: 5},
	}
	if err := WriteRecordFiles(dir, recs); err != nil {
		t.Fatalf("WriteRecordFiles: %v", err)
	}
	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(b)
	}
	if got := read("TwoWay.tsv"); got != "1\t2\n3\t5\n" {
		t.Fatalf("TwoWay: %q", got)
	}
	if got := read("LeftOnly.tsv"); got != "4\t900:1000-\n" {
		t.Fatalf("LeftOnly: %q", got)
	}
	if read("RightOnly.tsv") != "" || read("Unconnected.tsv") != "" {
		t.Fatalf("empty kinds must still produce empty files")
	}
}

func TestWriteRecordFilesNotADir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteRecordFiles(file, nil); err == nil {
		t.Fatalf("want error writing under a regular file")
	}
}
