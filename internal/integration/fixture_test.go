package integration

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

const (
	truthChr1 = "chrom idx strand ls le rs re\n" +
		"chr1 1 0 100 200 900 1000\n" +
		"chr1 2 0 2000 2100 2900 3000\n" +
		"chr1 3 0 5000 5100 5900 6000\n" +
		"chr1 4 0 8000 8100 8900 9000\n"
	graphChr1 = "> 100:200 [0,0,0] + --> {900:1000 [0,0,0] - W: 2}, \n" +
		"> 2000:2100 [0,0,0] + --> {2900:3000 [0,0,0] - W: 4}, \n" +
		"> 5000:5100 [0,0,0] + --> {5900:6000 [0,0,0] - W: 1.5}, \n" +
		"> 8000:8100 [0,0,0] + --> \n" +
		"> 900:1000 [0,0,0] - --> {100:200 [0,0,0] + W: 1}, \n" +
		"> 2900:3000 [0,0,0] - --> {2000:2100 [0,0,0] + W: 4}, \n" +
		"> 5900:6000 [0,0,0] - --> \n" +
		"> 8900:9000 [0,0,0] - --> \n"

	truthChr2 = "chr2 1 0 300 400 1300 1400\n" +
		"chr2 2 0 7000 7100 7900 8000\n"
	graphChr2 = "> 300:400 [0,0,0] + --> {1300:1400 [0,0,0] - W: 3}, \n" +
		"> 1300:1400 [0,0,0] - --> {300:400 [0,0,0] + W: 3}, \n"
)

type dataset struct {
	truth, graphs, out string
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeGzip(t *testing.T, path, data string) {
	t.Helper()
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fh)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}
}

// newDataset lays out two chromosomes of genome "g". The second graph is
// gzipped. Six RTs: three two-way, one left-only, one unconnected and one
// whose LTRs match no node, so it is skipped.
func newDataset(t *testing.T) dataset {
	t.Helper()
	root := t.TempDir()
	d := dataset{
		truth:  filepath.Join(root, "gs"),
		graphs: filepath.Join(root, "graphs"),
		out:    filepath.Join(root, "out"),
	}
	for _, dir := range []string{d.truth, d.graphs, d.out} {
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, filepath.Join(d.truth, "g_chr1.tsv"), truthChr1)
	writeFile(t, filepath.Join(d.truth, "g_chr2.tsv"), truthChr2)
	writeFile(t, filepath.Join(d.truth, ".hidden"), "ignored")
	writeFile(t, filepath.Join(d.graphs, "g_chr1.graph"), graphChr1)
	writeGzip(t, filepath.Join(d.graphs, "g_chr2.graph.gz"), graphChr2)
	return d
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}
