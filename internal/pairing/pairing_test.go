package pairing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ltrgraph/internal/element"
)

func TestParseKey(t *testing.T) {
	cases := map[string]Key{
		"hg38_chr12.bed":       {"hg38", 12},
		"my_genome_chr3.graph": {"my_genome", 3},
		"dm6_7.txt.gz":         {"dm6", 7},
		"chr5":                 {"", 5},
	}
	for name, want := range cases {
		got, err := ParseKey(name)
		if err != nil || got != want {
			t.Fatalf("%s: got %+v err=%v want %+v", name, got, err, want)
		}
	}
	if _, err := ParseKey("hg38_chrX.bed"); !errors.Is(err, element.ErrParse) {
		t.Fatalf("non-numeric chromosome: %v", err)
	}
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", n, err)
		}
	}
}

func TestDirsNumericOrder(t *testing.T) {
	gs, gr := t.TempDir(), t.TempDir()
	touch(t, gs, "g_chr10.bed", "g_chr2.bed", "a_chr1.bed", ".hidden")
	touch(t, gr, "g_chr2.graph", "a_chr1.graph", "g_chr10.graph")
	_ = os.Mkdir(filepath.Join(gr, "sub"), 0o755)

	pairs, err := Dirs(gs, gr)
	if err != nil {
		t.Fatalf("Dirs: %v", err)
	}
	want := []string{"a_chr1", "g_chr2", "g_chr10"}
	if len(pairs) != 3 {
		t.Fatalf("pairs: %v", pairs)
	}
	for i, p := range pairs {
		if filepath.Base(p.Truth) != want[i]+".bed" || filepath.Base(p.Graph) != want[i]+".graph" {
			t.Fatalf("pair %d: %+v", i, p)
		}
	}
}

func TestDirsMismatch(t *testing.T) {
	gs, gr := t.TempDir(), t.TempDir()
	touch(t, gs, "g_chr1.bed", "g_chr2.bed")
	touch(t, gr, "g_chr1.graph")
	_, err := Dirs(gs, gr)
	var de *DirectoryMismatchError
	if !errors.As(err, &de) || de.NTruth != 2 || de.NGraph != 1 {
		t.Fatalf("want DirectoryMismatchError, got %v", err)
	}
}

func TestRequireDirs(t *testing.T) {
	d := t.TempDir()
	f := filepath.Join(d, "f")
	touch(t, d, "f")
	if err := RequireDirs(d); err != nil {
		t.Fatalf("existing dir: %v", err)
	}
	if RequireDirs(d, f) == nil || RequireDirs(filepath.Join(d, "missing")) == nil {
		t.Fatalf("file or missing path must fail")
	}
}
