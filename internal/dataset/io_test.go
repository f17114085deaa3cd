package dataset

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDirRoundTrip(t *testing.T) {
	d := New()
	if err := d.SetObs("group", StringColumn([]string{"A", "B", "A"})); err != nil {
		t.Fatal(err)
	}
	if err := d.SetObs("score", FloatColumn([]float64{0.5, 1.5, 2.5})); err != nil {
		t.Fatal(err)
	}
	if err := d.SetEmbedding("umap", [][]float64{{0, 1}, {2, 3}, {4, 5}}); err != nil {
		t.Fatal(err)
	}
	d.VarNames = []string{"cd4"}
	d.X = [][]float64{{1}, {2}, {3}}
	d.Uns["timepoint_var"] = "group"

	dir := filepath.Join(t.TempDir(), "ds")
	if err := WriteDir(dir, d); err != nil {
		t.Fatal(err)
	}

	got, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if got.NRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", got.NRows())
	}
	group, err := got.Obs("group")
	if err != nil || !group.IsString() {
		t.Fatalf("group column: %v", err)
	}
	score, err := got.Obs("score")
	if err != nil || score.IsString() {
		t.Fatalf("score should load as numeric")
	}
	if score.Floats[2] != 2.5 {
		t.Errorf("score[2] = %f", score.Floats[2])
	}
	coords, err := got.Embedding("umap")
	if err != nil {
		t.Fatal(err)
	}
	if coords[2][1] != 5 {
		t.Errorf("umap[2][1] = %f", coords[2][1])
	}
	if name, err := got.UnsString("timepoint_var"); err != nil || name != "group" {
		t.Errorf("uns round trip: %q, %v", name, err)
	}
	if vals, err := got.Var("cd4"); err != nil || vals[1] != 2 {
		t.Errorf("X round trip: %v, %v", vals, err)
	}
}

func TestLoadDirMissing(t *testing.T) {
	d, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if d.NRows() != 0 {
		t.Errorf("expected empty dataset, got %d rows", d.NRows())
	}
}

func TestTableWriteCSV(t *testing.T) {
	tb := NewTable("bin", []float64{0, 1})
	if err := tb.Set("cd4", []float64{0.25, 0.75}); err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := tb.WriteCSV(&sb); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %v", lines)
	}
	if lines[0] != "bin,cd4" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "1,0.75" {
		t.Errorf("row = %q", lines[2])
	}
}
