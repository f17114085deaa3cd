package trajectory

import (
	"math"
	"testing"

	"github.com/san-kum/embedviz/internal/dataset"
	"github.com/san-kum/embedviz/internal/figure"
)

// rampDataset has one marker rising linearly with pseudotime on branch1
// and falling on branch2, so the branch trends diverge strongly.
func rampDataset(t *testing.T, divergent bool) *dataset.Dataset {
	t.Helper()
	ds := dataset.New()
	n := 60
	times := make([]float64, n)
	branches := make([]string, n)
	ds.VarNames = []string{"m"}
	ds.X = make([][]float64, n)
	for i := 0; i < n; i++ {
		times[i] = float64(i) / float64(n-1)
		v := times[i]
		switch {
		case times[i] < 0.5:
			branches[i] = BranchTrunk
		case i%2 == 0:
			branches[i] = Branch1
		default:
			branches[i] = Branch2
			if divergent {
				v = 1 - times[i]
			}
		}
		ds.X[i] = []float64{v}
	}
	if err := ds.SetObs(ObsTrajectory, dataset.FloatColumn(times)); err != nil {
		t.Fatal(err)
	}
	if err := ds.SetObs(ObsBranch, dataset.StringColumn(branches)); err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestFromDatasetValidation(t *testing.T) {
	ds := dataset.New()
	if _, err := FromDataset(ds); err == nil {
		t.Error("expected error for missing trajectory column")
	}

	if err := ds.SetObs(ObsTrajectory, dataset.StringColumn([]string{"a", "b"})); err != nil {
		t.Fatal(err)
	}
	if err := ds.SetObs(ObsBranch, dataset.StringColumn([]string{BranchTrunk, Branch1})); err != nil {
		t.Fatal(err)
	}
	if _, err := FromDataset(ds); err == nil {
		t.Error("expected error for string pseudotime")
	}
}

func TestTrendShapes(t *testing.T) {
	ds := rampDataset(t, true)
	wb, err := FromDataset(ds)
	if err != nil {
		t.Fatal(err)
	}

	ax := figure.New().AddAxes()
	trends, err := wb.PlotMarkerTrajectory([]string{"m"}, PlotOpts{Bins: 10, SmoothingFactor: 1, MinDelta: 0.1}, ax)
	if err != nil {
		t.Fatal(err)
	}

	for _, tb := range []*dataset.Table{trends.Trunk, trends.Branch1, trends.Branch2} {
		if len(tb.Index) != 10 {
			t.Fatalf("expected 10 bins, got %d", len(tb.Index))
		}
		col := tb.Col("m")
		if col == nil {
			t.Fatal("missing marker column")
		}
		for _, v := range col {
			if v < -1e-9 || v > 1+1e-9 || math.IsNaN(v) {
				t.Fatalf("trend value %g outside normalized range", v)
			}
		}
	}

	// Divergent branches must stay separate trends.
	b1 := trends.Branch1.Col("m")
	b2 := trends.Branch2.Col("m")
	var diff float64
	for i := range b1 {
		diff = math.Max(diff, math.Abs(b1[i]-b2[i]))
	}
	if diff < 0.1 {
		t.Errorf("expected divergent branch trends, max diff %g", diff)
	}

	// Drawing happened: 3 trend lines for one marker.
	var lines int
	for _, s := range ax.Series() {
		if s.Kind == figure.KindLine {
			lines++
		}
	}
	if lines != 3 {
		t.Errorf("expected 3 trend lines, got %d", lines)
	}
}

func TestBranchMerging(t *testing.T) {
	ds := rampDataset(t, false)
	wb, err := FromDataset(ds)
	if err != nil {
		t.Fatal(err)
	}

	ax := figure.New().AddAxes()
	trends, err := wb.PlotMarkerTrajectory([]string{"m"}, PlotOpts{Bins: 10, SmoothingFactor: 1, MinDelta: 0.1}, ax)
	if err != nil {
		t.Fatal(err)
	}

	// Identical branches collapse to one merged trend in both tables.
	b1 := trends.Branch1.Col("m")
	b2 := trends.Branch2.Col("m")
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Fatalf("bin %d: branches not merged (%g vs %g)", i, b1[i], b2[i])
		}
	}
}

func TestVarianceBands(t *testing.T) {
	ds := rampDataset(t, true)
	wb, err := FromDataset(ds)
	if err != nil {
		t.Fatal(err)
	}

	ax := figure.New().AddAxes()
	if _, err := wb.PlotMarkerTrajectory([]string{"m"}, PlotOpts{Bins: 8, SmoothingFactor: 1, MinDelta: 0.1, ShowVariance: true}, ax); err != nil {
		t.Fatal(err)
	}

	var bands int
	for _, s := range ax.Series() {
		if s.Kind == figure.KindBand {
			bands++
		}
	}
	if bands != 3 {
		t.Errorf("expected 3 variance bands, got %d", bands)
	}
}

func TestInvalidBins(t *testing.T) {
	ds := rampDataset(t, true)
	wb, err := FromDataset(ds)
	if err != nil {
		t.Fatal(err)
	}
	ax := figure.New().AddAxes()
	if _, err := wb.PlotMarkerTrajectory([]string{"m"}, PlotOpts{Bins: 0}, ax); err == nil {
		t.Error("expected error for zero bins")
	}
}
