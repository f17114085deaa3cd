package plotting

import (
	"image/color"
	"testing"

	"github.com/san-kum/embedviz/internal/figure"
)

func TestCategoricalColorbar(t *testing.T) {
	ds := testDataset(t)

	ax, err := ProjectionScatter(ds, Projection{Key: "umap"}, ScatterOpts{
		Color:    ColorSpec{Key: "group"},
		Colorbar: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	// group = [A B A C B] encodes as A->0, B->1, C->2.
	series := ax.Series()
	if len(series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(series))
	}
	wantVals := []float64{0, 1, 0, 2, 1}
	for i, v := range wantVals {
		if series[0].Vals[i] != v {
			t.Fatalf("codes = %v, want %v", series[0].Vals, wantVals)
		}
	}

	cb := ax.Colorbar()
	if cb == nil {
		t.Fatal("expected a colorbar")
	}
	wantTicks := []float64{0, 1, 2}
	wantLabels := []string{"A", "B", "C"}
	for i := range wantTicks {
		if cb.Ticks[i] != wantTicks[i] || cb.Labels[i] != wantLabels[i] {
			t.Fatalf("colorbar ticks %v labels %v, want %v %v", cb.Ticks, cb.Labels, wantTicks, wantLabels)
		}
	}
}

func TestNumericPassthrough(t *testing.T) {
	ds := testDataset(t)

	ax, err := ProjectionScatter(ds, Projection{Key: "umap"}, ScatterOpts{
		Color:    ColorSpec{Key: "score"},
		Colorbar: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Numeric values reach the scatter unchanged, no encoding step.
	series := ax.Series()
	want := []float64{0.1, 0.4, 0.2, 0.9, 0.5}
	for i, v := range want {
		if series[0].Vals[i] != v {
			t.Fatalf("values = %v, want %v", series[0].Vals, want)
		}
	}

	cb := ax.Colorbar()
	if cb == nil {
		t.Fatal("expected a colorbar")
	}
	if cb.Labels != nil {
		t.Errorf("numeric colorbar should have no category labels, got %v", cb.Labels)
	}
}

func TestUniformColorSuppressesColorbar(t *testing.T) {
	ds := testDataset(t)

	ax, err := ProjectionScatter(ds, Projection{Key: "umap"}, ScatterOpts{
		Color:    ColorSpec{Uniform: color.Black},
		Colorbar: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ax.Colorbar() != nil {
		t.Error("uniform color must never draw a colorbar")
	}
	if ax.Series()[0].Vals != nil {
		t.Error("uniform scatter should record no mapped values")
	}
}

func TestUncoloredScatter(t *testing.T) {
	ds := testDataset(t)
	ax, err := ProjectionScatter(ds, Projection{Key: "umap"}, ScatterOpts{Colorbar: true})
	if err != nil {
		t.Fatal(err)
	}
	if ax.Colorbar() != nil {
		t.Error("absent color spec should not draw a colorbar")
	}
}

func TestLiteralColorFallback(t *testing.T) {
	ds := testDataset(t)

	// "crimson" is not an obs column; the lookup failure is silently
	// treated as a literal color name.
	ax, err := ProjectionScatter(ds, Projection{Key: "umap"}, ScatterOpts{
		Color:    ColorSpec{Key: "crimson"},
		Colorbar: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ax.Colorbar() != nil {
		t.Error("fallback color is a scalar, colorbar must be suppressed")
	}

	_, err = ProjectionScatter(ds, Projection{Key: "umap"}, ScatterOpts{
		Color: ColorSpec{Key: "definitely_not_a_color"},
	})
	if err == nil {
		t.Error("expected error for a key that is neither column nor color")
	}
}

func TestZeroRowDataset(t *testing.T) {
	ds := emptyDataset(t)

	for _, key := range []string{"score", "group"} {
		ax, err := ProjectionScatter(ds, Projection{Key: "umap"}, ScatterOpts{
			Color:    ColorSpec{Key: key},
			Colorbar: true,
		})
		if err != nil {
			t.Fatalf("color %s on zero rows: %v", key, err)
		}
		if n := len(ax.Series()[0].XYs); n != 0 {
			t.Errorf("color %s: expected 0 points, got %d", key, n)
		}
	}
}

func TestMissingProjectionKey(t *testing.T) {
	ds := testDataset(t)
	ax, err := ProjectionScatter(ds, Projection{Key: "phate"}, ScatterOpts{})
	if err == nil {
		t.Fatal("expected lookup error")
	}
	if ax != nil {
		t.Error("no axes should be produced on lookup failure")
	}
}

func TestLiteralCoordinates(t *testing.T) {
	ds := testDataset(t)
	coords := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	ax, err := ProjectionScatter(ds, Projection{Coords: coords}, ScatterOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ax.Series()[0].XYs) != 5 {
		t.Errorf("expected 5 points, got %d", len(ax.Series()[0].XYs))
	}
}

func TestExistingAxesReused(t *testing.T) {
	ds := testDataset(t)
	fig := figure.New()
	ax := fig.AddAxes()

	got, err := ProjectionScatter(ds, Projection{Key: "umap"}, ScatterOpts{Ax: ax})
	if err != nil {
		t.Fatal(err)
	}
	if got != ax {
		t.Error("expected the provided axes back")
	}
	if got.Figure() != fig {
		t.Error("axes should stay on its original figure")
	}
}

func TestColorLengthMismatch(t *testing.T) {
	ds := testDataset(t)
	// Length validation is left to the rendering primitive.
	_, err := ProjectionScatter(ds, Projection{Key: "umap"}, ScatterOpts{
		Color: ColorSpec{Values: []float64{1, 2}},
	})
	if err == nil {
		t.Error("expected dimension mismatch from the scatter primitive")
	}
}
