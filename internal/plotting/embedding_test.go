package plotting

import (
	"errors"
	"testing"

	"github.com/san-kum/embedviz/internal/dataset"
)

func TestEmbeddingIdentity(t *testing.T) {
	ds := testDataset(t)

	res, err := Embedding(ds, "umap", EmbeddingOpts{Display: DisplayOpts{Mode: ModeAxes}})
	if err != nil {
		t.Fatal(err)
	}

	// The rendered coordinates are exactly what the container stores.
	stored, _ := ds.Embedding("umap")
	xys := res.Axes[0].Series()[0].XYs
	if len(xys) != len(stored) {
		t.Fatalf("rendered %d points, stored %d", len(xys), len(stored))
	}
	for i := range stored {
		if xys[i].X != stored[i][0] || xys[i].Y != stored[i][1] {
			t.Fatalf("point %d: rendered (%g,%g), stored %v", i, xys[i].X, xys[i].Y, stored[i])
		}
	}
	if res.Axes[0].Title() != "umap" {
		t.Errorf("default title = %q", res.Axes[0].Title())
	}
}

func TestEmbeddingMissingBasis(t *testing.T) {
	ds := testDataset(t)

	res, err := Embedding(ds, "phate", EmbeddingOpts{Display: DisplayOpts{Mode: ModeFigure}})
	var ke *dataset.KeyError
	if !errors.As(err, &ke) {
		t.Fatalf("expected KeyError, got %v", err)
	}
	if ke.Namespace != "embeddings" || ke.Key != "phate" {
		t.Errorf("unexpected KeyError %+v", ke)
	}
	if res != nil {
		t.Error("no figure should be produced on lookup failure")
	}
}

func TestEmbeddingGroups(t *testing.T) {
	ds := testDataset(t)

	res, err := Embedding(ds, "umap", EmbeddingOpts{
		Color:   "group",
		Groups:  []string{"A"},
		Display: DisplayOpts{Mode: ModeAxes},
	})
	if err != nil {
		t.Fatal(err)
	}
	// group = [A B A C B]: two rows match.
	if got := len(res.Axes[0].Series()[0].XYs); got != 2 {
		t.Errorf("expected 2 points, got %d", got)
	}
}

func TestEmbeddingGroupsNumericColumn(t *testing.T) {
	ds := testDataset(t)
	_, err := Embedding(ds, "umap", EmbeddingOpts{
		Color:  "score",
		Groups: []string{"1"},
	})
	if err == nil {
		t.Error("expected error for groups over a numeric column")
	}
}

func TestNamedWrappers(t *testing.T) {
	ds := testDataset(t)
	if err := ds.SetEmbedding("phate", [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}); err != nil {
		t.Fatal(err)
	}

	res, err := PHATE(ds, EmbeddingOpts{Display: DisplayOpts{Mode: ModeAxes}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Axes[0].Title() != "phate" {
		t.Errorf("title = %q", res.Axes[0].Title())
	}

	if _, err := TriMap(ds, EmbeddingOpts{}); err == nil {
		t.Error("expected missing trimap embedding error")
	}
	if _, err := UMAP(ds, EmbeddingOpts{Display: DisplayOpts{Mode: ModeAxes}}); err != nil {
		t.Error(err)
	}
}
