package plotting

import (
	"testing"

	"github.com/san-kum/embedviz/internal/dataset"
)

// testDataset builds the 5-row container shared by the package tests.
func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New()
	if err := ds.SetObs("group", dataset.StringColumn([]string{"A", "B", "A", "C", "B"})); err != nil {
		t.Fatal(err)
	}
	if err := ds.SetObs("score", dataset.FloatColumn([]float64{0.1, 0.4, 0.2, 0.9, 0.5})); err != nil {
		t.Fatal(err)
	}
	if err := ds.SetEmbedding("umap", [][]float64{
		{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0},
	}); err != nil {
		t.Fatal(err)
	}
	return ds
}

// emptyDataset has the same keys as testDataset but zero rows.
func emptyDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New()
	if err := ds.SetObs("group", dataset.StringColumn([]string{})); err != nil {
		t.Fatal(err)
	}
	if err := ds.SetObs("score", dataset.FloatColumn([]float64{})); err != nil {
		t.Fatal(err)
	}
	if err := ds.SetEmbedding("umap", [][]float64{}); err != nil {
		t.Fatal(err)
	}
	return ds
}
