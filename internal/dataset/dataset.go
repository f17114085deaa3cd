package dataset

import (
	"fmt"
)

// KeyError reports a missing key in one of the dataset namespaces.
type KeyError struct {
	Namespace string
	Key       string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("dataset: %s has no key %q", e.Namespace, e.Key)
}

// Column is a per-row observation attribute. Exactly one of the value
// slices is populated.
type Column struct {
	Strings []string
	Floats  []float64
}

func StringColumn(vals []string) *Column { return &Column{Strings: vals} }

func FloatColumn(vals []float64) *Column { return &Column{Floats: vals} }

func (c *Column) IsString() bool { return c.Strings != nil }

func (c *Column) Len() int {
	if c.IsString() {
		return len(c.Strings)
	}
	return len(c.Floats)
}

// Unique returns the distinct string values in first-seen order.
// Float columns have no category semantics and yield nil.
func (c *Column) Unique() []string {
	if !c.IsString() {
		return nil
	}
	seen := make(map[string]bool, len(c.Strings))
	var out []string
	for _, v := range c.Strings {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Dataset is the annotated container all renderers read from. It owns
// nothing long-term for its callers: renderers only read embeddings and
// obs columns, and add keys to Uns, never remove them.
type Dataset struct {
	// X is the optional rows x vars value matrix, addressed by VarNames.
	X        [][]float64
	VarNames []string

	// Uns holds free-form auxiliary values keyed by name.
	Uns map[string]any

	obs     map[string]*Column
	obsKeys []string
	emb     map[string][][]float64
	embKeys []string
}

func New() *Dataset {
	return &Dataset{
		Uns: make(map[string]any),
		obs: make(map[string]*Column),
		emb: make(map[string][][]float64),
	}
}

// NRows reports the common row count, taken from the first obs column,
// embedding, or X, whichever exists. Zero for an empty dataset.
func (d *Dataset) NRows() int {
	if len(d.obsKeys) > 0 {
		return d.obs[d.obsKeys[0]].Len()
	}
	if len(d.embKeys) > 0 {
		return len(d.emb[d.embKeys[0]])
	}
	return len(d.X)
}

// SetObs stores a per-row attribute. Column length must match the row
// count established by earlier data.
func (d *Dataset) SetObs(key string, col *Column) error {
	if n := d.NRows(); n > 0 && col.Len() != n {
		return fmt.Errorf("dataset: obs %q has %d rows, want %d", key, col.Len(), n)
	}
	if _, ok := d.obs[key]; !ok {
		d.obsKeys = append(d.obsKeys, key)
	}
	d.obs[key] = col
	return nil
}

// Obs returns the attribute stored at key.
func (d *Dataset) Obs(key string) (*Column, error) {
	col, ok := d.obs[key]
	if !ok {
		return nil, &KeyError{Namespace: "obs", Key: key}
	}
	return col, nil
}

// ObsKeys lists attribute names in insertion order.
func (d *Dataset) ObsKeys() []string { return d.obsKeys }

// SetEmbedding stores a named coordinate array. Rows must match the
// dataset row count and carry at least two coordinates each.
func (d *Dataset) SetEmbedding(key string, coords [][]float64) error {
	if n := d.NRows(); n > 0 && len(coords) != n {
		return fmt.Errorf("dataset: embedding %q has %d rows, want %d", key, len(coords), n)
	}
	for i, row := range coords {
		if len(row) < 2 {
			return fmt.Errorf("dataset: embedding %q row %d has %d coordinates, want >= 2", key, i, len(row))
		}
	}
	if _, ok := d.emb[key]; !ok {
		d.embKeys = append(d.embKeys, key)
	}
	d.emb[key] = coords
	return nil
}

// Embedding returns the coordinate array stored at key.
func (d *Dataset) Embedding(key string) ([][]float64, error) {
	coords, ok := d.emb[key]
	if !ok {
		return nil, &KeyError{Namespace: "embeddings", Key: key}
	}
	return coords, nil
}

// EmbeddingKeys lists embedding names in insertion order.
func (d *Dataset) EmbeddingKeys() []string { return d.embKeys }

// UnsString returns the string stored in Uns at key. Missing or
// non-string values are a KeyError in the uns namespace.
func (d *Dataset) UnsString(key string) (string, error) {
	v, ok := d.Uns[key]
	if !ok {
		return "", &KeyError{Namespace: "uns", Key: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("dataset: uns %q is %T, want string", key, v)
	}
	return s, nil
}

// Var returns the X column for the named variable.
func (d *Dataset) Var(name string) ([]float64, error) {
	for j, vn := range d.VarNames {
		if vn != name {
			continue
		}
		out := make([]float64, len(d.X))
		for i, row := range d.X {
			out[i] = row[j]
		}
		return out, nil
	}
	return nil, &KeyError{Namespace: "var", Key: name}
}
