package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Directory layout:
//
//	obs.csv              header = attribute names, one row per observation
//	X.csv                header = var names, optional
//	embeddings/<key>.csv headerless float rows, one file per embedding
//	uns.json             scalar auxiliary values, optional

// LoadDir reads a dataset from dir.
func LoadDir(dir string) (*Dataset, error) {
	d := New()

	if err := loadObs(d, filepath.Join(dir, "obs.csv")); err != nil {
		return nil, err
	}
	if err := loadX(d, filepath.Join(dir, "X.csv")); err != nil {
		return nil, err
	}

	embDir := filepath.Join(dir, "embeddings")
	entries, err := os.ReadDir(embDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		key := strings.TrimSuffix(e.Name(), ".csv")
		coords, err := readFloatCSV(filepath.Join(embDir, e.Name()), false)
		if err != nil {
			return nil, fmt.Errorf("embedding %q: %w", key, err)
		}
		if err := d.SetEmbedding(key, coords); err != nil {
			return nil, err
		}
	}

	unsPath := filepath.Join(dir, "uns.json")
	if data, err := os.ReadFile(unsPath); err == nil {
		if err := json.Unmarshal(data, &d.Uns); err != nil {
			return nil, fmt.Errorf("uns.json: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	return d, nil
}

// WriteDir saves the dataset under dir, creating it as needed. Only
// scalar uns values are persisted; computed tables live in the run store.
func WriteDir(dir string, d *Dataset) error {
	if err := os.MkdirAll(filepath.Join(dir, "embeddings"), 0755); err != nil {
		return err
	}

	if len(d.ObsKeys()) > 0 {
		if err := writeObs(d, filepath.Join(dir, "obs.csv")); err != nil {
			return err
		}
	}
	if len(d.X) > 0 {
		if err := writeX(d, filepath.Join(dir, "X.csv")); err != nil {
			return err
		}
	}
	for _, key := range d.EmbeddingKeys() {
		coords, _ := d.Embedding(key)
		if err := writeFloatCSV(filepath.Join(dir, "embeddings", key+".csv"), nil, coords); err != nil {
			return err
		}
	}

	uns := make(map[string]any)
	for k, v := range d.Uns {
		switch v.(type) {
		case string, float64, int, bool:
			uns[k] = v
		}
	}
	if len(uns) > 0 {
		data, err := json.MarshalIndent(uns, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "uns.json"), data, 0644); err != nil {
			return err
		}
	}
	return nil
}

func loadObs(d *Dataset, path string) error {
	records, err := readCSV(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	header := records[0]
	rows := records[1:]
	for j, name := range header {
		raw := make([]string, len(rows))
		floats := make([]float64, len(rows))
		numeric := true
		for i, rec := range rows {
			raw[i] = rec[j]
			if numeric {
				f, err := strconv.ParseFloat(rec[j], 64)
				if err != nil {
					numeric = false
				} else {
					floats[i] = f
				}
			}
		}
		col := StringColumn(raw)
		if numeric && len(rows) > 0 {
			col = FloatColumn(floats)
		}
		if err := d.SetObs(name, col); err != nil {
			return err
		}
	}
	return nil
}

func writeObs(d *Dataset, path string) error {
	keys := d.ObsKeys()
	n := d.NRows()
	records := make([][]string, n+1)
	records[0] = keys
	for i := 1; i <= n; i++ {
		records[i] = make([]string, len(keys))
	}
	for j, key := range keys {
		col, _ := d.Obs(key)
		for i := 0; i < n; i++ {
			if col.IsString() {
				records[i+1][j] = col.Strings[i]
			} else {
				records[i+1][j] = strconv.FormatFloat(col.Floats[i], 'g', -1, 64)
			}
		}
	}
	return writeCSV(path, records)
}

func loadX(d *Dataset, path string) error {
	records, err := readCSV(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	d.VarNames = records[0]
	d.X = make([][]float64, len(records)-1)
	for i, rec := range records[1:] {
		row := make([]float64, len(rec))
		for j, s := range rec {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("X.csv row %d: %w", i+1, err)
			}
			row[j] = f
		}
		d.X[i] = row
	}
	return nil
}

func writeX(d *Dataset, path string) error {
	return writeFloatCSV(path, d.VarNames, d.X)
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return csv.NewReader(file).ReadAll()
}

func writeCSV(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	w := csv.NewWriter(file)
	if err := w.WriteAll(records); err != nil {
		return err
	}
	return w.Error()
}

func readFloatCSV(path string, header bool) ([][]float64, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if header && len(records) > 0 {
		records = records[1:]
	}
	out := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, s := range rec {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			row[j] = f
		}
		out[i] = row
	}
	return out, nil
}

func writeFloatCSV(path string, header []string, rows [][]float64) error {
	records := make([][]string, 0, len(rows)+1)
	if header != nil {
		records = append(records, header)
	}
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, f := range row {
			rec[j] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		records = append(records, rec)
	}
	return writeCSV(path, records)
}
