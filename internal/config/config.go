package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBasis       = "umap"
	DefaultColorMap    = "blue-red"
	DefaultPointRadius = 2.0
	DefaultFigWidth    = 6.0
	DefaultFigHeight   = 4.5
	DefaultPreviewW    = 36
	DefaultPreviewH    = 12
)

type Config struct {
	Basis      string        `yaml:"basis"`
	Color      string        `yaml:"color"`
	ColorMap   string        `yaml:"color_map"`
	Colorbar   bool          `yaml:"colorbar"`
	Style      StyleConfig   `yaml:"style"`
	Figure     FigureConfig  `yaml:"figure"`
	Preview    PreviewConfig `yaml:"preview"`
	Trajectory TrendConfig   `yaml:"trajectory"`
	OutDir     string        `yaml:"out_dir"`
}

type StyleConfig struct {
	PointRadius float64 `yaml:"point_radius"`
	EdgeWidth   float64 `yaml:"edge_width"`
	EdgeColor   string  `yaml:"edge_color"`
}

type FigureConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PreviewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type TrendConfig struct {
	Bins            int     `yaml:"bins"`
	SmoothingFactor float64 `yaml:"smoothing_factor"`
	MinDelta        float64 `yaml:"min_delta"`
	ShowVariance    bool    `yaml:"show_variance"`
}

func DefaultConfig() *Config {
	return &Config{
		Basis:    DefaultBasis,
		ColorMap: DefaultColorMap,
		Colorbar: true,
		Style: StyleConfig{
			PointRadius: DefaultPointRadius,
			EdgeColor:   "black",
		},
		Figure: FigureConfig{
			Width:  DefaultFigWidth,
			Height: DefaultFigHeight,
		},
		Preview: PreviewConfig{
			Width:  DefaultPreviewW,
			Height: DefaultPreviewH,
		},
		Trajectory: TrendConfig{
			Bins:            150,
			SmoothingFactor: 1,
			MinDelta:        0.1,
		},
		OutDir: ".embedviz",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
