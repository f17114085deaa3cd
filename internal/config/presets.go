package config

// Presets are ready-made styling profiles for common output targets.
var Presets = map[string]*Config{
	"draft": {
		Basis: DefaultBasis, ColorMap: DefaultColorMap, Colorbar: false,
		Style:  StyleConfig{PointRadius: 1.5},
		Figure: FigureConfig{Width: 4, Height: 3},
	},
	"paper": {
		Basis: DefaultBasis, ColorMap: DefaultColorMap, Colorbar: true,
		Style:  StyleConfig{PointRadius: 2, EdgeWidth: 0.2, EdgeColor: "black"},
		Figure: FigureConfig{Width: 6, Height: 4.5},
	},
	"poster": {
		Basis: DefaultBasis, ColorMap: "kindlmann", Colorbar: true,
		Style:  StyleConfig{PointRadius: 3.5, EdgeWidth: 0.4, EdgeColor: "black"},
		Figure: FigureConfig{Width: 10, Height: 7.5},
	},
}

// GetPreset returns the named preset, nil when unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
