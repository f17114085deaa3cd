package figure

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultColorMap is used whenever a caller leaves the colormap unset.
const DefaultColorMap = "blue-red"

var colorMaps = map[string]func() palette.ColorMap{
	// SmoothBlueRed returns the concrete DivergingColorMap type, so it
	// needs a wrapper to fit the registry's function type.
	"blue-red":            func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"kindlmann":           moreland.Kindlmann,
	"extended-kindlmann":  moreland.ExtendedKindlmann,
	"black-body":          moreland.BlackBody,
	"extended-black-body": moreland.ExtendedBlackBody,
}

// ColorMap resolves a colormap by name. The empty name resolves to
// DefaultColorMap.
func ColorMap(name string) (palette.ColorMap, error) {
	if name == "" {
		name = DefaultColorMap
	}
	f, ok := colorMaps[name]
	if !ok {
		return nil, fmt.Errorf("figure: unknown colormap %q (known: %s)", name, strings.Join(ColorMapNames(), ", "))
	}
	return f(), nil
}

// ColorMapNames lists the registered colormap names, sorted.
func ColorMapNames() []string {
	names := make([]string, 0, len(colorMaps))
	for name := range colorMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SampleColors draws n evenly spaced colors from the named colormap, for
// per-category or per-marker styling.
func SampleColors(name string, n int) ([]color.Color, error) {
	cm, err := ColorMap(name)
	if err != nil {
		return nil, err
	}
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(n).Colors(), nil
}
