package figure

import (
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

// paletteColors is the number of discrete colors a color map is sampled at
// when rendering a heat map.
const paletteColors = 255

// A Mappable is a rendered data layer with an associated color scale.
// Colorbars are built against a mappable, and emitting a colorbar can
// re-color every mappable on the same axes.
type Mappable interface {
	ColorMap() palette.ColorMap
	SetColorMap(palette.ColorMap)
}

// A HeatImage renders a grid of z values as a heat map colored by a
// palette.ColorMap. It is the image-like layer produced by MethodHeatmap
// and MethodMesh and implements Mappable.
type HeatImage struct {
	*plotter.HeatMap
	cmap palette.ColorMap
}

// NewHeatImage wraps g in a heat map colored by cmap. A nil cmap gets the
// default (Kindlmann). The color map's normalization is set to the z range
// of the data unless it is already set.
func NewHeatImage(g plotter.GridXYZ, cmap palette.ColorMap) *HeatImage {
	if cmap == nil {
		cmap = moreland.Kindlmann()
	}
	if cmap.Max() == cmap.Min() {
		zmin, zmax := gridZRange(g)
		if zmin == zmax {
			// A flat grid still needs a non-degenerate color range.
			zmin -= 0.5
			zmax += 0.5
		}
		cmap.SetMin(zmin)
		cmap.SetMax(zmax)
	}
	h := plotter.NewHeatMap(g, cmap.Palette(paletteColors))
	h.Min, h.Max = cmap.Min(), cmap.Max()
	return &HeatImage{HeatMap: h, cmap: cmap}
}

// ColorMap implements Mappable.
func (h *HeatImage) ColorMap() palette.ColorMap { return h.cmap }

// SetColorMap implements Mappable: the heat map is re-colored and
// re-normalized to cm.
func (h *HeatImage) SetColorMap(cm palette.ColorMap) {
	h.cmap = cm
	h.HeatMap.Palette = cm.Palette(paletteColors)
	h.HeatMap.Min, h.HeatMap.Max = cm.Min(), cm.Max()
}

func gridZRange(g plotter.GridXYZ) (zmin, zmax float64) {
	zmin, zmax = math.Inf(1), math.Inf(-1)
	cols, rows := g.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			z := g.Z(c, r)
			zmin = math.Min(zmin, z)
			zmax = math.Max(zmax, z)
		}
	}
	if zmin > zmax {
		zmin, zmax = 0, 1
	}
	return zmin, zmax
}
