package figure

import (
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// A Method names the per-axes drawing call used for a group of datasets.
type Method string

const (
	MethodLine    Method = "line"
	MethodScatter Method = "scatter"
	MethodHeatmap Method = "heatmap"
	MethodMesh    Method = "mesh"
)

// imageLike reports whether m renders one image layer per dataset instead
// of drawing the whole group in one call.
func (m Method) imageLike() bool {
	return m == MethodHeatmap || m == MethodMesh
}

// ParseMethod parses a method name. The empty string is MethodLine.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(s)) {
	case "", MethodLine:
		return MethodLine, nil
	case MethodScatter:
		return MethodScatter, nil
	case MethodHeatmap:
		return MethodHeatmap, nil
	case MethodMesh:
		return MethodMesh, nil
	}
	return "", configErrorf("unknown plot method %q", s)
}

// A Namer is a dataset with a display name; named datasets get legend
// entries.
type Namer interface {
	Name() string
}

// An Axes is one subplot of a figure: a gonum plot positioned in the
// figure's grid (or attached to another axes), with the scales it resolves
// against and the mappable layers drawn on it.
type Axes struct {
	// Plot is the underlying gonum plot. Its styling fields may be
	// modified freely before saving.
	Plot *plot.Plot

	// Row and Col are the grid position. Attached axes (colorbars,
	// segment bars) keep the position of their anchor.
	Row, Col int

	// Projection names the axes type: "rectilinear" for grid axes,
	// "segments" for segment bars, "colorbar" for colorbar axes.
	Projection string

	// XScale and YScale hold the scales this axes resolves against.
	// Shared axes hold identical pointers.
	XScale, YScale *Scale

	fig        *Figure
	rangers    []plot.DataRanger
	mappables  []Mappable
	hideXTicks bool // blank the x tick labels at render time
	xTicker    plot.Ticker
	yTicker    plot.Ticker
}

// add registers plotters on the axes, tracking data rangers for scale
// resolution and mappables for colorbars.
func (a *Axes) add(ps ...plot.Plotter) {
	for _, p := range ps {
		a.Plot.Add(p)
		if dr, ok := p.(plot.DataRanger); ok {
			a.rangers = append(a.rangers, dr)
		}
		if m, ok := p.(Mappable); ok {
			a.mappables = append(a.mappables, m)
		}
	}
}

// Mappables returns the mappable layers drawn on this axes, in draw order.
func (a *Axes) Mappables() []Mappable { return a.mappables }

// plotGroup hands a group of datasets to the drawing call selected by
// method. Image-like methods draw one layer per dataset; line-like methods
// draw the whole group onto the axes in one pass, cycling line and glyph
// styles per dataset.
func (a *Axes) plotGroup(method Method, group Group) error {
	if a.Projection == "segments" {
		for _, d := range group {
			set, ok := d.(*SegmentSet)
			if !ok {
				return configErrorf("segments projection needs *SegmentSet datasets, got %T", d)
			}
			a.add(newSegmentsPlotter(set))
		}
		return nil
	}

	if method.imageLike() {
		for _, d := range group {
			if p, ok := d.(plot.Plotter); ok {
				a.add(p)
				continue
			}
			g, ok := d.(plotter.GridXYZ)
			if !ok {
				return configErrorf("method %q needs plotter.GridXYZ datasets, got %T", method, d)
			}
			a.add(NewHeatImage(g, nil))
		}
		return nil
	}

	for i, d := range group {
		if p, ok := d.(plot.Plotter); ok {
			a.add(p)
			continue
		}
		xy, ok := d.(plotter.XYer)
		if !ok {
			return configErrorf("method %q needs plotter.XYer datasets, got %T", method, d)
		}
		var (
			thumb plot.Thumbnailer
			err   error
		)
		switch method {
		case MethodScatter:
			var sc *plotter.Scatter
			sc, err = plotter.NewScatter(xy)
			if err == nil {
				sc.GlyphStyle.Color = plotutil.Color(i)
				sc.GlyphStyle.Shape = plotutil.Shape(i)
				a.add(sc)
				thumb = sc
			}
		default:
			var ln *plotter.Line
			ln, err = plotter.NewLine(xy)
			if err == nil {
				ln.LineStyle.Color = plotutil.Color(i)
				ln.LineStyle.Dashes = plotutil.Dashes(i)
				a.add(ln)
				thumb = ln
			}
		}
		if err != nil {
			return err
		}
		if nm, ok := d.(Namer); ok && nm.Name() != "" {
			a.Plot.Legend.Add(nm.Name(), thumb)
		}
	}
	return nil
}
