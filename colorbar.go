package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// defaultColorbarFraction is the share of the anchor axes width a colorbar
// takes when no explicit fraction is given.
const defaultColorbarFraction = 0.15

// colorbarPad is the gap between a colorbar and its anchor, as a fraction
// of the anchor width.
const colorbarPad = 0.05

// A Colorbar is a colorbar attached to the figure: the thin axes it is
// drawn on and the mappable whose color scale it displays.
type Colorbar struct {
	// Axes is the colorbar's own axes (projection "colorbar").
	Axes *Axes

	// Mappable is the layer the colorbar displays.
	Mappable Mappable

	bar *plotter.ColorBar
}

// sync re-reads the mappable's color map, so a Refresh picks up
// re-normalized or re-colored layers.
func (c *Colorbar) sync() {
	c.bar.ColorMap = c.Mappable.ColorMap()
}

// ColorbarOptions configures Figure.Colorbar. The zero value anchors to
// the current axes, targets the last mappable drawn on it, carves the
// colorbar out of the anchor and emits the color scale to the anchor's
// other mappables.
type ColorbarOptions struct {
	// Mappable is the layer to display. Nil means the last mappable on
	// the anchor axes, falling back to the last mappable anywhere on the
	// figure.
	Mappable Mappable

	// Cax is an existing axes to draw the colorbar on. When nil a new
	// thin axes is created right of the anchor.
	Cax *Axes

	// Ax is the anchor axes. Nil means the current axes.
	Ax *Axes

	// Fraction of the anchor width used for the colorbar. 0 means the
	// default 0.15.
	Fraction float64

	// NoResize draws the colorbar in the cell padding and leaves the
	// anchor axes at its full size (the fraction=0 behavior).
	NoResize bool

	// Emit: On or Auto propagate the mappable's color map and
	// normalization to every other mappable already drawn on the anchor
	// axes; Off leaves them alone.
	Emit Tristate

	// Label is the colorbar's scale label.
	Label string
}

// Colorbar attaches a colorbar for an existing mappable layer. It returns
// a *ConfigError when the figure has no mappable to display.
func (f *Figure) Colorbar(opts ColorbarOptions) (*Colorbar, error) {
	ax := opts.Ax
	if ax == nil {
		ax = f.CurrentAxes()
	}
	if ax == nil {
		return nil, configErrorf("figure has no axes to anchor a colorbar")
	}

	m := opts.Mappable
	if m == nil {
		m = lastMappable(ax.mappables)
	}
	if m == nil {
		// Fall back to the most recent mappable anywhere.
		for i := len(f.axes) - 1; i >= 0 && m == nil; i-- {
			m = lastMappable(f.axes[i].mappables)
		}
	}
	if m == nil {
		return nil, configErrorf("no mappables found to make colorbar")
	}

	cax := opts.Cax
	if cax == nil {
		var err error
		cax, err = f.newAxes(ax.Row, ax.Col, "colorbar")
		if err != nil {
			return nil, err
		}
		fraction := opts.Fraction
		if fraction == 0 {
			fraction = defaultColorbarFraction
		}
		f.attach(&attachment{
			ax:       cax,
			anchor:   ax,
			location: "right",
			fraction: fraction,
			pad:      colorbarPad,
			noResize: opts.NoResize,
		})
		f.axes = append(f.axes, cax)
	}

	cm := m.ColorMap()
	bar := &plotter.ColorBar{ColorMap: cm}
	bar.Vertical = true

	cax.XScale = NewScale(ScaleLinear)
	cax.XScale.Expand.Relative = 0
	cax.YScale = NewScale(ScaleLinear)
	cax.YScale.Expand.Relative = 0
	cax.xTicker = plot.ConstantTicks(nil)
	cax.Plot.Y.Label.Text = opts.Label
	cax.add(bar)

	cb := &Colorbar{Axes: cax, Mappable: m, bar: bar}
	f.colorbars = append(f.colorbars, cb)

	// Emit: all layers of the anchor axes share one color scale.
	if opts.Emit != Off {
		for _, other := range ax.mappables {
			if other != m {
				other.SetColorMap(cm)
			}
		}
	}
	return cb, nil
}

// Colorbars returns the colorbars created for this figure, in creation
// order.
func (f *Figure) Colorbars() []*Colorbar {
	out := make([]*Colorbar, len(f.colorbars))
	copy(out, f.colorbars)
	return out
}

// AddColorbar is a deprecated alias for Colorbar.
func (f *Figure) AddColorbar(opts ColorbarOptions) (*Colorbar, error) {
	warnAddColorbar.Do(func() {
		logger.Warn("Figure.AddColorbar was renamed Figure.Colorbar, the alias will be removed")
	})
	return f.Colorbar(opts)
}

func lastMappable(ms []Mappable) Mappable {
	if len(ms) == 0 {
		return nil
	}
	return ms[len(ms)-1]
}
