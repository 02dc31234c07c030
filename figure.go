package figure

import (
	"strings"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// A Size is the drawing size of a figure.
type Size struct {
	W, H vg.Length
}

// wideSize is the default size of time-axis figures; relative-time traces
// need the horizontal room.
var wideSize = Size{W: 12 * vg.Inch, H: 6 * vg.Inch}

// A Geometry is the (rows, cols) grid the axes groups are arranged in.
// The zero value means "one column, one row per group".
type Geometry struct {
	Rows, Cols int
}

// A Share selects which previously created axes a new axes shares an axis
// scale with.
type Share int

const (
	ShareNone Share = iota // nothing
	ShareAll               // the (0,0) axes
	ShareRow               // the (row,0) axes
	ShareCol               // the (0,col) axes
)

// String returns the name of s.
func (s Share) String() string {
	return []string{"none", "all", "row", "col"}[int(s)]
}

// ParseShare converts the accepted share spellings to a Share: a Share is
// passed through, a bool maps true to ShareAll and false to ShareNone, and
// the strings "none", "all", "row" and "col" parse to their constant.
func ParseShare(v interface{}) (Share, error) {
	switch x := v.(type) {
	case Share:
		return x, nil
	case bool:
		if x {
			return ShareAll, nil
		}
		return ShareNone, nil
	case string:
		switch strings.ToLower(x) {
		case "", "none":
			return ShareNone, nil
		case "all":
			return ShareAll, nil
		case "row":
			return ShareRow, nil
		case "col":
			return ShareCol, nil
		}
	}
	return ShareNone, configErrorf("invalid axis share spec %v", v)
}

// Options configures figure construction. The zero value gives a single
// column of axes, line drawing, no sharing and sizes and scales inferred
// from the data and the rc defaults.
type Options struct {
	// Title is drawn centered above the axes grid.
	Title string

	// Size of the figure. Zero means the rc default, widened to 12x6
	// inches for time-axis figures.
	Size Size

	// XScale and YScale select the axis scales. A ScaleDefault x-scale
	// is probed from the data units.
	XScale, YScale ScaleType

	// Projection names the axes type for all grid axes, e.g. "segments".
	// Empty means rectilinear.
	Projection string

	// Method is the per-axes drawing call. Empty means MethodLine.
	Method Method

	// SharedX and SharedY link axis scales across the grid.
	SharedX, SharedY Share

	// Geometry fixes the grid. When Rows*Cols equals the number of data
	// inputs, every input gets its own axes.
	Geometry Geometry

	// Separate forces (On) or forbids (Off) one axes per singular input.
	// Auto infers it from the inputs.
	Separate Tristate

	// XLabel and YLabel are applied to every axes, subject to the
	// shared-axis label suppression rules.
	XLabel, YLabel string
}

// attachment records an axes carved out of its anchor's grid cell:
// a segments bar above or below it, or a colorbar to its right.
type attachment struct {
	ax       *Axes
	anchor   *Axes
	location string  // "top", "bottom" or "right"
	height   float64 // fraction of the anchor (top/bottom)
	pad      float64 // fraction of the anchor
	fraction float64 // fraction of the anchor width (right)
	noResize bool    // draw in the cell padding, keep the anchor's size
}

// A Figure is a grid of axes populated from grouped datasets, plus the
// colorbars and segment bars attached to them. A figure is built fresh by
// New, mutated on the caller's goroutine only, and released by Close.
type Figure struct {
	// Title is drawn centered at the top.
	Title string

	// Size is the drawing size used by Save, Show and Refresh.
	Size Size

	// Style controls figure-level decoration.
	Style Style

	rc          *RC
	method      Method
	rows, cols  int
	grid        [][]*Axes
	axes        []*Axes
	current     *Axes
	colorbars   []*Colorbar
	attachments []*attachment
}

// New builds a figure from data with default options. See NewWithOptions.
func New(data ...Input) (*Figure, error) {
	return NewWithOptions(Options{}, data...)
}

// NewWithOptions groups data into axes, arranges the axes in a grid,
// resolves the shared-axis relationships and draws every group with the
// configured method. The new figure becomes the active figure of the
// process registry.
//
// It returns a *ConfigError when the grid geometry cannot hold the groups.
func NewWithOptions(opts Options, data ...Input) (*Figure, error) {
	method := opts.Method
	if method == "" {
		method = MethodLine
	}

	// Default x-scale: probe the flattened inputs for a common time unit.
	xdefault := opts.XScale
	if xdefault == ScaleDefault {
		if st, ok := probeXScale(flattenInputs(data)); ok {
			xdefault = st
		} else if strings.EqualFold(opts.Projection, "segments") {
			xdefault = ScaleAutoTime
		}
	}

	rc := CurrentRC()
	size := opts.Size
	if size == (Size{}) {
		if xdefault == ScaleAutoTime {
			size = wideSize
		} else {
			size = rc.FigureSize()
		}
	}

	// An explicit full geometry implies one data input per axes.
	separate := opts.Separate
	geom := opts.Geometry
	if geom != (Geometry{}) && geom.Rows*geom.Cols == len(data) {
		separate = On
	}
	groups := groupInputs(data, separate)
	if geom == (Geometry{}) {
		geom = Geometry{Rows: len(groups), Cols: 1}
	}
	if geom.Rows*geom.Cols != len(groups) {
		return nil, configErrorf("cannot group data into %d axes with a %dx%d grid",
			len(groups), geom.Rows, geom.Cols)
	}

	f := &Figure{
		Title:  opts.Title,
		Size:   size,
		Style:  DefaultStyle(12),
		rc:     rc,
		method: method,
		rows:   geom.Rows,
		cols:   geom.Cols,
	}
	f.grid = make([][]*Axes, geom.Rows)
	for r := range f.grid {
		f.grid[r] = make([]*Axes, geom.Cols)
	}

	projection := opts.Projection
	if projection == "" {
		projection = "rectilinear"
	}

	for i, group := range groups {
		row, col := i/geom.Cols, i%geom.Cols
		ax, err := f.newAxes(row, col, projection)
		if err != nil {
			return nil, err
		}
		f.grid[row][col] = ax
		f.axes = append(f.axes, ax)
		f.current = ax

		if target := shareTarget(f.grid, opts.SharedX, row, col); target != nil && target != ax {
			ax.XScale = target.XScale
		} else {
			st := xdefault
			if st == ScaleDefault {
				if p, ok := probeXScale(group); ok {
					st = p
				}
			}
			ax.XScale = NewScale(st)
		}
		if target := shareTarget(f.grid, opts.SharedY, row, col); target != nil && target != ax {
			ax.YScale = target.YScale
		} else {
			ax.YScale = NewScale(opts.YScale)
		}

		ax.Plot.X.Label.Text = opts.XLabel
		ax.Plot.Y.Label.Text = opts.YLabel

		if err := ax.plotGroup(method, group); err != nil {
			return nil, err
		}

		// A fully shared axis is labelled once: x on the last row,
		// y on the first column.
		if opts.SharedX == ShareAll && row < geom.Rows-1 {
			ax.Plot.X.Label.Text = ""
		}
		if opts.SharedY == ShareAll && col > 0 {
			ax.Plot.Y.Label.Text = ""
		}
	}

	setActive(f)
	return f, nil
}

// shareTarget resolves the axes a new axes at (row, col) shares with.
func shareTarget(grid [][]*Axes, s Share, row, col int) *Axes {
	switch s {
	case ShareAll:
		return grid[0][0]
	case ShareRow:
		return grid[row][0]
	case ShareCol:
		return grid[0][col]
	}
	return nil
}

// newAxes creates an axes at a grid position. Scales are assigned by the
// caller.
func (f *Figure) newAxes(row, col int, projection string) (*Axes, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	return &Axes{
		Plot:       p,
		Row:        row,
		Col:        col,
		Projection: projection,
		fig:        f,
	}, nil
}

func (f *Figure) attach(att *attachment) {
	f.attachments = append(f.attachments, att)
}

// CurrentAxes returns the most recently created grid axes, or nil for an
// empty figure.
func (f *Figure) CurrentAxes() *Axes { return f.current }

// Axes returns every axes of the figure, grid axes first, in creation
// order.
func (f *Figure) Axes() []*Axes {
	out := make([]*Axes, len(f.axes))
	copy(out, f.axes)
	return out
}

// GetAxes returns the axes matching the given projection name, or all axes
// when projection is empty.
func (f *Figure) GetAxes(projection string) []*Axes {
	if projection == "" {
		return f.Axes()
	}
	var out []*Axes
	for _, ax := range f.axes {
		if strings.EqualFold(ax.Projection, projection) {
			out = append(out, ax)
		}
	}
	return out
}

// Show displays the figure on the registered display. With block == On it
// returns when the display reports the figure closed; with Off it returns
// immediately; with Auto it blocks iff the display is interactive and the
// process is not an interactive shell. When the display cannot show the
// figure on screen and warn is true, a warning is logged.
func (f *Figure) Show(block Tristate, warn bool) error {
	d := currentDisplay()
	doBlock := block == On ||
		(block == Auto && d.Interactive() && !interactiveShell())
	if warn && !d.Interactive() && block != On {
		logger.Warn("display backend is not interactive, figure cannot be shown on screen")
	}
	return d.Show(f, doBlock)
}

// Refresh re-syncs every colorbar from its mappable and redraws the
// figure.
func (f *Figure) Refresh() error {
	for _, cb := range f.colorbars {
		cb.sync()
	}
	_, err := f.renderImage()
	return err
}

// Close releases the figure: every axis is reset to a linear scale before
// the axes are dropped (releasing axes with a log normalizer installed
// trips the renderer), and the figure leaves the process registry.
func (f *Figure) Close() {
	for i := len(f.axes) - 1; i >= 0; i-- {
		ax := f.axes[i]
		if ax.XScale != nil {
			ax.XScale.Type = ScaleLinear
		}
		if ax.YScale != nil {
			ax.YScale.Type = ScaleLinear
		}
		ax.Plot.X.Scale = plot.LinearScale{}
		ax.Plot.Y.Scale = plot.LinearScale{}
		ax.Plot.X.Tick.Marker = plot.DefaultTicks{}
		ax.Plot.Y.Tick.Marker = plot.DefaultTicks{}
		ax.rangers = nil
		ax.mappables = nil
	}
	f.axes = nil
	f.grid = nil
	f.current = nil
	f.colorbars = nil
	f.attachments = nil
	dropFigure(f)
}

var (
	warnAddColorbar   sync.Once
	warnStateSegments sync.Once
)
