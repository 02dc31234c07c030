package figure

import (
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// A Span is one interval on the x axis.
type Span struct {
	Start, End float64
}

// A SegmentSet is a categorical interval dataset: the spans for which a
// state is known at all, and the spans for which it was active. It is the
// dataset type of the "segments" projection and of AddSegmentsBar.
type SegmentSet struct {
	Name   string
	Known  []Span
	Active []Span
}

// XUnit implements XUniter; segment spans are time intervals.
func (s *SegmentSet) XUnit() Unit { return Second }

// Colors of the two segment tones. Known-but-inactive spans are drawn as a
// thin red band, active spans as a full green band.
var (
	segKnownColor  = color.RGBA{R: 0xdd, G: 0x32, B: 0x32, A: 0xff}
	segActiveColor = color.RGBA{R: 0x33, G: 0xa0, B: 0x2c, A: 0xff}
)

// segmentsPlotter draws a SegmentSet as a two-tone horizontal bar centered
// on y=0.
type segmentsPlotter struct {
	set *SegmentSet
}

func newSegmentsPlotter(set *SegmentSet) *segmentsPlotter {
	return &segmentsPlotter{set: set}
}

// Plot implements plot.Plotter.
func (sp *segmentsPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	fill := func(spans []Span, col color.Color, halfHeight float64) {
		c.SetColor(col)
		for _, s := range spans {
			rect := c.Rectangle
			rect.Min.X, rect.Min.Y = trX(s.Start), trY(-halfHeight)
			rect.Max.X, rect.Max.Y = trX(s.End), trY(halfHeight)
			c.Fill(rect.Path())
		}
	}
	fill(sp.set.Known, segKnownColor, 0.15)
	fill(sp.set.Active, segActiveColor, 0.5)
}

// DataRange implements plot.DataRanger. The y extent is the fixed band
// [-1, 1], the x extent covers all spans.
func (sp *segmentsPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	x := unsetInterval()
	for _, s := range sp.set.Known {
		x.Update(s.Start, s.End)
	}
	for _, s := range sp.set.Active {
		x.Update(s.Start, s.End)
	}
	return x.Min, x.Max, -1, 1
}

// SegmentsBarOptions configures AddSegmentsBar. The zero value anchors to
// the current axes, below it, sharing its x scale, with height 0.2 and pad
// 0.1.
type SegmentsBarOptions struct {
	// Ax is the anchor axes. Nil means the current axes.
	Ax *Axes

	// Height of the new axes as a fraction of the anchor. 0 means 0.2.
	Height float64

	// Pad between the new axes and the anchor as a fraction of the
	// anchor. 0 means 0.1.
	Pad float64

	// SharedX: On or Auto adopt the anchor's x scale, hiding the
	// anchor's x tick labels and x label; Off keeps an independent scale.
	SharedX Tristate

	// Location of the bar: "bottom" (default) or "top".
	Location string
}

// AddSegmentsBar attaches a thin segment-bar axes to an anchor axes and
// renders set on it. The bar sits immediately above or below the anchor,
// similar to a colorbar. When it shares the anchor's x scale the bar
// becomes the visible owner of the x axis and the anchor's x tick labels
// and x label are hidden.
func (f *Figure) AddSegmentsBar(set *SegmentSet, opts SegmentsBarOptions) (*Axes, error) {
	anchor := opts.Ax
	if anchor == nil {
		anchor = f.CurrentAxes()
	}
	if anchor == nil {
		return nil, configErrorf("figure has no axes to anchor a segments bar")
	}

	loc := strings.ToLower(opts.Location)
	if loc == "" {
		loc = "bottom"
	}
	if loc != "top" && loc != "bottom" {
		return nil, configErrorf("segments can only be positioned at %q or %q, not %q",
			"top", "bottom", opts.Location)
	}

	height := opts.Height
	if height == 0 {
		height = 0.2
	}
	pad := opts.Pad
	if pad == 0 {
		pad = 0.1
	}

	segax, err := f.newAxes(anchor.Row, anchor.Col, "segments")
	if err != nil {
		return nil, err
	}

	if opts.SharedX != Off {
		segax.XScale = anchor.XScale
		anchor.hideXTicks = true
		anchor.Plot.X.Label.Text = ""
	} else {
		segax.XScale = NewScale(ScaleLinear)
	}

	// Tight vertical fit: the bar band is fixed to [-1, 1].
	segax.YScale = NewScale(ScaleLinear)
	segax.YScale.Expand.Relative = 0
	segax.YScale.FixMin(-1)
	segax.YScale.FixMax(1)
	if set.Name != "" {
		segax.yTicker = plot.ConstantTicks([]plot.Tick{{Value: 0, Label: set.Name}})
	} else {
		segax.yTicker = plot.ConstantTicks(nil)
	}

	segax.add(newSegmentsPlotter(set))

	f.attach(&attachment{
		ax:       segax,
		anchor:   anchor,
		location: loc,
		height:   height,
		pad:      pad,
	})
	f.axes = append(f.axes, segax)
	return segax, nil
}

// AddStateSegments is a deprecated alias for AddSegmentsBar.
func (f *Figure) AddStateSegments(set *SegmentSet, opts SegmentsBarOptions) (*Axes, error) {
	warnStateSegments.Do(func() {
		logger.Warn("Figure.AddStateSegments was renamed Figure.AddSegmentsBar, the alias will be removed")
	})
	return f.AddSegmentsBar(set, opts)
}
