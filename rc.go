package figure

import (
	"sync"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"
)

// RC holds the figure defaults. They are loadable from a TOML file:
//
//	[figure]
//	size = [8.0, 6.0]          # inches
//
//	[figure.subplot]
//	left = 0.75                # margins, inches
//	right = 0.3
//	bottom = 0.55
//	top = 0.4
//	padx = 0.25                # padding between panels, inches
//	pady = 0.25
type RC struct {
	Figure FigureRC `toml:"figure"`
}

// FigureRC are the per-figure defaults.
type FigureRC struct {
	// Size is the default figure size in inches.
	Size [2]float64 `toml:"size"`

	Subplot SubplotRC `toml:"subplot"`
}

// SubplotRC positions the axes grid inside the figure. All values are
// inches; keeping the margins absolute makes labels survive figure
// resizing, the margins only shrink when they would eat too much of a
// small figure (see SubplotParams).
type SubplotRC struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Top    float64 `toml:"top"`
	PadX   float64 `toml:"padx"`
	PadY   float64 `toml:"pady"`
}

// DefaultRC returns the built-in defaults.
func DefaultRC() *RC {
	rc := &RC{}
	rc.Figure.Size = [2]float64{8, 6}
	rc.Figure.Subplot = SubplotRC{
		Left:   0.75,
		Right:  0.3,
		Bottom: 0.55,
		Top:    0.4,
		PadX:   0.25,
		PadY:   0.25,
	}
	return rc
}

// LoadRC reads a TOML rc file on top of the built-in defaults.
func LoadRC(path string) (*RC, error) {
	rc := DefaultRC()
	if _, err := toml.DecodeFile(path, rc); err != nil {
		return nil, err
	}
	return rc, nil
}

// FigureSize returns the default figure size.
func (rc *RC) FigureSize() Size {
	return Size{
		W: vg.Length(rc.Figure.Size[0]) * vg.Inch,
		H: vg.Length(rc.Figure.Size[1]) * vg.Inch,
	}
}

// SubplotParams returns the grid margins for a figure of the given size.
// Each margin is clamped to a quarter of its dimension so small figures
// keep a usable plotting area.
func (rc *RC) SubplotParams(size Size) (left, right, bottom, top vg.Length) {
	clamp := func(margin float64, dim vg.Length) vg.Length {
		m := vg.Length(margin) * vg.Inch
		if max := dim / 4; m > max {
			m = max
		}
		return m
	}
	sp := rc.Figure.Subplot
	return clamp(sp.Left, size.W), clamp(sp.Right, size.W),
		clamp(sp.Bottom, size.H), clamp(sp.Top, size.H)
}

// PanelPadX returns the horizontal padding between grid cells.
func (rc *RC) PanelPadX() vg.Length {
	return vg.Length(rc.Figure.Subplot.PadX) * vg.Inch
}

// PanelPadY returns the vertical padding between grid cells.
func (rc *RC) PanelPadY() vg.Length {
	return vg.Length(rc.Figure.Subplot.PadY) * vg.Inch
}

var (
	rcMu      sync.Mutex
	defaultRC = DefaultRC()
)

// SetRC installs rc as the defaults used by New. Passing nil restores the
// built-in defaults.
func SetRC(rc *RC) {
	rcMu.Lock()
	defer rcMu.Unlock()
	if rc == nil {
		rc = DefaultRC()
	}
	defaultRC = rc
}

// CurrentRC returns the defaults used by New.
func CurrentRC() *RC {
	rcMu.Lock()
	defer rcMu.Unlock()
	return defaultRC
}
