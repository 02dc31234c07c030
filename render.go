package figure

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// A Style controls figure-level decoration; per-axes styling lives on the
// gonum plots themselves.
type Style struct {
	Background  color.Color
	Title       draw.TextStyle
	TitleHeight vg.Length
}

// DefaultStyle returns the default figure style. The title is drawn a bit
// bigger than baseFontSize.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1.4))
	if err != nil {
		panic(err)
	}

	st := Style{}
	st.Background = color.White
	st.Title.Color = color.Black
	st.Title.Font = titleFont
	st.Title.XAlign = draw.XCenter
	st.Title.YAlign = draw.YTop
	st.TitleHeight = scale(baseFontSize, 3)
	return st
}

// render resolves all scales and draws the figure onto dc: background,
// title, then every axes in its grid cell, with attached bars and
// colorbars carved out of their anchor's cell.
func (f *Figure) render(dc draw.Canvas) error {
	if err := f.resolveScales(); err != nil {
		return err
	}

	dc.SetColor(f.Style.Background)
	dc.Fill(dc.Rectangle.Path())

	if f.Title != "" {
		dc.FillText(f.Style.Title, vg.Point{X: dc.Center().X, Y: dc.Max.Y}, f.Title)
		dc.Max.Y -= f.Style.TitleHeight
	}

	if f.rows == 0 || f.cols == 0 {
		return nil
	}

	left, right, bottom, top := f.rc.SubplotParams(f.Size)
	tiles := draw.Tiles{
		Rows:      f.rows,
		Cols:      f.cols,
		PadLeft:   left,
		PadRight:  right,
		PadBottom: bottom,
		PadTop:    top,
		PadX:      f.rc.PanelPadX(),
		PadY:      f.rc.PanelPadY(),
	}

	cells := make(map[*Axes]draw.Canvas, len(f.axes))
	for r, rowAxes := range f.grid {
		for c, ax := range rowAxes {
			if ax != nil {
				cells[ax] = tiles.At(dc, c, r)
			}
		}
	}

	// Attached axes take their slice of the anchor's cell in attachment
	// order, so stacking two bars under one axes works.
	for _, att := range f.attachments {
		ac, ok := cells[att.anchor]
		if !ok {
			continue
		}
		bar := ac
		switch att.location {
		case "bottom":
			h := ac.Max.Y - ac.Min.Y
			barH := vg.Length(att.height) * h
			bar.Max.Y = ac.Min.Y + barH
			ac.Min.Y += barH + vg.Length(att.pad)*h
		case "top":
			h := ac.Max.Y - ac.Min.Y
			barH := vg.Length(att.height) * h
			bar.Min.Y = ac.Max.Y - barH
			ac.Max.Y -= barH + vg.Length(att.pad)*h
		case "right":
			w := ac.Max.X - ac.Min.X
			barW := vg.Length(att.fraction) * w
			if att.noResize {
				// Keep the anchor at full size and use the cell
				// padding to the right.
				bar.Min.X = ac.Max.X + vg.Length(att.pad)*w
				bar.Max.X = bar.Min.X + barW
			} else {
				bar.Min.X = ac.Max.X - barW
				ac.Max.X -= barW + vg.Length(att.pad)*w
			}
		}
		cells[att.ax], cells[att.anchor] = bar, ac
	}

	for _, ax := range f.axes {
		c, ok := cells[ax]
		if !ok {
			continue
		}
		ax.Plot.Draw(c)
	}
	return nil
}

// resolveScales re-learns the data range of every scale from the plotters
// drawn on its axes, autoscales, and pushes the resolved ranges onto the
// gonum axes. Shared scales are resolved once. A log scale over a range
// that cannot be made positive is a *ConfigError.
func (f *Figure) resolveScales() error {
	seen := make(map[*Scale]bool)
	var scales []*Scale
	for _, ax := range f.axes {
		for _, s := range []*Scale{ax.XScale, ax.YScale} {
			if s == nil || seen[s] {
				continue
			}
			seen[s] = true
			s.Data = unsetInterval()
			scales = append(scales, s)
		}
	}

	for _, ax := range f.axes {
		for _, dr := range ax.rangers {
			xmin, xmax, ymin, ymax := dr.DataRange()
			if ax.XScale != nil {
				ax.XScale.Data.Update(xmin, xmax)
			}
			if ax.YScale != nil {
				ax.YScale.Data.Update(ymin, ymax)
			}
		}
	}

	for _, s := range scales {
		s.autoscale()
		s.deDegenerate()
		if s.Type == ScaleLog {
			if err := s.clampLogRange(); err != nil {
				return err
			}
		}
		if s.Type == ScaleAutoTime {
			s.Epoch = s.Min
		}
		logger.Debug("resolved scale",
			"type", s.Type,
			"min", s.Min, "max", s.Max,
			"dataMin", s.Data.Min, "dataMax", s.Data.Max)
	}

	for _, ax := range f.axes {
		if ax.XScale != nil {
			ax.XScale.apply(&ax.Plot.X)
		}
		if ax.YScale != nil {
			ax.YScale.apply(&ax.Plot.Y)
		}
		if ax.xTicker != nil {
			ax.Plot.X.Tick.Marker = ax.xTicker
		}
		if ax.yTicker != nil {
			ax.Plot.Y.Tick.Marker = ax.yTicker
		}
		if ax.hideXTicks {
			ax.Plot.X.Tick.Marker = blankLabels{ax.Plot.X.Tick.Marker}
		}
	}
	return nil
}

// renderImage renders the figure to an in-memory raster canvas.
func (f *Figure) renderImage() (*vgimg.Canvas, error) {
	img := vgimg.New(f.Size.W, f.Size.H)
	if err := f.render(draw.New(img)); err != nil {
		return nil, err
	}
	return img, nil
}

// Save renders the figure once per path. The format is chosen by file
// extension: png, jpg, jpeg, tif, tiff, svg, pdf or eps.
func (f *Figure) Save(paths ...string) error {
	for _, p := range paths {
		if err := f.save(p); err != nil {
			return err
		}
	}
	return nil
}

func (f *Figure) save(path string) error {
	var (
		dc draw.Canvas
		wt io.WriterTo
	)
	w, h := f.Size.W, f.Size.H
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		img := vgimg.New(w, h)
		dc = draw.New(img)
		wt = vgimg.PngCanvas{Canvas: img}
	case ".jpg", ".jpeg":
		img := vgimg.New(w, h)
		dc = draw.New(img)
		wt = vgimg.JpegCanvas{Canvas: img}
	case ".tif", ".tiff":
		img := vgimg.New(w, h)
		dc = draw.New(img)
		wt = vgimg.TiffCanvas{Canvas: img}
	case ".svg":
		c := vgsvg.New(w, h)
		dc = draw.New(c)
		wt = c
	case ".pdf":
		c := vgpdf.New(w, h)
		dc = draw.New(c)
		wt = c
	case ".eps":
		c := vgeps.New(w, h)
		dc = draw.New(c)
		wt = c
	default:
		return configErrorf("unsupported image format %q", ext)
	}

	if err := f.render(dc); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
