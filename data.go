package figure

// Prototypical dataset implementations. Any plotter.XYer or plotter.GridXYZ
// works as a dataset; these types additionally carry names and x-axis
// units, which is what the figure-level defaults key on.

// A Series is a regularly sampled sequence: y values at x = X0 + i*DX.
// It implements plotter.XYer and XUniter.
type Series struct {
	Label string
	X0    float64
	DX    float64
	Y     []float64
	Unit  Unit
}

// NewSeries returns a dimensionless series sampled at x0, x0+dx, ...
func NewSeries(label string, x0, dx float64, y []float64) *Series {
	return &Series{Label: label, X0: x0, DX: dx, Y: y}
}

// NewTimeSeries returns a series whose x axis is seconds, starting at
// epoch t0 with sample step dt.
func NewTimeSeries(label string, t0, dt float64, y []float64) *Series {
	return &Series{Label: label, X0: t0, DX: dt, Y: y, Unit: Second}
}

// Len implements plotter.XYer.
func (s *Series) Len() int { return len(s.Y) }

// XY implements plotter.XYer.
func (s *Series) XY(i int) (x, y float64) {
	return s.X0 + float64(i)*s.DX, s.Y[i]
}

// XUnit implements XUniter.
func (s *Series) XUnit() Unit { return s.Unit }

// Name returns the series label, used for legend entries.
func (s *Series) Name() string { return s.Label }

// A GridData is a rectangular grid of z values on a regular x/y raster.
// It implements plotter.GridXYZ and XUniter; image-like methods render it
// as a heat map. Rows is indexed [row][col], row 0 at YMin.
type GridData struct {
	XMin, YMin float64
	DX, DY     float64
	Rows       [][]float64
	Unit       Unit
}

// Dims implements plotter.GridXYZ.
func (g *GridData) Dims() (c, r int) {
	if len(g.Rows) == 0 {
		return 0, 0
	}
	return len(g.Rows[0]), len(g.Rows)
}

// Z implements plotter.GridXYZ.
func (g *GridData) Z(c, r int) float64 { return g.Rows[r][c] }

// X implements plotter.GridXYZ.
func (g *GridData) X(c int) float64 { return g.XMin + float64(c)*g.DX }

// Y implements plotter.GridXYZ.
func (g *GridData) Y(r int) float64 { return g.YMin + float64(r)*g.DY }

// XUnit implements XUniter.
func (g *GridData) XUnit() Unit { return g.Unit }
