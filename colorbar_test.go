package figure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette/moreland"
)

func grid(peak float64) *GridData {
	g := &GridData{DX: 1, DY: 1, Rows: make([][]float64, 8)}
	for r := range g.Rows {
		g.Rows[r] = make([]float64, 8)
		for c := range g.Rows[r] {
			g.Rows[r][c] = peak * float64(r*c) / 49
		}
	}
	return g
}

func TestColorbarEmitSharesOneColorScale(t *testing.T) {
	defer ResetRegistry()

	f, err := NewWithOptions(Options{Method: MethodHeatmap},
		List{grid(1), grid(10)})
	require.NoError(t, err)
	ax := f.CurrentAxes()
	require.Len(t, ax.Mappables(), 2, "image methods draw one layer per dataset")

	cb, err := f.Colorbar(ColorbarOptions{Label: "Power"})
	require.NoError(t, err)
	require.Len(t, f.Colorbars(), 1)
	require.Equal(t, "colorbar", cb.Axes.Projection)
	require.Len(t, f.GetAxes("colorbar"), 1)

	// The colorbar targets the last-drawn mappable; emit re-colors the
	// first layer with the very same color map instance.
	first, second := ax.Mappables()[0], ax.Mappables()[1]
	require.Same(t, second, cb.Mappable)
	second.ColorMap().SetMax(123)
	require.Equal(t, 123.0, first.ColorMap().Max(),
		"emit makes all layers share one normalization")
}

func TestColorbarEmitOff(t *testing.T) {
	defer ResetRegistry()

	f, err := NewWithOptions(Options{Method: MethodHeatmap},
		List{grid(1), grid(10)})
	require.NoError(t, err)
	ax := f.CurrentAxes()

	_, err = f.Colorbar(ColorbarOptions{Emit: Off})
	require.NoError(t, err)

	first, second := ax.Mappables()[0], ax.Mappables()[1]
	second.ColorMap().SetMax(123)
	require.NotEqual(t, 123.0, first.ColorMap().Max(),
		"emit off leaves other layers alone")
}

func TestColorbarExplicitMappable(t *testing.T) {
	defer ResetRegistry()

	f, err := NewWithOptions(Options{Method: MethodHeatmap},
		List{grid(1), grid(10)})
	require.NoError(t, err)
	ax := f.CurrentAxes()

	target := ax.Mappables()[0]
	cb, err := f.Colorbar(ColorbarOptions{Mappable: target})
	require.NoError(t, err)
	require.Same(t, target, cb.Mappable)
}

func TestColorbarWithoutMappable(t *testing.T) {
	defer ResetRegistry()

	f, err := New(sine("a"))
	require.NoError(t, err)

	_, err = f.Colorbar(ColorbarOptions{})
	var cfg *ConfigError
	require.True(t, errors.As(err, &cfg), "want *ConfigError, got %T", err)
}

func TestRefreshSyncsColorbars(t *testing.T) {
	defer ResetRegistry()

	f, err := NewWithOptions(Options{Method: MethodHeatmap}, grid(5))
	require.NoError(t, err)
	cb, err := f.Colorbar(ColorbarOptions{})
	require.NoError(t, err)

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	cb.Mappable.SetColorMap(cm)
	require.NoError(t, f.Refresh())
	require.Equal(t, cm, cb.bar.ColorMap, "refresh re-reads the mappable's color map")
}

func TestHeatImageConstantGrid(t *testing.T) {
	defer ResetRegistry()

	// A flat grid (all z equal) must not collapse the color range.
	g := &GridData{DX: 1, DY: 1, Rows: [][]float64{{5, 5}, {5, 5}}}
	im := NewHeatImage(g, nil)
	require.Equal(t, 4.5, im.ColorMap().Min())
	require.Equal(t, 5.5, im.ColorMap().Max())

	f, err := NewWithOptions(Options{Method: MethodHeatmap}, g)
	require.NoError(t, err)
	_, err = f.renderImage()
	require.NoError(t, err)
}

func TestHeatImageNormalization(t *testing.T) {
	g := grid(4)
	im := NewHeatImage(g, nil)
	require.Equal(t, 0.0, im.ColorMap().Min())
	require.Equal(t, 4.0, im.ColorMap().Max())
	require.Equal(t, im.ColorMap().Min(), im.HeatMap.Min)
	require.Equal(t, im.ColorMap().Max(), im.HeatMap.Max)
}
