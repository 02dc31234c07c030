package figure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeDisplay records the show calls a figure makes.
type fakeDisplay struct {
	interactive bool
	shown       []*Figure
	blocked     []bool
}

func (d *fakeDisplay) Interactive() bool { return d.interactive }

func (d *fakeDisplay) Show(f *Figure, block bool) error {
	d.shown = append(d.shown, f)
	d.blocked = append(d.blocked, block)
	return nil
}

func TestRegistryTracksActiveFigure(t *testing.T) {
	defer ResetRegistry()

	require.Nil(t, ActiveFigure())

	f1, err := New(sine("a"))
	require.NoError(t, err)
	require.Same(t, f1, ActiveFigure())

	f2, err := New(sine("b"))
	require.NoError(t, err)
	require.Same(t, f2, ActiveFigure())

	f2.Close()
	require.Nil(t, ActiveFigure())

	// Closing a non-active figure does not clobber the registry.
	f3, err := New(sine("c"))
	require.NoError(t, err)
	f1.Close()
	require.Same(t, f3, ActiveFigure())
}

func TestShowUsesInjectedDisplay(t *testing.T) {
	defer ResetRegistry()

	d := &fakeDisplay{interactive: true}
	SetDisplay(d)

	f, err := New(sine("a"))
	require.NoError(t, err)

	require.NoError(t, f.Show(Off, true))
	require.NoError(t, f.Show(On, true))

	require.Equal(t, []*Figure{f, f}, d.shown)
	require.Equal(t, []bool{false, true}, d.blocked,
		"explicit block flags override auto-detection")
}

func TestShowHeadlessDefault(t *testing.T) {
	defer ResetRegistry()

	f, err := New(sine("a"))
	require.NoError(t, err)
	// The default display renders off-screen and never blocks.
	require.NoError(t, f.Show(Auto, false))
}
