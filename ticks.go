package figure

import (
	"strconv"

	"gonum.org/v1/plot"
)

// tickUnits are the step units a relative-time axis chooses from, widest
// first.
var tickUnits = []struct {
	seconds float64
	suffix  string
}{
	{86400, "d"},
	{3600, "h"},
	{60, "min"},
	{1, "s"},
}

// relTimeTicks labels ticks as offsets from a reference epoch. The step
// unit is chosen so that the visible span covers at least two steps:
// seconds, minutes, hours or days.
type relTimeTicks struct {
	Epoch float64
}

// Ticks implements plot.Ticker.
func (t relTimeTicks) Ticks(min, max float64) []plot.Tick {
	unit, suffix := 1.0, "s"
	span := max - min
	for _, u := range tickUnits {
		if span >= 2*u.seconds {
			unit, suffix = u.seconds, u.suffix
			break
		}
	}

	ticks := plot.DefaultTicks{}.Ticks((min-t.Epoch)/unit, (max-t.Epoch)/unit)
	for i := range ticks {
		off := ticks[i].Value
		ticks[i].Value = t.Epoch + off*unit
		if ticks[i].Label != "" {
			ticks[i].Label = strconv.FormatFloat(off, 'g', -1, 64) + suffix
		}
	}
	return ticks
}

// blankLabels keeps the tick marks of the wrapped ticker but drops their
// labels. Used on axes whose labels are owned by an attached axes, e.g. an
// anchor with a segments bar below it.
type blankLabels struct {
	plot.Ticker
}

// Ticks implements plot.Ticker.
func (b blankLabels) Ticks(min, max float64) []plot.Tick {
	ticks := b.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
