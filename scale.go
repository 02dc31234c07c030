package figure

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects how an axis maps and labels its data.
type ScaleType int

const (
	// ScaleDefault leaves the choice to the figure: the x-scale is probed
	// from the data units, everything else falls back to linear.
	ScaleDefault ScaleType = iota
	ScaleLinear
	ScaleLog
	// ScaleAutoTime is a linear scale whose ticks are labelled as offsets
	// from a reference epoch, with an automatically chosen step unit.
	ScaleAutoTime
)

// String returns the name of st.
func (st ScaleType) String() string {
	return []string{"default", "linear", "log", "auto-time"}[int(st)]
}

// ParseScaleType parses the names accepted on the command line and in rc
// files: "linear", "log" and "auto-time". The empty string is ScaleDefault.
func ParseScaleType(s string) (ScaleType, error) {
	switch strings.ToLower(s) {
	case "":
		return ScaleDefault, nil
	case "linear":
		return ScaleLinear, nil
	case "log":
		return ScaleLog, nil
	case "auto-time":
		return ScaleAutoTime, nil
	}
	return ScaleDefault, configErrorf("unknown scale type %q", s)
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval. Both edges
// may be NaN indicating that this edge is not set.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j are equal, treating NaN edges as equal.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// ----------------------------------------------------------------------------
// Scale

// A Scale is the range of one axis. Axes that share an axis hold the same
// *Scale, so resolving the scale once ranges all of them identically.
type Scale struct {
	// Type determines the fundamental nature of the scale.
	Type ScaleType

	// Data is the range covered by the actual data. It is re-learned on
	// every render.
	Data Interval

	// Interval is the resolved range of the scale. It may be larger or
	// smaller than the Data range.
	Interval

	// Autoscaling controls how Data becomes Interval.
	Autoscaling

	// Epoch is the reference value of an auto-time scale, set during
	// resolution to the left edge of the range.
	Epoch float64
}

// NewScale returns a scale of the given type which autoscales to the data
// with a 5% relative expansion. ScaleDefault is stored as ScaleLinear.
func NewScale(t ScaleType) *Scale {
	if t == ScaleDefault {
		t = ScaleLinear
	}
	s := &Scale{
		Type:     t,
		Data:     unsetInterval(),
		Interval: unsetInterval(),
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
	}
	s.Expand.Relative = 0.05
	return s
}

// FixMin fixes the resolved min of s to x, bypassing autoscaling.
func (s *Scale) FixMin(x float64) {
	s.MinRange.Min = x
	s.MinRange.Max = x
}

// FixMax fixes the resolved max of s to x, bypassing autoscaling.
func (s *Scale) FixMax(x float64) {
	s.MaxRange.Min = x
	s.MaxRange.Max = x
}

// HasData reports whether the Data interval of s is valid.
func (s *Scale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.Type)
}

// autoscale turns the learned data range into the resolved scale range.
func (s *Scale) autoscale() {
	if !s.HasData() {
		return
	}

	ext := s.Expand.Relative*(s.Data.Max-s.Data.Min) + s.Expand.Absolute

	// Left edge.
	if s.MinRange.Min == s.MinRange.Max {
		// Degenerate MinRange and not NaN: a fixed Min.
		s.Min = s.MinRange.Min
	} else {
		s.Min = s.Data.Min
		if s.Type == ScaleLog {
			if ext > 0 {
				s.Min /= 1 + ext
			}
		} else {
			s.Min -= ext
		}
		// Clip autoscaling.
		if s.MinRange.Min > s.Min {
			s.Min = s.MinRange.Min
		}
		if s.MinRange.Max < s.Min {
			s.Min = s.MinRange.Max
		}
	}

	// Right edge.
	if s.MaxRange.Min == s.MaxRange.Max {
		s.Max = s.MaxRange.Min
	} else {
		s.Max = s.Data.Max
		if s.Type == ScaleLog {
			if ext > 0 {
				s.Max *= 1 + ext
			}
		} else {
			s.Max += ext
		}
		if s.MaxRange.Min > s.Max {
			s.Max = s.MaxRange.Min
		}
		if s.MaxRange.Max < s.Max {
			s.Max = s.MaxRange.Max
		}
	}
}

// deDegenerate makes sure the resolved range is usable by gonum's axis
// layout: unset edges become [-1,1], a collapsed range is widened.
func (s *Scale) deDegenerate() {
	if math.IsNaN(s.Min) {
		s.Min = -1
	}
	if math.IsNaN(s.Max) {
		s.Max = 1
	}
	if s.Min == s.Max {
		s.Min--
		s.Max++
	}
}

// clampLogRange keeps the resolved range of a log scale positive, which
// gonum's LogScale normalizer requires. Data touching zero gets a min four
// decades below the max; an entirely non-positive range cannot be mapped
// at all.
func (s *Scale) clampLogRange() error {
	if s.Max <= 0 {
		return configErrorf("cannot fit the non-positive range [%g:%g] on a log scale",
			s.Min, s.Max)
	}
	if s.Min <= 0 {
		s.Min = s.Max / 1e4
	}
	return nil
}

// apply pushes the resolved range onto a gonum axis and installs the
// normalizer and ticker matching the scale type.
func (s *Scale) apply(ax *plot.Axis) {
	ax.Min, ax.Max = s.Min, s.Max
	switch s.Type {
	case ScaleLog:
		ax.Scale = plot.LogScale{}
		ax.Tick.Marker = plot.LogTicks{}
	case ScaleAutoTime:
		ax.Scale = plot.LinearScale{}
		ax.Tick.Marker = relTimeTicks{Epoch: s.Epoch}
	default:
		ax.Scale = plot.LinearScale{}
		ax.Tick.Marker = plot.DefaultTicks{}
	}
}

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max of a scale are derived from the
// data. Setting a range to a degenerate interval [f:f] turns autoscaling
// off and fixes that edge to f. A non-degenerate range [u:v] allows
// autoscaling between u and v; a NaN works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // allowed range of the scale's Min
	MaxRange Interval // allowed range of the scale's Max
}
