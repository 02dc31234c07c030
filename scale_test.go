package figure

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestScaleAutoscale(t *testing.T) {
	s := NewScale(ScaleLinear)
	s.Data.Update(0, 10)
	s.autoscale()
	if s.Min != -0.5 || s.Max != 10.5 {
		t.Errorf("autoscale = [%g:%g], want [-0.5:10.5]", s.Min, s.Max)
	}

	s = NewScale(ScaleLinear)
	s.Data.Update(0, 10)
	s.FixMin(0)
	s.autoscale()
	if s.Min != 0 || s.Max != 10.5 {
		t.Errorf("autoscale with fixed min = [%g:%g], want [0:10.5]", s.Min, s.Max)
	}

	s = NewScale(ScaleLinear)
	s.Expand.Relative = 0
	s.Data.Update(2, 8)
	s.autoscale()
	if s.Min != 2 || s.Max != 8 {
		t.Errorf("tight autoscale = [%g:%g], want [2:8]", s.Min, s.Max)
	}
}

func TestScaleDeDegenerate(t *testing.T) {
	s := NewScale(ScaleLinear)
	s.deDegenerate()
	if s.Min != -1 || s.Max != 1 {
		t.Errorf("unset scale = [%g:%g], want [-1:1]", s.Min, s.Max)
	}

	s = NewScale(ScaleLinear)
	s.Min, s.Max = 5, 5
	s.deDegenerate()
	if s.Min != 4 || s.Max != 6 {
		t.Errorf("collapsed scale = [%g:%g], want [4:6]", s.Min, s.Max)
	}
}

func TestScaleClampLogRange(t *testing.T) {
	s := NewScale(ScaleLog)
	s.Min, s.Max = 0, 100
	if err := s.clampLogRange(); err != nil {
		t.Fatal(err)
	}
	if s.Min != 0.01 {
		t.Errorf("clamped min = %g, want 0.01", s.Min)
	}

	s.Min, s.Max = -5, 0
	if err := s.clampLogRange(); err == nil {
		t.Error("non-positive range: want error")
	}
}

func TestParseScaleType(t *testing.T) {
	tests := []struct {
		in      string
		want    ScaleType
		wantErr bool
	}{
		{"", ScaleDefault, false},
		{"linear", ScaleLinear, false},
		{"log", ScaleLog, false},
		{"auto-time", ScaleAutoTime, false},
		{"banana", ScaleDefault, true},
	}
	for _, tc := range tests {
		got, err := ParseScaleType(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseScaleType(%q) = (%v, %v), want (%v, err=%t)",
				tc.in, got, err, tc.want, tc.wantErr)
		}
	}
}
