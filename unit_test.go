package figure

import "testing"

func TestProbeXScale(t *testing.T) {
	ts1 := NewTimeSeries("a", 0, 1, []float64{1, 2})
	ts2 := NewTimeSeries("b", 100, 0.5, []float64{3, 4})
	freq := &Series{Label: "asd", DX: 1, Y: []float64{1}, Unit: Hertz}
	plain := NewSeries("p", 0, 1, []float64{1})

	tests := []struct {
		name string
		data []Dataset
		want ScaleType
		ok   bool
	}{
		{"all time", []Dataset{ts1, ts2}, ScaleAutoTime, true},
		{"mixed units", []Dataset{ts1, freq}, ScaleDefault, false},
		{"single non-time unit", []Dataset{freq}, ScaleDefault, false},
		{"dimensionless", []Dataset{plain}, ScaleDefault, false},
		{"no units at all", []Dataset{1, 2}, ScaleDefault, false},
		{"unitless ignored", []Dataset{ts1, 5}, ScaleAutoTime, true},
		{"empty", nil, ScaleDefault, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := probeXScale(tc.data)
			if got != tc.want || ok != tc.ok {
				t.Errorf("probeXScale = (%v, %t), want (%v, %t)",
					got, ok, tc.want, tc.ok)
			}
		})
	}
}
