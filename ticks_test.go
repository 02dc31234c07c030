package figure

import (
	"strconv"
	"strings"
	"testing"

	"gonum.org/v1/plot"
)

func labelSuffixes(ticks []plot.Tick, suffix string) (labelled, matching int) {
	for _, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		labelled++
		if strings.HasSuffix(tk.Label, suffix) {
			matching++
		}
	}
	return labelled, matching
}

func TestRelTimeTicksUnit(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		suffix   string
	}{
		{"seconds", 0, 30, "s"},
		{"minutes", 0, 600, "min"},
		{"hours", 0, 4 * 3600, "h"},
		{"days", 0, 10 * 86400, "d"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ticks := relTimeTicks{Epoch: tc.min}.Ticks(tc.min, tc.max)
			labelled, matching := labelSuffixes(ticks, tc.suffix)
			if labelled == 0 {
				t.Fatal("no labelled ticks")
			}
			if matching != labelled {
				t.Errorf("%d of %d labels carry suffix %q",
					matching, labelled, tc.suffix)
			}
			for _, tk := range ticks {
				if tk.Value < tc.min || tk.Value > tc.max {
					t.Errorf("tick value %g outside [%g:%g]",
						tk.Value, tc.min, tc.max)
				}
			}
		})
	}
}

func TestRelTimeTicksEpochOffset(t *testing.T) {
	// With a non-zero epoch the labels count from the epoch, not from
	// zero: a 30s span starting at t=1000 has offsets well below 100.
	ticks := relTimeTicks{Epoch: 1000}.Ticks(1000, 1030)
	for _, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		off, err := strconv.ParseFloat(strings.TrimSuffix(tk.Label, "s"), 64)
		if err != nil {
			t.Fatalf("cannot parse label %q: %v", tk.Label, err)
		}
		if off < 0 || off > 100 {
			t.Errorf("label %q is not epoch-relative", tk.Label)
		}
	}
}

func TestBlankLabels(t *testing.T) {
	base := plot.DefaultTicks{}.Ticks(0, 10)
	blanked := blankLabels{plot.DefaultTicks{}}.Ticks(0, 10)
	if len(base) != len(blanked) {
		t.Fatalf("got %d ticks, want %d", len(blanked), len(base))
	}
	for i, tk := range blanked {
		if tk.Label != "" {
			t.Errorf("tick %d still labelled %q", i, tk.Label)
		}
		if tk.Value != base[i].Value {
			t.Errorf("tick %d moved: %g != %g", i, tk.Value, base[i].Value)
		}
	}
}
