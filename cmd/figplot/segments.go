package main

import (
	"math"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/astroviz/figure"
)

func newSegmentsCmd(opts *rootOpts) *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "segments",
		Short: "Render a noisy time series with a state-segments bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := figure.NewWithOptions(figure.Options{
				Title:  "Detector state",
				YLabel: "Strain",
			}, noisySeries("strain", 600))
			if err != nil {
				return err
			}
			defer f.Close()

			segs := &figure.SegmentSet{
				Name:   "locked",
				Known:  []figure.Span{{Start: 0, End: 600}},
				Active: []figure.Span{{Start: 40, End: 210}, {Start: 260, End: 420}, {Start: 470, End: 590}},
			}
			if _, err := f.AddSegmentsBar(segs, figure.SegmentsBarOptions{
				Location: location,
			}); err != nil {
				return err
			}
			return f.Save(opts.output)
		},
	}

	cmd.Flags().StringVar(&location, "location", "bottom",
		"bar placement, top or bottom")
	return cmd
}

func noisySeries(label string, dur float64) *figure.Series {
	const rate = 4.0
	rng := rand.New(rand.NewSource(42))
	y := make([]float64, int(dur*rate))
	for i := range y {
		t := float64(i) / rate
		y[i] = math.Sin(2*math.Pi*t/120) + 0.3*rng.NormFloat64()
	}
	return figure.NewTimeSeries(label, 0, 1/rate, y)
}
