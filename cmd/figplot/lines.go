package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/astroviz/figure"
)

func newLinesCmd(opts *rootOpts) *cobra.Command {
	var (
		separate bool
		sharex   string
		yscale   string
	)

	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Render damped sine waves on one or more panels",
		RunE: func(cmd *cobra.Command, args []string) error {
			share, err := figure.ParseShare(sharex)
			if err != nil {
				return err
			}
			ys, err := figure.ParseScaleType(yscale)
			if err != nil {
				return err
			}
			sep := figure.Auto
			if separate {
				sep = figure.On
			}
			f, err := figure.NewWithOptions(figure.Options{
				Title:    "Damped oscillators",
				Separate: sep,
				SharedX:  share,
				YScale:   ys,
				XLabel:   "Time [s]",
				YLabel:   "Amplitude",
			},
				dampedSine("f=1Hz", 1, 0.2),
				dampedSine("f=2Hz", 2, 0.5),
				dampedSine("f=4Hz", 4, 1.0),
			)
			if err != nil {
				return err
			}
			defer f.Close()
			return f.Save(opts.output)
		},
	}

	cmd.Flags().BoolVar(&separate, "separate", false,
		"one panel per wave instead of overlaying them")
	cmd.Flags().StringVar(&sharex, "sharex", "none",
		"link the x axes across panels: none, all, row or col")
	cmd.Flags().StringVar(&yscale, "yscale", "",
		"y-axis scale: linear or log")
	return cmd
}

func dampedSine(label string, freq, decay float64) *figure.Series {
	y := make([]float64, 512)
	for i := range y {
		t := float64(i) / 64
		y[i] = math.Exp(-decay*t) * math.Sin(2*math.Pi*freq*t)
	}
	return figure.NewTimeSeries(label, 0, 1.0/64, y)
}
