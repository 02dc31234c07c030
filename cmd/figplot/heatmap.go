package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/astroviz/figure"
)

func newHeatmapCmd(opts *rootOpts) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Render a synthetic spectrogram with a colorbar",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := figure.ParseMethod(method)
			if err != nil {
				return err
			}
			f, err := figure.NewWithOptions(figure.Options{
				Title:  "Synthetic spectrogram",
				Method: m,
				XLabel: "Time [s]",
				YLabel: "Frequency [Hz]",
			}, chirpGrid())
			if err != nil {
				return err
			}
			defer f.Close()

			if _, err := f.Colorbar(figure.ColorbarOptions{Label: "Power"}); err != nil {
				return err
			}
			return f.Save(opts.output)
		},
	}

	cmd.Flags().StringVar(&method, "method", "heatmap",
		"image drawing method: heatmap or mesh")
	return cmd
}

// chirpGrid builds a time-frequency power grid with a rising track.
func chirpGrid() *figure.GridData {
	const (
		nt, nf = 128, 64
		dt     = 0.25
		df     = 1.0
	)
	g := &figure.GridData{
		DX:   dt,
		YMin: 1,
		DY:   df,
		Rows: make([][]float64, nf),
		Unit: figure.Second,
	}
	for r := range g.Rows {
		g.Rows[r] = make([]float64, nt)
	}
	for c := 0; c < nt; c++ {
		t := float64(c) * dt
		track := 2 + t // chirp ridge in Hz
		for r := 0; r < nf; r++ {
			freq := 1 + float64(r)*df
			d := (freq - track) / 3
			g.Rows[r][c] = math.Exp(-d * d)
		}
	}
	return g
}
