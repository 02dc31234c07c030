// Command figplot renders example figures to image files. It exercises the
// figure package end to end: grouped line panels, heat maps with colorbars,
// and time series with segment bars.
//
//	figplot lines -o lines.png
//	figplot heatmap -o spectro.png
//	figplot segments -o segments.svg --verbose
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/astroviz/figure"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOpts struct {
	output  string
	rcFile  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:           "figplot",
		Short:         "Render example multi-panel figures",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				figure.Logger().SetLevel(log.DebugLevel)
			}
			if opts.rcFile != "" {
				rc, err := figure.LoadRC(opts.rcFile)
				if err != nil {
					return err
				}
				figure.SetRC(rc)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "figure.png",
		"output file; the extension selects the format (png, svg, pdf, eps, ...)")
	cmd.PersistentFlags().StringVar(&opts.rcFile, "rc", "",
		"TOML rc file with figure defaults")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"enable debug logging")

	cmd.AddCommand(newLinesCmd(opts))
	cmd.AddCommand(newHeatmapCmd(opts))
	cmd.AddCommand(newSegmentsCmd(opts))
	return cmd
}
