// Command kernels runs the image filters and benchmark kernels from
// the command line.
//
// Examples:
//
//	kernels filter blur input.png -o blurred.png --radius 8
//	kernels mandelbrot -o fractal.png --width 1024 --height 585
//	kernels bench all
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/kernels"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "kernels",
	Short: "Stateless image filter and benchmark kernels",
	Long: `kernels applies the gogpu/kernels image filters to PNG files and
runs the pure numeric benchmark kernels, printing per-kernel timings.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			kernels.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"emit per-kernel trace lines to stderr")

	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(mandelbrotCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
