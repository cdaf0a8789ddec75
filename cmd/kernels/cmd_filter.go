package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/kernels"
)

var (
	filterOutput   string
	filterRadius   int
	filterStrength int
	filterWorkers  int
)

var filterCmd = &cobra.Command{
	Use:   "filter <grayscale|invert|blur|edge|sharpen> <input.png>",
	Short: "Apply an image filter to a PNG file",
	Args:  cobra.ExactArgs(2),
	RunE:  runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterOutput, "output", "o", "out.png", "output PNG path")
	filterCmd.Flags().IntVar(&filterRadius, "radius", 5, "blur radius in pixels")
	filterCmd.Flags().IntVar(&filterStrength, "strength", 100, "sharpen strength (percent)")
	filterCmd.Flags().IntVar(&filterWorkers, "workers", 1, "row-parallel workers for blur")
}

func runFilter(cmd *cobra.Command, args []string) error {
	name, input := args[0], args[1]

	pm, err := kernels.LoadPNG(input)
	if err != nil {
		return err
	}

	var out *kernels.Pixmap
	switch name {
	case "grayscale":
		out = pm.Grayscale()
	case "invert":
		out = pm.Invert()
	case "blur":
		out, err = pm.Blur(filterRadius, kernels.WithParallelism(filterWorkers))
	case "edge":
		out = pm.EdgeDetect()
	case "sharpen":
		out, err = pm.Sharpen(filterStrength)
	default:
		return fmt.Errorf("unknown filter %q", name)
	}
	if err != nil {
		return err
	}

	if err := out.SavePNG(filterOutput); err != nil {
		return err
	}

	fmt.Printf("%s: %s (%dx%d) -> %s\n", name, input, pm.Width(), pm.Height(), filterOutput)
	return nil
}

var (
	mandelWidth   int
	mandelHeight  int
	mandelIters   int
	mandelOutput  string
	mandelWorkers int
)

var mandelbrotCmd = &cobra.Command{
	Use:   "mandelbrot",
	Short: "Render the Mandelbrot set to a PNG file",
	Args:  cobra.NoArgs,
	RunE:  runMandelbrot,
}

func init() {
	mandelbrotCmd.Flags().IntVar(&mandelWidth, "width", 1024, "image width")
	mandelbrotCmd.Flags().IntVar(&mandelHeight, "height", 585, "image height")
	mandelbrotCmd.Flags().IntVar(&mandelIters, "iters", 256, "maximum iterations per pixel")
	mandelbrotCmd.Flags().StringVarP(&mandelOutput, "output", "o", "mandelbrot.png", "output PNG path")
	mandelbrotCmd.Flags().IntVar(&mandelWorkers, "workers", 1, "row-parallel workers")
}

func runMandelbrot(cmd *cobra.Command, args []string) error {
	buf, err := kernels.Mandelbrot(mandelWidth, mandelHeight, mandelIters,
		kernels.WithParallelism(mandelWorkers))
	if err != nil {
		return err
	}

	pm, err := kernels.FromData(buf, mandelWidth, mandelHeight)
	if err != nil {
		return err
	}

	if err := pm.SavePNG(mandelOutput); err != nil {
		return err
	}

	fmt.Printf("mandelbrot: %dx%d, %d iterations -> %s\n",
		mandelWidth, mandelHeight, mandelIters, mandelOutput)
	return nil
}
