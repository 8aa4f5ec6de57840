package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/spf13/cobra"
)

func newPlotCmd() *cobra.Command {
	var (
		name string
		from float64
		to   float64
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot a function with axes",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := namedFuncs[name]
			if !ok {
				return fmt.Errorf("unknown function %q", name)
			}
			cfg, err := loadWindowConfig(cmd)
			if err != nil {
				return err
			}
			w, err := openWindow(cfg)
			if err != nil {
				return err
			}
			defer w.Close()

			// Axes first, plot on top.
			r := w.Range()
			w.SetStrokeColor(color.RGBA{160, 160, 160, 255})
			w.SetStrokeThickness(1)
			w.DrawLine(-2*r, 0, 2*r, 0)
			w.DrawLine(0, -r, 0, r)

			w.SetStrokeColor(color.RGBA{30, 30, 200, 255})
			w.SetStrokeThickness(2)
			w.DrawFunc(f, from, to)
			w.DrawText(0.2, r-1, name)

			w.WaitForExit()
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "fn", "sin", "function to plot (sin, cos, sqr, inv)")
	cmd.Flags().Float64Var(&from, "from", -10, "left plot bound")
	cmd.Flags().Float64Var(&to, "to", 10, "right plot bound")
	return cmd
}

var namedFuncs = map[string]func(float64) float64{
	"sin": math.Sin,
	"cos": math.Cos,
	"sqr": func(x float64) float64 { return x * x },
	"inv": func(x float64) float64 { return 1 / x },
}
