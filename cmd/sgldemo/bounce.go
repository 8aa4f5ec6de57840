package main

import (
	"errors"
	"image/color"

	"github.com/spf13/cobra"

	sgl "github.com/veselink1/SGL"
	"github.com/veselink1/SGL/geom"
)

func newBounceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounce",
		Short: "Animate a ball bouncing inside the window range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadWindowConfig(cmd)
			if err != nil {
				return err
			}
			w, err := openWindow(cfg)
			if err != nil {
				return err
			}
			defer w.Close()

			w.SetStrokeColor(color.RGBA{200, 30, 30, 255})
			w.SetFillColor(color.RGBA{255, 120, 120, 255})

			const radius = 0.6
			limit := cfg.Range - radius
			x, y := 0.0, 2.0
			vx, vy := 4.5, 3.0

			var ball geom.Ellipse
			ball, err = geom.Circle(x, y, radius)
			if err != nil {
				return err
			}
			w.Draw(ball)

			for {
				dt, err := w.WaitForUpdate()
				if errors.Is(err, sgl.ErrCanceled) {
					return nil // window closed
				}
				if err != nil {
					return err
				}

				x += vx * dt.Seconds()
				y += vy * dt.Seconds()
				if x > limit {
					x, vx = limit, -vx
				}
				if x < -limit {
					x, vx = -limit, -vx
				}
				if y > limit {
					y, vy = limit, -vy
				}
				if y < -limit {
					y, vy = -limit, -vy
				}

				w.Erase(ball)
				ball, _ = geom.Circle(x, y, radius)
				w.Draw(ball)
			}
		},
	}
}
