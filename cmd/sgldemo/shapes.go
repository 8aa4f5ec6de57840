package main

import (
	"image/color"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
)

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "Draw a static arrangement of shapes",
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
			w.SetFillColor(color.RGBA{255, 200, 200, 255})
			if _, err := w.DrawRectangle(-8, -3, 4, 6); err != nil {
				return err
			}

			w.SetStrokeColor(color.RGBA{30, 30, 200, 255})
			w.SetFillColor(color.RGBA{})
			if _, err := w.DrawCircle(0, 0, 3); err != nil {
				return err
			}

			w.SetStrokeColor(color.RGBA{A: 255})
			w.DrawLine(4, -4, 8, 4)
			w.DrawPoint(6, 0)
			w.DrawText(0, -8, "close the window to quit")

			pslog.Ctx(cmd.Context()).Info("shapes drawn, waiting for window close")
			w.WaitForExit()
			return nil
		},
	}
}
