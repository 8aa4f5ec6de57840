package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sgl "github.com/veselink1/SGL"
)

func newQuizCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Exercise the blocking dialogs",
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

			err = runQuiz(w)
			if errors.Is(err, sgl.ErrCanceled) {
				return nil // window closed mid-quiz
			}
			return err
		},
	}
}

func runQuiz(w *sgl.Window) error {
	name, err := w.ReadString("What is your name?", "")
	if err != nil {
		return err
	}
	w.DrawText(0, 8, "Hello, "+name)

	n, err := w.ReadInt("Pick a number of points (1-20)", 5)
	if err != nil {
		return err
	}
	if n < 1 {
		n = 1
	}
	if n > 20 {
		n = 20
	}
	for i := 0; i < n; i++ {
		w.DrawPoint(float64(i)-float64(n)/2, 0)
	}

	shape, err := w.SelectItem("Pick a shape", []string{"circle", "square"}, 0)
	if err != nil {
		return err
	}
	switch shape {
	case "circle":
		if _, err := w.DrawCircle(0, -5, 2); err != nil {
			return err
		}
	case "square":
		if _, err := w.DrawRectangle(-2, -7, 4, 4); err != nil {
			return err
		}
	}

	p, err := w.SelectPoint()
	if err != nil {
		return err
	}
	w.DrawPoint(p.X, p.Y)
	w.DrawText(p.X, p.Y+0.5, fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y))

	again, err := w.YesOrNo("Keep the window open?", true)
	if err != nil {
		return err
	}
	if !again {
		return nil
	}
	if err := w.Notify("Close the window when you are done."); err != nil {
		return err
	}
	w.WaitForExit()
	return nil
}
