package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sgl "github.com/veselink1/SGL"
)

// sceneFile is a YAML description of a drawing, for example:
//
//	range: 10
//	background: "#202030"
//	shapes:
//	  - {type: rect, x: -4, y: -2, width: 8, height: 4, stroke: "#ffffff"}
//	  - {type: circle, x: 0, y: 0, r: 1.5, fill: "#d04040"}
//	  - {type: label, x: 0, y: 5, text: hello, stroke: "#ffffff"}
type sceneFile struct {
	Range      float64      `yaml:"range"`
	Background string       `yaml:"background"`
	Shapes     []sceneShape `yaml:"shapes"`
}

type sceneShape struct {
	Type      string  `yaml:"type"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	X2        float64 `yaml:"x2"`
	Y2        float64 `yaml:"y2"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	RX        float64 `yaml:"rx"`
	RY        float64 `yaml:"ry"`
	R         float64 `yaml:"r"`
	Text      string  `yaml:"text"`
	Stroke    string  `yaml:"stroke"`
	Fill      string  `yaml:"fill"`
	Thickness float64 `yaml:"thickness"`
}

func newSceneCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Draw a scene described by a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var scene sceneFile
			if err := yaml.Unmarshal(data, &scene); err != nil {
				return fmt.Errorf("parse scene %s: %w", file, err)
			}

			cfg, err := loadWindowConfig(cmd)
			if err != nil {
				return err
			}
			if scene.Range > 0 {
				cfg.Range = scene.Range
			}
			if scene.Background != "" {
				cfg.Background = scene.Background
			}
			w, err := openWindow(cfg)
			if err != nil {
				return err
			}
			defer w.Close()

			for i, s := range scene.Shapes {
				if err := drawSceneShape(w, s); err != nil {
					return fmt.Errorf("shape %d: %w", i, err)
				}
			}
			w.WaitForExit()
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "scene.yaml", "scene description file")
	return cmd
}

func drawSceneShape(w *sgl.Window, s sceneShape) error {
	if s.Stroke != "" {
		c, err := parseHexColor(s.Stroke)
		if err != nil {
			return err
		}
		w.SetStrokeColor(c)
	}
	if s.Fill != "" {
		c, err := parseHexColor(s.Fill)
		if err != nil {
			return err
		}
		w.SetFillColor(c)
	}
	if s.Thickness > 0 {
		w.SetStrokeThickness(s.Thickness)
	}

	switch s.Type {
	case "point":
		w.DrawPoint(s.X, s.Y)
	case "line":
		w.DrawLine(s.X, s.Y, s.X2, s.Y2)
	case "rect":
		_, err := w.DrawRectangle(s.X, s.Y, s.Width, s.Height)
		return err
	case "ellipse":
		_, err := w.DrawEllipse(s.X, s.Y, s.RX, s.RY)
		return err
	case "circle":
		_, err := w.DrawCircle(s.X, s.Y, s.R)
		return err
	case "label":
		w.DrawText(s.X, s.Y, s.Text)
	default:
		return fmt.Errorf("unknown shape type %q", s.Type)
	}
	return nil
}
