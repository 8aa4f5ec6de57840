package main

import (
	"fmt"
	"image/color"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sgl "github.com/veselink1/SGL"
)

// windowConfig holds the window parameters shared by every demo,
// overridable from a YAML file passed with --config.
type windowConfig struct {
	Title      string
	Width      int
	Height     int
	Range      float64
	TargetFPS  int
	Background string
}

func defaultWindowConfig() windowConfig {
	return windowConfig{
		Title:      "SGL demo",
		Width:      800,
		Height:     600,
		Range:      10,
		TargetFPS:  60,
		Background: "#ffffff",
	}
}

func loadWindowConfig(cmd *cobra.Command) (windowConfig, error) {
	cfg := defaultWindowConfig()
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetDefault("window.title", cfg.Title)
	v.SetDefault("window.width", cfg.Width)
	v.SetDefault("window.height", cfg.Height)
	v.SetDefault("window.range", cfg.Range)
	v.SetDefault("window.target_fps", cfg.TargetFPS)
	v.SetDefault("window.background", cfg.Background)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.Title = v.GetString("window.title")
	cfg.Width = v.GetInt("window.width")
	cfg.Height = v.GetInt("window.height")
	cfg.Range = v.GetFloat64("window.range")
	cfg.TargetFPS = v.GetInt("window.target_fps")
	cfg.Background = v.GetString("window.background")
	return cfg, nil
}

// openWindow opens an SGL window configured per cfg.
func openWindow(cfg windowConfig) (*sgl.Window, error) {
	w, err := sgl.Open(
		sgl.WithTitle(cfg.Title),
		sgl.WithSize(cfg.Width, cfg.Height),
		sgl.WithRange(cfg.Range),
		sgl.WithTargetFPS(cfg.TargetFPS),
	)
	if err != nil {
		return nil, err
	}
	if bg, err := parseHexColor(cfg.Background); err == nil {
		w.SetBackground(bg)
	}
	return w, nil
}

// parseHexColor parses "#rgb" or "#rrggbb".
func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	switch len(s) {
	case 7:
		_, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
		return c, err
	case 4:
		_, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
		return c, err
	default:
		return c, fmt.Errorf("bad color %q", s)
	}
}
