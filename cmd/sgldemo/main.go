// Command sgldemo exercises the SGL library: static shapes, function
// plotting, a bouncing-ball animation, an interactive quiz, and
// YAML-described scenes.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	sgl "github.com/veselink1/SGL"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	// Route the library's internal logging through the same sink.
	sgl.SetLogger(slog.New(slog.NewTextHandler(
		pslog.LogLogger(logger).Writer(),
		&slog.HandlerOptions{Level: slog.LevelInfo},
	)))

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("sgldemo command failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sgldemo",
		Short:         "Demos for the SGL teaching graphics library",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().String("config", "", "path to a YAML window config")

	root.AddCommand(newShapesCmd())
	root.AddCommand(newPlotCmd())
	root.AddCommand(newBounceCmd())
	root.AddCommand(newQuizCmd())
	root.AddCommand(newSceneCmd())

	return root
}
