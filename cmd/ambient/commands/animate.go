package commands

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Distortions81/ambient/internal/animation"
	"github.com/Distortions81/ambient/internal/config"
	"github.com/Distortions81/ambient/internal/display"
	"github.com/Distortions81/ambient/internal/manifest"
	"github.com/Distortions81/ambient/internal/pipeline"
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Show the generative shape animation",
	Long: `Open a window and draw translucent blue and green discs at random
positions, redrawing every tick. Close the window or press Escape to stop.

With --headless the loop runs on a timer without a window; combine it with
--frames and --snapshot to render frames in CI.`,
	Args: cobra.NoArgs,
	RunE: runAnimate,
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	m := manifest.New(cfg.ResolveSeed())
	res, err := pipeline.Animate(ctx, cfg, m, newDriver(cfg))
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), "animation", m, animationRows(res))
	return nil
}

// newDriver picks the headless timer or the window host.
func newDriver(cfg *config.Config) pipeline.Driver {
	a := cfg.Animation
	if a.Headless {
		return pipeline.Headless{Interval: animation.FrameInterval(a.FPS)}
	}
	w := display.Window{
		Title:  a.Title,
		Scale:  a.Scale,
		FPS:    a.FPS,
		Debug:  a.Debug,
		Volume: a.Volume,
	}
	if a.PlayDrone {
		path := pipeline.DronePath(cfg)
		if _, err := os.Stat(path); err == nil {
			w.DronePath = path
		} else {
			log.Printf("no drone at %s, playing silently", path)
		}
	}
	return w
}

func init() {
	addAnimationFlags(animateCmd)
	rootCmd.AddCommand(animateCmd)
}
