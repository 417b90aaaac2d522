package commands

import (
	"github.com/spf13/cobra"

	"github.com/Distortions81/ambient/internal/manifest"
	"github.com/Distortions81/ambient/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Render the drone, then show the animation",
	Long: `Run both stages with one seed: export the drone WAV, then host the
shape animation until it is closed. Both are recorded in
{output}/manifest.yaml.`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	// newDriver runs after the export, so the window can loop the drone.
	res, err := pipeline.Run(ctx, cfg, manifest.New(cfg.ResolveSeed()), newDriver)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printSummary(out, "drone", res.Manifest, droneRows(res.Audio))
	printSummary(out, "animation", res.Manifest, animationRows(res.Animation))
	return nil
}

func init() {
	addAudioFlags(runCmd)
	addAnimationFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}
