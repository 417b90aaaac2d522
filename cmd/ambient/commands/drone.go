package commands

import (
	"github.com/spf13/cobra"

	"github.com/Distortions81/ambient/internal/manifest"
	"github.com/Distortions81/ambient/internal/pipeline"
)

var droneCmd = &cobra.Command{
	Use:   "drone",
	Short: "Render the microtonal B-flat drone to WAV",
	Long: `Generate a random syncopated rhythm, mix a short detuned sine for every
onset and export the result as 16-bit mono WAV:

  {output}/microtonal_bflat_syncopated_drone.wav

The file always lasts --length-ms, however many onsets the rhythm has.`,
	Args: cobra.NoArgs,
	RunE: runDrone,
}

func runDrone(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		return err
	}
	m := manifest.New(cfg.ResolveSeed())
	res, err := pipeline.Drone(cfg, m)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), "drone", m, droneRows(res))
	return nil
}

func init() {
	addAudioFlags(droneCmd)
	rootCmd.AddCommand(droneCmd)
}
