package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/Distortions81/ambient/internal/config"
	"github.com/Distortions81/ambient/internal/profiling"
)

var (
	// Global flags
	configPath string
	outputDir  string
	seed       int64
	verbose    bool
	cpuProfile string

	stopProfile func()
)

var rootCmd = &cobra.Command{
	Use:   "ambient",
	Short: "Microtonal drone and generative shape animation",
	Long: `ambient - renders a syncopated microtonal drone around B-flat and shows a
generative animation of translucent blue and green discs.

Configuration is layered: built-in defaults, then the YAML file given with
--config, then AMBIENT_* environment variables, then command-line flags.

Examples:
  # Render the 60 second drone into ./out
  ambient drone -o out --seed 42

  # Watch the animation with the drone looping underneath
  ambient run -o out --play-drone

  # Render 90 frames headless and keep the last one
  ambient animate --headless --frames 90 --snapshot last.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetPrefix("ambient: ")
		if cpuProfile == "" {
			return nil
		}
		stop, err := profiling.StartCPU(cpuProfile)
		if err != nil {
			return err
		}
		stopProfile = stop
		return nil
	},
}

// Execute runs the root command. A CPU profile started by --cpuprofile is
// flushed whether or not the command succeeds.
func Execute() error {
	defer finishProfile()
	return rootCmd.Execute()
}

func finishProfile() {
	if stopProfile != nil {
		stopProfile()
		stopProfile = nil
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.StringVarP(&outputDir, "output", "o", ".", "output directory for the drone, manifest and snapshots")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// loadConfig layers the config file, environment and the flags set on cmd,
// then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	applyAudioFlags(cmd, cfg)
	applyAnimationFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if IsVerbose() {
		if data, err := yaml.Marshal(cfg); err == nil {
			fmt.Fprintf(os.Stderr, "Effective config:\n%s\n", data)
		}
	}
	return cfg, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}
