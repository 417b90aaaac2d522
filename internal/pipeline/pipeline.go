package pipeline

import (
	"context"

	"github.com/Distortions81/ambient/internal/config"
	"github.com/Distortions81/ambient/internal/manifest"
)

// DriverFactory builds the animation host once the drone has been exported.
type DriverFactory func(cfg *config.Config) Driver

// Result holds both stage results of a full run.
type Result struct {
	Manifest  *manifest.Manifest
	Audio     *AudioResult
	Animation *AnimationResult
}

// Run validates cfg, prepares the output directory, exports the drone and
// then hosts the animation with the driver from newDriver. Both stages are
// recorded in m.
func Run(ctx context.Context, cfg *config.Config, m *manifest.Manifest, newDriver DriverFactory) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	audio, err := Drone(cfg, m)
	if err != nil {
		return nil, err
	}
	anim, err := Animate(ctx, cfg, m, newDriver(cfg))
	if err != nil {
		return nil, err
	}
	return &Result{Manifest: m, Audio: audio, Animation: anim}, nil
}
