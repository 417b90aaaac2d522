// Package manifest records which artifacts a run produced, so later stages
// can find the drone and animation output without guessing file names.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// FileName is the manifest's name inside the output directory.
const FileName = "manifest.yaml"

// Manifest describes one run's artifacts.
type Manifest struct {
	RunID     string     `yaml:"run_id"`
	CreatedAt string     `yaml:"created_at"`
	Seed      int64      `yaml:"seed"`
	Audio     *Audio     `yaml:"audio,omitempty"`
	Animation *Animation `yaml:"animation,omitempty"`
}

// Audio describes the exported drone.
type Audio struct {
	Path          string  `yaml:"path"`
	SampleRate    int     `yaml:"sample_rate"`
	DurationMs    int64   `yaml:"duration_ms"`
	BaseFrequency float64 `yaml:"base_frequency"`
	Steps         int     `yaml:"steps"`
	Onsets        int     `yaml:"onsets"`
	OffsetMode    string  `yaml:"offset_mode"`
}

// Animation describes a finished animation session.
type Animation struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	FPS         int    `yaml:"fps"`
	Headless    bool   `yaml:"headless"`
	Ticks       int    `yaml:"ticks"`
	ShapesDrawn int    `yaml:"shapes_drawn"`
	Snapshot    string `yaml:"snapshot,omitempty"`
}

// New returns an empty manifest with a fresh run id.
func New(seed int64) *Manifest {
	return &Manifest{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Seed:      seed,
	}
}

// Path returns the manifest path inside dir.
func Path(dir string) string { return filepath.Join(dir, FileName) }

// Write stores m as dir/manifest.yaml, replacing any earlier run's record.
func (m *Manifest) Write(dir string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(Path(dir), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Read loads dir/manifest.yaml.
func Read(dir string) (*Manifest, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &m, nil
}
