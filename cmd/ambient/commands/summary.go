package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Distortions81/ambient/internal/manifest"
	"github.com/Distortions81/ambient/internal/pipeline"
)

var (
	accent = lipgloss.Color("#00ff9f")
	dim    = lipgloss.Color("#6e7681")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle = lipgloss.NewStyle().Foreground(dim).Width(10)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

type row struct{ label, value string }

// printSummary renders a bordered key/value block for one stage.
func printSummary(w io.Writer, stage string, m *manifest.Manifest, rows []row) {
	lines := []string{titleStyle.Render(stage)}
	rows = append([]row{{"run", m.RunID}, {"seed", fmt.Sprint(m.Seed)}}, rows...)
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), r.value))
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

func droneRows(res *pipeline.AudioResult) []row {
	return []row{
		{"file", res.Path},
		{"length", res.Info.Duration.String()},
		{"format", fmt.Sprintf("%d Hz, %d-bit, %d ch", res.Info.SampleRate, res.Info.BitDepth, res.Info.Channels)},
		{"rhythm", fmt.Sprintf("%d/%d onsets", res.Pattern.Onsets(), res.Pattern.Len())},
		{"peak", fmt.Sprint(res.Peak)},
	}
}

func animationRows(res *pipeline.AnimationResult) []row {
	rows := []row{
		{"state", res.State.String()},
		{"ticks", fmt.Sprint(res.Ticks)},
		{"frames", fmt.Sprint(res.Frames)},
		{"shapes", fmt.Sprint(res.ShapesDrawn)},
	}
	if res.Snapshot != "" {
		rows = append(rows, row{"snapshot", res.Snapshot})
	}
	return rows
}
