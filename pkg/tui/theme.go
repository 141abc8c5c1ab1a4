package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/zentask/pkg/task"
)

// Styles centralizes the Lip Gloss styles of the board.
type Styles struct {
	App       lipgloss.Style
	Sidebar   lipgloss.Style
	Main      lipgloss.Style
	Title     lipgloss.Style
	Section   lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Active    lipgloss.Style
	Done      lipgloss.Style
	Dim       lipgloss.Style
	High      lipgloss.Style
	Medium    lipgloss.Style
	Low       lipgloss.Style
	Deadline  lipgloss.Style
	Overdue   lipgloss.Style
	Status    lipgloss.Style
	Reminder  lipgloss.Style
	Prompt    lipgloss.Style
	FocusEdge lipgloss.Color
	Edge      lipgloss.Color
}

type palette struct {
	fg, dim, accent, selection, edge, warn, danger, ok lipgloss.Color
}

var palettes = map[task.Theme]palette{
	task.ThemeLight: {
		fg: "#1f2937", dim: "#9ca3af", accent: "#3b82f6", selection: "#dbeafe",
		edge: "#d1d5db", warn: "#d97706", danger: "#dc2626", ok: "#16a34a",
	},
	task.ThemeDark: {
		fg: "#c0caf5", dim: "#565f89", accent: "#7aa2f7", selection: "#33467c",
		edge: "#3b4261", warn: "#e0af68", danger: "#f7768e", ok: "#9ece6a",
	},
	task.ThemeBlack: {
		fg: "#e5e5e5", dim: "#6b6b6b", accent: "#a78bfa", selection: "#262626",
		edge: "#333333", warn: "#fbbf24", danger: "#f87171", ok: "#4ade80",
	},
}

// NewStyles builds the styles for a user theme. Unknown themes use light.
func NewStyles(t task.Theme) Styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[task.ThemeLight]
	}
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.edge).
		Padding(0, 1)

	return Styles{
		App:       lipgloss.NewStyle().Foreground(p.fg),
		Sidebar:   pane,
		Main:      pane,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Section:   lipgloss.NewStyle().Bold(true).Underline(true),
		Item:      lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Background(p.selection).Bold(true),
		Active:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(p.dim).Strikethrough(true),
		Dim:       lipgloss.NewStyle().Foreground(p.dim),
		High:      lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		Medium:    lipgloss.NewStyle().Foreground(p.warn),
		Low:       lipgloss.NewStyle().Foreground(p.dim),
		Deadline:  lipgloss.NewStyle().Foreground(p.dim),
		Overdue:   lipgloss.NewStyle().Foreground(p.danger),
		Status:    lipgloss.NewStyle().Foreground(p.dim),
		Reminder:  lipgloss.NewStyle().Foreground(p.warn).Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(p.ok).Bold(true),
		FocusEdge: p.accent,
		Edge:      p.edge,
	}
}
