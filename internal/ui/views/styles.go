package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Dim           lipgloss.Style
	Prompt        lipgloss.Style
	PromptBusy    lipgloss.Style
	Busy          lipgloss.Style
	PresetKey     lipgloss.Style
	Preset        lipgloss.Style
	Notice        lipgloss.Style
	Summary       lipgloss.Style
	SummaryLabel  lipgloss.Style
	ResultsHead   lipgloss.Style
	Count         lipgloss.Style
	Card          lipgloss.Style
	Name          lipgloss.Style
	Email         lipgloss.Style
	Info          lipgloss.Style
	SkillTag      lipgloss.Style
	Role          lipgloss.Style
	Scroll        lipgloss.Style
	Help          lipgloss.Style
	HelpBox       lipgloss.Style
	Main          lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:        lipgloss.NewStyle().Faint(true),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		PromptBusy: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Busy:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		PresetKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Preset:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // red
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("203")).
			PaddingLeft(1),
		Summary: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("39")).
			PaddingLeft(1),
		SummaryLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		ResultsHead:  lipgloss.NewStyle().Bold(true),
		Count:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")), // green
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Email:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SkillTag: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("252")).Padding(0, 1),
		Role:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Scroll:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:     lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
