package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"empsearch/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	noteStyle    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		noteStyle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// Render renders the help overlay body for keys
func (r *HelpRenderer) Render(keys types.KeyMap) string {
	sections := []helpSection{
		{"Search", []key.Binding{keys.Submit, keys.Browse, keys.Edit, keys.Presets}},
		{"Results", []key.Binding{keys.Up, keys.Down, keys.PageUp, keys.PageDown, keys.Home, keys.End, keys.Pager}},
		{"Other", []key.Binding{keys.Dismiss, keys.Help, keys.Quit, keys.ForceQuit}},
	}

	width := 0
	for _, s := range sections {
		for _, b := range s.bindings {
			width = max(width, lipgloss.Width(b.Help().Key))
		}
	}

	var help strings.Builder
	for i, s := range sections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(r.sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			pad := strings.Repeat(" ", width-lipgloss.Width(h.Key))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", r.keyStyle.Render(h.Key), pad, r.descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(r.noteStyle.Render("Letter keys are commands only while browsing; press / to type again."))

	return help.String()
}
