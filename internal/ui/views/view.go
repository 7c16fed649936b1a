package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"empsearch/internal/domain"
)

// ReadyMarker is appended to the first frames when running under the e2e
// harness so it can tell the program has drawn
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	InputView    string // rendered text input
	Editing      bool   // query mode vs browse mode
	Busy         bool
	Spinner      string
	State        domain.RequestState
	Employees    []domain.Employee
	Summary      string
	Notice       string
	LastQuery    string
	Presets      []string
	ScrollOffset int
	Endpoint     string
	ShowHelp     bool
	HelpView     string // full help, shown as an overlay
	ShortHelp    string // one-line footer help
	ShowReady    bool
}

// Renderer handles all view rendering. It holds no state of its own; the
// same ViewState always renders the same output.
type Renderer struct {
	styles *Styles
	cards  *CardRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		cards:  NewCardRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	// The overlay replaces the whole screen
	if state.ShowHelp && state.HelpView != "" {
		return r.renderHelpOverlay(state)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderInput(state))
	content.WriteString("\n")
	if presets := r.renderPresets(state.Presets); presets != "" {
		content.WriteString(presets)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	if state.Notice != "" {
		content.WriteString(r.styles.Notice.Render(state.Notice))
		content.WriteString("\n\n")
	}

	if state.Summary != "" {
		summary := r.styles.SummaryLabel.Render("Summary:") + " " + state.Summary
		style := r.styles.Summary
		if w := cardWidth(state.Width); w > 0 {
			style = style.Width(w + 2)
		}
		content.WriteString(style.Render(summary))
		content.WriteString("\n\n")
	}

	if len(state.Employees) > 0 {
		content.WriteString(r.renderResultsHeader(state))
		content.WriteString("\n")
		used := strings.Count(content.String(), "\n") + 1
		content.WriteString(r.renderCards(state, used))
	} else if state.State == domain.StateSucceeded {
		content.WriteString(r.styles.Dim.Render("No employees matched. Try a broader query."))
	}

	footer := state.ShortHelp
	if footer == "" {
		footer = "Press ? for help"
	}
	footer = r.styles.Help.Render(footer)
	if state.ShowReady {
		footer += " " + ReadyMarker
	}

	// Push the footer to the bottom of the screen
	if state.Height > 0 {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2 // Main padding top and bottom
		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// RenderPlain renders summary and results as unstyled text, for the pager
func (r *Renderer) RenderPlain(state ViewState) string {
	var b strings.Builder

	if state.LastQuery != "" {
		fmt.Fprintf(&b, "Query: %s\n\n", state.LastQuery)
	}
	if state.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n\n", state.Summary)
	}
	if len(state.Employees) > 0 {
		fmt.Fprintf(&b, "Results: %d found\n\n", len(state.Employees))
		for i, e := range state.Employees {
			fmt.Fprintf(&b, "%d. %s\n\n", i+1, r.cards.RenderCardPlain(e))
		}
	}

	return b.String()
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("empsearch")

	var status string
	switch {
	case state.Busy:
		status = r.styles.Busy.Render(strings.TrimSpace(state.Spinner + " Searching..."))
	case state.State == domain.StateFailed:
		status = r.styles.StatusError.Render("✗ failed")
	case state.State == domain.StateSucceeded:
		status = r.styles.StatusSuccess.Render("✓ done")
	}
	if state.Endpoint != "" {
		endpoint := r.styles.Subtitle.Render(state.Endpoint)
		if status != "" {
			status += "  " + endpoint
		} else {
			status = endpoint
		}
	}
	if status == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(status)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + status
}

func (r *Renderer) renderInput(state ViewState) string {
	prompt := r.styles.Prompt.Render("Search ›")
	input := state.InputView
	if state.Busy {
		prompt = r.styles.PromptBusy.Render("Search ›")
		input = r.styles.Dim.Render(input)
	}
	line := prompt + " " + input
	if !state.Editing {
		line += "  " + r.styles.Dim.Render("(press / to edit)")
	}
	return line
}

func (r *Renderer) renderPresets(presets []string) string {
	if len(presets) == 0 {
		return ""
	}
	parts := make([]string, len(presets))
	for i, p := range presets {
		parts[i] = r.styles.PresetKey.Render(fmt.Sprintf("%d", i+1)) + " " + r.styles.Preset.Render(p)
	}
	return r.styles.Dim.Render("Try:") + " " + strings.Join(parts, "  ")
}

func (r *Renderer) renderResultsHeader(state ViewState) string {
	header := r.styles.ResultsHead.Render("Results:") + " " +
		r.styles.Count.Render(fmt.Sprintf("%d", len(state.Employees))) + " found"
	if state.LastQuery != "" {
		header += r.styles.Dim.Render(fmt.Sprintf(" for %q", state.LastQuery))
	}
	return header
}

// renderCards renders the cards that fit below usedLines, starting at the
// scroll offset, with indicators for cards above and below
func (r *Renderer) renderCards(state ViewState, usedLines int) string {
	total := len(state.Employees)
	offset := ClampOffset(state.ScrollOffset, total)

	budget := -1 // unlimited
	if state.Height > 0 {
		// Main padding, footer line and its gap, two scroll indicators
		budget = state.Height - usedLines - 2 - 2 - 2
	}

	var lines []string
	if offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}

	shown := 0
	height := 0
	for i := offset; i < total; i++ {
		card := r.cards.RenderCard(state.Employees[i], state.Width)
		h := lipgloss.Height(card)
		if budget >= 0 && shown > 0 && height+h > budget {
			break
		}
		lines = append(lines, card)
		height += h
		shown++
	}

	if below := total - offset - shown; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderHelpOverlay(state ViewState) string {
	box := r.styles.HelpBox.Render(r.styles.Title.Render("empsearch help") + "\n\n" + state.HelpView)
	if state.Width <= 0 || state.Height <= 0 {
		return box
	}
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, box)
}

// ClampOffset keeps a card scroll offset within [0, total-1]
func ClampOffset(offset, total int) int {
	if offset >= total {
		offset = total - 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
