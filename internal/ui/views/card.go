package views

import (
	"fmt"
	"strings"

	"empsearch/internal/domain"
)

const maxCardWidth = 78

// CardRenderer handles rendering of a single employee card
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// InfoLine is the "{department} • {years} years • Joined {joinDate}" line
func InfoLine(e domain.Employee) string {
	return fmt.Sprintf("%s • %d years • Joined %s", e.Department, e.Years, e.JoinDate)
}

// RenderCard renders one employee as a bordered card no wider than width
func (r *CardRenderer) RenderCard(e domain.Employee, width int) string {
	lines := []string{
		r.styles.Name.Render(e.Name),
		r.styles.Email.Render(e.Email),
		r.styles.Info.Render(InfoLine(e)),
	}

	if len(e.Skills) > 0 {
		tags := make([]string, len(e.Skills))
		for i, skill := range e.Skills {
			tags[i] = r.styles.SkillTag.Render(skill)
		}
		lines = append(lines, strings.Join(tags, " "))
	}

	lines = append(lines, r.styles.Role.Render(e.Role))

	style := r.styles.Card
	if w := cardWidth(width); w > 0 {
		style = style.Width(w)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderCardPlain renders one employee without styling, for the pager
func (r *CardRenderer) RenderCardPlain(e domain.Employee) string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString("\n  ")
	b.WriteString(e.Email)
	b.WriteString("\n  ")
	b.WriteString(InfoLine(e))
	if len(e.Skills) > 0 {
		b.WriteString("\n  ")
		for i, skill := range e.Skills {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString("[" + skill + "]")
		}
	}
	b.WriteString("\n  ")
	b.WriteString(e.Role)
	return b.String()
}

// cardWidth returns the inner width for a card, or 0 to size to content
func cardWidth(termWidth int) int {
	if termWidth <= 0 {
		return 0
	}
	// Main padding (2+2) plus card border and padding (2+2)
	w := termWidth - 8
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 20 {
		return 0
	}
	return w
}
