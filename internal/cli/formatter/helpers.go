package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sofiebrandt/prepdeck/internal/domain"
)

// ScoreBadge returns a colored score string such as "7/10", green for strong
// scores, yellow for middling ones, red for weak ones.
func ScoreBadge(score, max int) string {
	text := fmt.Sprintf("%d/%d", score, max)
	if max <= 0 {
		return StyleDim.Render(text)
	}
	switch ratio := float64(score) / float64(max); {
	case ratio >= 0.7:
		return StyleGreen.Render(text)
	case ratio >= 0.4:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// SourceBadge returns a colored label for a question's provenance.
func SourceBadge(source domain.QuestionSource) string {
	switch source {
	case domain.SourceAuthored:
		return StyleBlue.Render("authored")
	case domain.SourceImported:
		return StylePurple.Render("imported")
	case domain.SourcePrompted:
		return StyleGreen.Render("prompted")
	default:
		return StyleDim.Render(string(source))
	}
}

// LevelBadge returns a styled experience level label.
func LevelBadge(level domain.ExperienceLevel) string {
	if level == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(string(level))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens s to max runes, adding an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// BulletList renders items as an indented bullet list, one per line.
func BulletList(items []string, style lipgloss.Style) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  " + style.Render("•") + " " + StyleFg.Render(item) + "\n")
	}
	return b.String()
}
