package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sakif/repo-showcase/internal/presenter"
)

// Card styles. Colours follow the web page's purple accent.
var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1).
			Width(60)

	nameStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	linkStyle  = lipgloss.NewStyle().Underline(true)
)

func renderHeading(text string) string {
	return headingStyle.Render(text)
}

// renderCard lays out one presenter.Card for the terminal.
func renderCard(c presenter.Card) string {
	lines := []string{nameStyle.Render(c.Name)}

	if c.Description != "" {
		lines = append(lines, c.Description)
	}

	stats := fmt.Sprintf("%d stars · %d forks", c.Stars, c.Forks)
	if c.Updated != "" {
		stats += " · Updated " + c.Updated
	}
	lines = append(lines, mutedStyle.Render(stats))

	if c.Language != "" {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(c.LanguageColor)).Render("●")
		lines = append(lines, dot+" "+c.Language)
	}

	if len(c.Topics) > 0 {
		badges := make([]string, 0, len(c.Topics)+1)
		for _, t := range c.Topics {
			badges = append(badges, badgeStyle.Render("#"+t))
		}
		if c.TopicOverflow > 0 {
			badges = append(badges, mutedStyle.Render(fmt.Sprintf("+%d", c.TopicOverflow)))
		}
		lines = append(lines, strings.Join(badges, " "))
	}

	lines = append(lines, linkStyle.Render(c.URL))
	if c.DocsURL != "" {
		lines = append(lines, "Docs: "+linkStyle.Render(c.DocsURL))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}
