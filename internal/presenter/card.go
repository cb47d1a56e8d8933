// Package presenter turns repository records into display-ready cards.
//
// Everything here is a pure function of a model.Repository: no I/O, no
// logging. Both delivery surfaces (the HTML page and the terminal CLI)
// render the same Card, so a repository looks the same in both.
package presenter

import (
	"time"

	"github.com/sakif/repo-showcase/internal/model"
)

// MaxVisibleTopics is how many topic badges a card shows before collapsing
// the rest into a "+N" overflow badge.
const MaxVisibleTopics = 4

// DateLayout renders dates like "Mar 5, 2024".
const DateLayout = "Jan 2, 2006"

// DefaultLanguageColor is used for unknown or missing languages.
const DefaultLanguageColor = "#6b7280"

// DefaultPreviewImage is used for repositories without a dedicated preview.
const DefaultPreviewImage = "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=400&h=240&fit=crop"

var languageColors = map[string]string{
	"TypeScript": "#3b82f6",
	"JavaScript": "#eab308",
	"Python":     "#22c55e",
	"React":      "#06b6d4",
	"Vue":        "#10b981",
	"Java":       "#f97316",
	"C#":         "#a855f7",
	"Go":         "#0891b2",
	"Rust":       "#ea580c",
	"PHP":        "#6366f1",
}

var previewImages = map[string]string{
	"cucumber-jvm":  "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=400&h=240&fit=crop",
	"cucumber-js":   "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7?w=400&h=240&fit=crop",
	"cucumber-ruby": "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=400&h=240&fit=crop",
	"gherkin":       "https://images.unsplash.com/photo-1531297484001-80022131f5a1?w=400&h=240&fit=crop",
}

// Card is the view model of one repository card.
type Card struct {
	Name          string
	Description   string
	URL           string
	Stars         int
	Forks         int
	Updated       string // formatted with DateLayout
	Language      string // empty when unknown
	LanguageColor string
	PreviewImage  string
	Topics        []string // at most MaxVisibleTopics
	TopicOverflow int      // topics not shown
	DocsURL       string   // homepage; empty hides the documentation link
}

// LanguageColor returns the indicator colour (CSS hex) for a language.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return DefaultLanguageColor
}

// PreviewImage returns the preview image URL for a repository name.
func PreviewImage(name string) string {
	if img, ok := previewImages[name]; ok {
		return img
	}
	return DefaultPreviewImage
}

// FormatUpdated formats a last-updated timestamp in UTC.
// The zero time renders as an empty string.
func FormatUpdated(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// TopicBadges splits topics into the visible badges and the overflow count.
// The returned slice never aliases the input.
func TopicBadges(topics []string) (visible []string, overflow int) {
	n := min(len(topics), MaxVisibleTopics)
	visible = make([]string, n)
	copy(visible, topics[:n])
	return visible, len(topics) - n
}

// NewCard builds the card for one repository.
func NewCard(r model.Repository) Card {
	topics, overflow := TopicBadges(r.Topics)

	return Card{
		Name:          r.Name,
		Description:   r.Description,
		URL:           r.URL,
		Stars:         r.StarCount,
		Forks:         r.ForkCount,
		Updated:       FormatUpdated(r.LastUpdatedAt),
		Language:      r.PrimaryLanguage,
		LanguageColor: LanguageColor(r.PrimaryLanguage),
		PreviewImage:  PreviewImage(r.Name),
		Topics:        topics,
		TopicOverflow: overflow,
		DocsURL:       r.HomepageURL,
	}
}

// NewCards builds one card per repository, preserving order.
func NewCards(repos []model.Repository) []Card {
	cards := make([]Card, 0, len(repos))
	for _, r := range repos {
		cards = append(cards, NewCard(r))
	}
	return cards
}
