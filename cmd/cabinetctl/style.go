package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	blue   = lipgloss.Color("#3B82F6")
	orange = lipgloss.Color("#F97316")
	red    = lipgloss.Color("#EF4444")
	green  = lipgloss.Color("#22C55E")
	grey   = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(grey)
)

var badgeColors = map[string]lipgloss.Color{
	// appointments
	"confirmed": blue,
	"waiting":   orange,
	"urgent":    red,
	// treatments
	"en_cours": blue,
	"termine":  green,
	"planifie": orange,
	// patients
	"actif":               green,
	"traitement_en_cours": blue,
	"suivi":               orange,
}

// badge renders text on the colour of status.
func badge(status, text string) string {
	c, ok := badgeColors[status]
	if !ok {
		c = grey
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(c).
		Padding(0, 1).
		Render(text)
}
