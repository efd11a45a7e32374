// Package style colors finished boxes for terminal display. The
// renderer itself emits plain text; styling is a separate, optional pass
// so log-file output stays clean.
package style

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme pairs the styles applied to a rendered box.
type Theme struct {
	Name string
	// Box styles every box line: borders, padding and content alike.
	Box lipgloss.Style
	// Warning styles the fallback warning lines above the box.
	Warning lipgloss.Style
}

var warningColor = lipgloss.AdaptiveColor{
	Light: "#B45309", // Amber
	Dark:  "#FBBF24",
}

var themes = map[string]Theme{
	"plain": {
		Name: "plain",
	},
	"slate": {
		Name: "slate",
		Box: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
			Light: "#475569",
			Dark:  "#94A3B8",
		}),
		Warning: lipgloss.NewStyle().Foreground(warningColor).Bold(true),
	},
	"ocean": {
		Name: "ocean",
		Box: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
			Light: "#0E7490",
			Dark:  "#22D3EE",
		}),
		Warning: lipgloss.NewStyle().Foreground(warningColor).Bold(true),
	},
	"forest": {
		Name: "forest",
		Box: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
			Light: "#15803D",
			Dark:  "#4ADE80",
		}),
		Warning: lipgloss.NewStyle().Foreground(warningColor).Bold(true),
	},
}

// Named looks a theme up by name.
func Named(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// Names lists the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorSupported reports whether the terminal advertises any color
// support at all.
func ColorSupported() bool {
	return termenv.ColorProfile() != termenv.Ascii
}

// Colorize applies the theme line by line: warning lines get the warning
// style, everything else the box style. The plain theme passes the box
// through untouched.
func Colorize(box string, theme Theme) string {
	if theme.Name == "plain" || theme.Name == "" {
		return box
	}

	lines := strings.Split(box, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "WARNING:") {
			lines[i] = theme.Warning.Render(line)
		} else {
			lines[i] = theme.Box.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
