package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamed(t *testing.T) {
	for _, name := range []string{"plain", "slate", "ocean", "forest"} {
		theme, ok := Named(name)
		require.True(t, ok, name)
		assert.Equal(t, name, theme.Name)
	}

	_, ok := Named("neon")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"forest", "ocean", "plain", "slate"}, Names())
}

func TestColorize_PlainPassesThrough(t *testing.T) {
	box := "┌────┐\n│ hi │\n└────┘"
	plain, _ := Named("plain")

	assert.Equal(t, box, Colorize(box, plain))
	assert.Equal(t, box, Colorize(box, Theme{}))
}

func TestColorize_KeepsLineCount(t *testing.T) {
	box := "WARNING: something\n\n┌────┐\n│ hi │\n└────┘"
	ocean, _ := Named("ocean")

	out := Colorize(box, ocean)

	assert.Equal(t, 5, len(splitLines(out)))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
