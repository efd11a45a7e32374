// Package render draws the final box: borders, padding rows, content
// rows with right fill, section breaks, margins and warning lines. It
// trusts the widths computed upstream and performs no validation of its
// own; invalid configurations are replaced before they ever reach here.
package render

import (
	"strings"

	"github.com/arthur-debert/boxes/pkg/boxes/config"
	"github.com/arthur-debert/boxes/pkg/boxes/content"
)

// Box-drawing glyphs, one fixed glyph per role.
const (
	TopLeftCorner     = '┌'
	TopRightCorner    = '┐'
	BottomLeftCorner  = '└'
	BottomRightCorner = '┘'
	MiddleLeftCorner  = '├'
	MiddleRightCorner = '┤'
	VerticalLine      = '│'
	// DoubleDivider fills top and bottom borders.
	DoubleDivider = '─'
	// SingleDivider fills section-break rows, rendered for empty input lines.
	SingleDivider = '┄'
)

// Warning lines emitted ahead of a box when a configuration layer was
// replaced by a fallback.
const (
	InstanceFallbackWarning = "WARNING: invalid box configuration, using library defaults until corrected!"
	CallFallbackWarning     = "WARNING: invalid override configuration, using instance configuration for this call!"
)

// newline joins output lines. The final line carries no trailing newline.
const newline = "\n"

// Render draws the prepared content as a single multi-line string.
// warnings, when present, come first, ahead of any margin or border.
func Render(task content.Task, cfg config.Resolved, warnings []string) string {
	rows := make([]string, 0, len(task.Lines)+8+len(warnings))

	rows = append(rows, warnings...)

	if cfg.PrefixWithNewline {
		rows = append(rows, " ")
	}

	for i := 0; i < cfg.MarginTop; i++ {
		rows = append(rows, "")
	}

	if cfg.BorderTop {
		rows = append(rows, horizontalBorder(cfg, task.LineWidth,
			TopLeftCorner, TopRightCorner))
	}

	for i := 0; i < cfg.PaddingTop; i++ {
		rows = append(rows, paddingRow(cfg, task.LineWidth))
	}

	for _, line := range task.Lines {
		if len(line) == 0 {
			rows = append(rows, sectionBreak(cfg, task.LineWidth))
		} else {
			rows = append(rows, contentRow(cfg, task, line))
		}
	}

	for i := 0; i < cfg.PaddingBottom; i++ {
		rows = append(rows, paddingRow(cfg, task.LineWidth))
	}

	if cfg.BorderBottom {
		rows = append(rows, horizontalBorder(cfg, task.LineWidth,
			BottomLeftCorner, BottomRightCorner))
	}

	for i := 0; i < cfg.MarginBottom; i++ {
		rows = append(rows, "")
	}

	return strings.Join(rows, newline)
}

// horizontalBorder draws a top or bottom border row.
func horizontalBorder(cfg config.Resolved, lineWidth int, left, right rune) string {
	var b strings.Builder
	b.WriteString(spaces(cfg.MarginLeft))
	if cfg.BorderLeft {
		b.WriteRune(left)
	}
	b.WriteString(strings.Repeat(string(DoubleDivider), lineWidth))
	if cfg.BorderRight {
		b.WriteRune(right)
	}
	b.WriteString(spaces(cfg.MarginRight))
	return b.String()
}

// sectionBreak draws the full-width divider row an empty input line stands for.
func sectionBreak(cfg config.Resolved, lineWidth int) string {
	var b strings.Builder
	b.WriteString(spaces(cfg.MarginLeft))
	if cfg.BorderLeft {
		b.WriteRune(MiddleLeftCorner)
	}
	b.WriteString(strings.Repeat(string(SingleDivider), lineWidth))
	if cfg.BorderRight {
		b.WriteRune(MiddleRightCorner)
	}
	b.WriteString(spaces(cfg.MarginRight))
	return b.String()
}

// paddingRow draws a blank interior row between content and a horizontal border.
func paddingRow(cfg config.Resolved, lineWidth int) string {
	var b strings.Builder
	b.WriteString(spaces(cfg.MarginLeft))
	if cfg.BorderLeft {
		b.WriteRune(VerticalLine)
	}
	b.WriteString(spaces(lineWidth))
	if cfg.BorderRight {
		b.WriteRune(VerticalLine)
	}
	b.WriteString(spaces(cfg.MarginRight))
	return b.String()
}

// contentRow draws one text row. The right fill tops the line up to the
// content width; preparation guarantees no line exceeds it.
func contentRow(cfg config.Resolved, task content.Task, line string) string {
	var b strings.Builder
	b.WriteString(spaces(cfg.MarginLeft))
	if cfg.BorderLeft {
		b.WriteRune(VerticalLine)
	}
	b.WriteString(spaces(cfg.PaddingLeft))
	b.WriteString(line)
	b.WriteString(spaces(cfg.PaddingRight + task.ContentWidth - len([]rune(line))))
	if cfg.BorderRight {
		b.WriteRune(VerticalLine)
	}
	b.WriteString(spaces(cfg.MarginRight))
	return b.String()
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
