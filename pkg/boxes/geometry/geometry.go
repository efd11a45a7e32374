// Package geometry derives the usable widths of a box from a resolved
// configuration and decides whether that configuration is drawable at all.
package geometry

import (
	"github.com/arthur-debert/boxes/pkg/boxes/config"
)

// Widths is the pair of derived widths a formatting call works with.
// Content is the text-only span; Line is the border-to-border span, i.e.
// padding plus content. Line deliberately does not subtract padding: the
// fixed-width rendering path fills border rows across the full span.
type Widths struct {
	Content int
	Line    int
}

// BorderCount returns how many vertical borders are enabled (0, 1 or 2).
func BorderCount(cfg config.Resolved) int {
	count := 0
	if cfg.BorderLeft {
		count++
	}
	if cfg.BorderRight {
		count++
	}
	return count
}

// MaxContentWidth is the character budget left for text once padding,
// margins and borders are taken out of CharsPerLine. It can be zero or
// negative, which marks the configuration invalid.
func MaxContentWidth(cfg config.Resolved) int {
	return cfg.CharsPerLine -
		cfg.PaddingLeft - cfg.PaddingRight -
		cfg.MarginLeft - cfg.MarginRight -
		BorderCount(cfg)
}

// MaxLineWidth is the span between the vertical borders: padding plus
// content, with margins and borders taken out of CharsPerLine.
func MaxLineWidth(cfg config.Resolved) int {
	return cfg.CharsPerLine -
		cfg.MarginLeft - cfg.MarginRight -
		BorderCount(cfg)
}

// Derive computes both widths in one step.
func Derive(cfg config.Resolved) Widths {
	return Widths{
		Content: MaxContentWidth(cfg),
		Line:    MaxLineWidth(cfg),
	}
}

// Validate reports whether the configuration leaves any room for content.
// A non-positive content width cannot be drawn, whatever the other fields
// say.
func Validate(cfg config.Resolved) bool {
	return MaxContentWidth(cfg) > 0
}
