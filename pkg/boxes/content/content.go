// Package content turns raw input lines into the prepared line set and
// per-call widths a box renderer consumes: metadata rows are expanded,
// over-long lines reflowed, and the wrap/fixed width decision made here.
package content

import (
	"github.com/arthur-debert/boxes/pkg/boxes/config"
	"github.com/arthur-debert/boxes/pkg/boxes/geometry"
	"github.com/arthur-debert/boxes/pkg/boxes/metadata"
)

// Task is the transient state of one formatting call: the prepared lines
// plus the box widths chosen for this call. It lives for the duration of
// a single format invocation and is never shared.
type Task struct {
	// Lines is the metadata-augmented, reflowed content.
	Lines []string
	// ContentWidth is the text span chosen for this call.
	ContentWidth int
	// LineWidth is the border-to-border span chosen for this call.
	LineWidth int
}

// Prepare builds the Task for one call. The order is load-bearing:
// metadata rows are added first so they participate in width measurement
// and reflow like any other line. source is the boxed value handed to
// metadata generation; it may be nil when no configured kind needs it.
func Prepare(lines []string, cfg config.Resolved, widths geometry.Widths,
	gen *metadata.Generator, source interface{}) (Task, error) {

	prepared := make([]string, 0, len(lines)+len(cfg.HeaderMetadata)+len(cfg.FooterMetadata)+2)

	if len(cfg.HeaderMetadata) > 0 {
		header, err := gen.GenerateAll(cfg.HeaderMetadata, source)
		if err != nil {
			return Task{}, err
		}
		prepared = append(prepared, header...)
		prepared = append(prepared, "")
	}

	prepared = append(prepared, lines...)

	if len(cfg.FooterMetadata) > 0 {
		footer, err := gen.GenerateAll(cfg.FooterMetadata, source)
		if err != nil {
			return Task{}, err
		}
		prepared = append(prepared, "")
		prepared = append(prepared, footer...)
	}

	longest := maxRuneLength(prepared)
	if longest > widths.Content {
		prepared = reflow(prepared, widths.Content)
		longest = widths.Content
	}

	task := Task{Lines: prepared}
	if cfg.WrapContent {
		task.ContentWidth = longest
		task.LineWidth = longest + cfg.PaddingLeft + cfg.PaddingRight
	} else {
		task.ContentWidth = widths.Content
		task.LineWidth = widths.Line
	}
	return task, nil
}

// maxRuneLength returns the longest line's length in runes.
func maxRuneLength(lines []string) int {
	longest := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	return longest
}

// reflow splits every line longer than width into consecutive chunks of
// exactly width runes (the last chunk may be shorter). Lines at or under
// the limit pass through unchanged, so reflow is idempotent.
func reflow(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) <= width {
			out = append(out, line)
			continue
		}
		for start := 0; start < len(runes); start += width {
			end := start + width
			if end > len(runes) {
				end = len(runes)
			}
			out = append(out, string(runes[start:end]))
		}
	}
	return out
}
