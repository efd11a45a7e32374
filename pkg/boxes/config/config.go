// Package config holds the box configuration model: a partially
// specified, tri-state settings record, a builder for constructing one,
// and the layered merge that resolves defaults, instance and per-call
// layers into a concrete configuration.
package config

import (
	"github.com/arthur-debert/boxes/pkg/boxes/metadata"
)

// Config is a partially specified box configuration. Every field is
// optional: a nil pointer (or nil metadata slice) means "unset, inherit
// from the layer below". An explicit zero value is a setting in its own
// right, distinct from unset.
type Config struct {
	// PrefixWithNewline adds a near-empty line before the box. Helps with
	// loggers that prepend tags to the first line of a printout.
	PrefixWithNewline *bool

	// CharsPerLine is the total outer width budget of the box, including
	// borders, padding and horizontal margins.
	CharsPerLine *int

	// WrapContent shrinks the box to its longest content line (capped at
	// CharsPerLine) when true; false renders a fixed-width box.
	WrapContent *bool

	BorderLeft   *bool
	BorderRight  *bool
	BorderTop    *bool
	BorderBottom *bool

	// Padding is the spacing between content and border, inside the
	// CharsPerLine budget (blank rows for the vertical case).
	PaddingLeft   *int
	PaddingRight  *int
	PaddingTop    *int
	PaddingBottom *int

	// Margin is the spacing outside the border: spaces inside the
	// CharsPerLine budget horizontally, extra blank output lines vertically.
	MarginLeft   *int
	MarginRight  *int
	MarginTop    *int
	MarginBottom *int

	// HeaderMetadata and FooterMetadata list the metadata lines rendered
	// before and after the content. nil means unset; a non-nil empty slice
	// explicitly disables an inherited set.
	HeaderMetadata []metadata.Kind
	FooterMetadata []metadata.Kind
}

// Resolved is a fully populated configuration, produced by layering
// partial Configs over the compiled defaults. It is a plain value and is
// never mutated after resolution.
type Resolved struct {
	PrefixWithNewline bool
	CharsPerLine      int
	WrapContent       bool

	BorderLeft   bool
	BorderRight  bool
	BorderTop    bool
	BorderBottom bool

	PaddingLeft   int
	PaddingRight  int
	PaddingTop    int
	PaddingBottom int

	MarginLeft   int
	MarginRight  int
	MarginTop    int
	MarginBottom int

	HeaderMetadata []metadata.Kind
	FooterMetadata []metadata.Kind
}

// Defaults returns the compiled default configuration. Every field is
// set, which guarantees any resolve chain rooted here is fully populated.
func Defaults() Config {
	return Config{
		PrefixWithNewline: boolPtr(false),
		CharsPerLine:      intPtr(80),
		WrapContent:       boolPtr(true),
		BorderLeft:        boolPtr(true),
		BorderRight:       boolPtr(true),
		BorderTop:         boolPtr(true),
		BorderBottom:      boolPtr(true),
		PaddingLeft:       intPtr(1),
		PaddingRight:      intPtr(1),
		PaddingTop:        intPtr(0),
		PaddingBottom:     intPtr(0),
		MarginLeft:        intPtr(0),
		MarginRight:       intPtr(0),
		MarginTop:         intPtr(0),
		MarginBottom:      intPtr(0),
		HeaderMetadata:    []metadata.Kind{},
		FooterMetadata:    []metadata.Kind{},
	}
}

// Clone returns a copy that does not alias c's metadata slices.
func (c Config) Clone() Config {
	out := c
	out.HeaderMetadata = cloneKinds(c.HeaderMetadata)
	out.FooterMetadata = cloneKinds(c.FooterMetadata)
	return out
}

// Merge overlays overlay onto base: for every field overlay defines, the
// result takes overlay's value; otherwise it keeps base's. Neither input
// is modified. Chaining Merge left-to-right is associative per field,
// which is what makes the defaults/instance/per-call layering predictable.
func Merge(base, overlay Config) Config {
	result := base

	if overlay.PrefixWithNewline != nil {
		result.PrefixWithNewline = overlay.PrefixWithNewline
	}
	if overlay.CharsPerLine != nil {
		result.CharsPerLine = overlay.CharsPerLine
	}
	if overlay.WrapContent != nil {
		result.WrapContent = overlay.WrapContent
	}
	if overlay.BorderLeft != nil {
		result.BorderLeft = overlay.BorderLeft
	}
	if overlay.BorderRight != nil {
		result.BorderRight = overlay.BorderRight
	}
	if overlay.BorderTop != nil {
		result.BorderTop = overlay.BorderTop
	}
	if overlay.BorderBottom != nil {
		result.BorderBottom = overlay.BorderBottom
	}
	if overlay.PaddingLeft != nil {
		result.PaddingLeft = overlay.PaddingLeft
	}
	if overlay.PaddingRight != nil {
		result.PaddingRight = overlay.PaddingRight
	}
	if overlay.PaddingTop != nil {
		result.PaddingTop = overlay.PaddingTop
	}
	if overlay.PaddingBottom != nil {
		result.PaddingBottom = overlay.PaddingBottom
	}
	if overlay.MarginLeft != nil {
		result.MarginLeft = overlay.MarginLeft
	}
	if overlay.MarginRight != nil {
		result.MarginRight = overlay.MarginRight
	}
	if overlay.MarginTop != nil {
		result.MarginTop = overlay.MarginTop
	}
	if overlay.MarginBottom != nil {
		result.MarginBottom = overlay.MarginBottom
	}
	if overlay.HeaderMetadata != nil {
		result.HeaderMetadata = overlay.HeaderMetadata
	}
	if overlay.FooterMetadata != nil {
		result.FooterMetadata = overlay.FooterMetadata
	}

	return result
}

// MergeLayers merges layers left-to-right over an empty Config.
func MergeLayers(layers ...Config) Config {
	var result Config
	for _, layer := range layers {
		result = Merge(result, layer)
	}
	return result
}

// Resolve layers the given partial configurations, left-to-right, over
// the compiled defaults and flattens the result. The returned value is a
// fresh, fully populated snapshot.
func Resolve(layers ...Config) Resolved {
	merged := Defaults()
	for _, layer := range layers {
		merged = Merge(merged, layer)
	}

	return Resolved{
		PrefixWithNewline: *merged.PrefixWithNewline,
		CharsPerLine:      *merged.CharsPerLine,
		WrapContent:       *merged.WrapContent,
		BorderLeft:        *merged.BorderLeft,
		BorderRight:       *merged.BorderRight,
		BorderTop:         *merged.BorderTop,
		BorderBottom:      *merged.BorderBottom,
		PaddingLeft:       *merged.PaddingLeft,
		PaddingRight:      *merged.PaddingRight,
		PaddingTop:        *merged.PaddingTop,
		PaddingBottom:     *merged.PaddingBottom,
		MarginLeft:        *merged.MarginLeft,
		MarginRight:       *merged.MarginRight,
		MarginTop:         *merged.MarginTop,
		MarginBottom:      *merged.MarginBottom,
		HeaderMetadata:    cloneKinds(merged.HeaderMetadata),
		FooterMetadata:    cloneKinds(merged.FooterMetadata),
	}
}

// AsConfig converts a resolved snapshot back into a (fully set) Config,
// usable as a merge layer.
func (r Resolved) AsConfig() Config {
	return Config{
		PrefixWithNewline: boolPtr(r.PrefixWithNewline),
		CharsPerLine:      intPtr(r.CharsPerLine),
		WrapContent:       boolPtr(r.WrapContent),
		BorderLeft:        boolPtr(r.BorderLeft),
		BorderRight:       boolPtr(r.BorderRight),
		BorderTop:         boolPtr(r.BorderTop),
		BorderBottom:      boolPtr(r.BorderBottom),
		PaddingLeft:       intPtr(r.PaddingLeft),
		PaddingRight:      intPtr(r.PaddingRight),
		PaddingTop:        intPtr(r.PaddingTop),
		PaddingBottom:     intPtr(r.PaddingBottom),
		MarginLeft:        intPtr(r.MarginLeft),
		MarginRight:       intPtr(r.MarginRight),
		MarginTop:         intPtr(r.MarginTop),
		MarginBottom:      intPtr(r.MarginBottom),
		HeaderMetadata:    cloneKinds(r.HeaderMetadata),
		FooterMetadata:    cloneKinds(r.FooterMetadata),
	}
}

// Clone returns a copy that shares no slices with the receiver.
func (r Resolved) Clone() Resolved {
	out := r
	out.HeaderMetadata = cloneKinds(r.HeaderMetadata)
	out.FooterMetadata = cloneKinds(r.FooterMetadata)
	return out
}

func cloneKinds(kinds []metadata.Kind) []metadata.Kind {
	if kinds == nil {
		return nil
	}
	out := make([]metadata.Kind, len(kinds))
	copy(out, kinds)
	return out
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }
