package config

import (
	"github.com/arthur-debert/boxes/pkg/boxes/metadata"
)

// Builder is the mutable draft for a Config. Setters return the builder
// for chaining; Build freezes the draft into an immutable Config value.
type Builder struct {
	cfg Config
}

// NewBuilder returns an empty builder; every field starts unset.
func NewBuilder() *Builder {
	return &Builder{}
}

// FromConfig returns a builder pre-loaded with all of cfg's values,
// including its unset fields.
func FromConfig(cfg Config) *Builder {
	b := &Builder{cfg: cfg}
	b.cfg.HeaderMetadata = cloneKinds(cfg.HeaderMetadata)
	b.cfg.FooterMetadata = cloneKinds(cfg.FooterMetadata)
	return b
}

// Apply overlays cfg's set fields onto the draft, leaving the draft's
// other fields alone.
func (b *Builder) Apply(cfg Config) *Builder {
	b.cfg = Merge(b.cfg, cfg)
	return b
}

// Build freezes the draft. The builder remains usable afterwards; the
// returned Config does not alias the builder's metadata slices.
func (b *Builder) Build() Config {
	cfg := b.cfg
	cfg.HeaderMetadata = cloneKinds(b.cfg.HeaderMetadata)
	cfg.FooterMetadata = cloneKinds(b.cfg.FooterMetadata)
	return cfg
}

// PrefixWithNewline adds a near-empty line before every box.
func (b *Builder) PrefixWithNewline(v bool) *Builder {
	b.cfg.PrefixWithNewline = boolPtr(v)
	return b
}

// CharsPerLine sets the total outer width budget. With WrapContent it is
// the maximum box width; without, the fixed box width. Horizontal padding
// and margin are counted inside this value.
func (b *Builder) CharsPerLine(n int) *Builder {
	b.cfg.CharsPerLine = intPtr(n)
	return b
}

// WrapContent shrinks the box to the longest content line when true.
func (b *Builder) WrapContent(v bool) *Builder {
	b.cfg.WrapContent = boolPtr(v)
	return b
}

// BorderLeft closes or opens the left side of the box.
func (b *Builder) BorderLeft(v bool) *Builder {
	b.cfg.BorderLeft = boolPtr(v)
	return b
}

// BorderRight closes or opens the right side of the box. Some nominally
// monospaced fonts render unequal line lengths with a closed right side;
// set false if that bites.
func (b *Builder) BorderRight(v bool) *Builder {
	b.cfg.BorderRight = boolPtr(v)
	return b
}

func (b *Builder) BorderTop(v bool) *Builder {
	b.cfg.BorderTop = boolPtr(v)
	return b
}

func (b *Builder) BorderBottom(v bool) *Builder {
	b.cfg.BorderBottom = boolPtr(v)
	return b
}

// VerticalBorders sets the left and right borders together.
func (b *Builder) VerticalBorders(v bool) *Builder {
	b.BorderLeft(v)
	b.BorderRight(v)
	return b
}

// HorizontalBorders sets the top and bottom borders together.
func (b *Builder) HorizontalBorders(v bool) *Builder {
	b.BorderTop(v)
	b.BorderBottom(v)
	return b
}

// Borders sets all four borders together.
func (b *Builder) Borders(v bool) *Builder {
	b.VerticalBorders(v)
	b.HorizontalBorders(v)
	return b
}

// PaddingLeft sets the spaces between text and the left border.
func (b *Builder) PaddingLeft(n int) *Builder {
	b.cfg.PaddingLeft = intPtr(n)
	return b
}

func (b *Builder) PaddingRight(n int) *Builder {
	b.cfg.PaddingRight = intPtr(n)
	return b
}

func (b *Builder) PaddingTop(n int) *Builder {
	b.cfg.PaddingTop = intPtr(n)
	return b
}

func (b *Builder) PaddingBottom(n int) *Builder {
	b.cfg.PaddingBottom = intPtr(n)
	return b
}

// HorizontalPadding sets the left and right padding together.
func (b *Builder) HorizontalPadding(n int) *Builder {
	b.PaddingLeft(n)
	b.PaddingRight(n)
	return b
}

// VerticalPadding sets the blank rows between text and the top/bottom borders.
func (b *Builder) VerticalPadding(n int) *Builder {
	b.PaddingTop(n)
	b.PaddingBottom(n)
	return b
}

// Padding sets all four paddings together.
func (b *Builder) Padding(n int) *Builder {
	b.VerticalPadding(n)
	b.HorizontalPadding(n)
	return b
}

// MarginLeft sets the spaces between the left border and surrounding output.
func (b *Builder) MarginLeft(n int) *Builder {
	b.cfg.MarginLeft = intPtr(n)
	return b
}

func (b *Builder) MarginRight(n int) *Builder {
	b.cfg.MarginRight = intPtr(n)
	return b
}

func (b *Builder) MarginTop(n int) *Builder {
	b.cfg.MarginTop = intPtr(n)
	return b
}

func (b *Builder) MarginBottom(n int) *Builder {
	b.cfg.MarginBottom = intPtr(n)
	return b
}

// HorizontalMargin sets the left and right margins together.
func (b *Builder) HorizontalMargin(n int) *Builder {
	b.MarginLeft(n)
	b.MarginRight(n)
	return b
}

// VerticalMargin sets the blank lines emitted before and after the box.
func (b *Builder) VerticalMargin(n int) *Builder {
	b.MarginTop(n)
	b.MarginBottom(n)
	return b
}

// Margin sets all four margins together.
func (b *Builder) Margin(n int) *Builder {
	b.VerticalMargin(n)
	b.HorizontalMargin(n)
	return b
}

// HeaderMetadata sets the metadata lines rendered above the content.
// Calling it with no kinds explicitly disables an inherited header.
func (b *Builder) HeaderMetadata(kinds ...metadata.Kind) *Builder {
	b.cfg.HeaderMetadata = append([]metadata.Kind{}, kinds...)
	return b
}

// FooterMetadata sets the metadata lines rendered below the content.
func (b *Builder) FooterMetadata(kinds ...metadata.Kind) *Builder {
	b.cfg.FooterMetadata = append([]metadata.Kind{}, kinds...)
	return b
}
