package geometry

import (
	"testing"

	"github.com/arthur-debert/boxes/pkg/boxes/config"
	"github.com/stretchr/testify/assert"
)

func TestBorderCount(t *testing.T) {
	tests := []struct {
		name     string
		left     bool
		right    bool
		expected int
	}{
		{"both borders", true, true, 2},
		{"left only", true, false, 1},
		{"right only", false, true, 1},
		{"no borders", false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Resolve(config.NewBuilder().
				BorderLeft(tt.left).
				BorderRight(tt.right).
				Build())
			assert.Equal(t, tt.expected, BorderCount(cfg))
		})
	}
}

func TestMaxContentWidth_Defaults(t *testing.T) {
	// 80 - 1 - 1 - 0 - 0 - 2
	assert.Equal(t, 76, MaxContentWidth(config.Resolve()))
}

func TestMaxLineWidth_Defaults(t *testing.T) {
	// Padding stays inside the line span: 80 - 0 - 0 - 2.
	assert.Equal(t, 78, MaxLineWidth(config.Resolve()))
}

func TestWidths_AllKnobs(t *testing.T) {
	cfg := config.Resolve(config.NewBuilder().
		CharsPerLine(50).
		PaddingLeft(2).PaddingRight(3).
		MarginLeft(4).MarginRight(5).
		BorderLeft(true).BorderRight(false).
		Build())

	assert.Equal(t, 50-2-3-4-5-1, MaxContentWidth(cfg))
	assert.Equal(t, 50-4-5-1, MaxLineWidth(cfg))

	w := Derive(cfg)
	assert.Equal(t, MaxContentWidth(cfg), w.Content)
	assert.Equal(t, MaxLineWidth(cfg), w.Line)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.Config
		valid bool
	}{
		{
			name:  "defaults are valid",
			cfg:   config.Config{},
			valid: true,
		},
		{
			name: "padding and borders eat the whole budget",
			// 2 - 1 - 1 - 2 = -2
			cfg: config.NewBuilder().
				CharsPerLine(2).
				PaddingLeft(1).PaddingRight(1).
				BorderLeft(true).BorderRight(true).
				Build(),
			valid: false,
		},
		{
			name: "exactly zero content width is invalid",
			// 4 - 1 - 1 - 2 = 0
			cfg: config.NewBuilder().
				CharsPerLine(4).
				Build(),
			valid: false,
		},
		{
			name: "one column of content is enough",
			// 5 - 1 - 1 - 2 = 1
			cfg: config.NewBuilder().
				CharsPerLine(5).
				Build(),
			valid: true,
		},
		{
			name: "huge margins overflow the budget",
			cfg: config.NewBuilder().
				Margin(50).
				Build(),
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Validate(config.Resolve(tt.cfg)))
		})
	}
}
