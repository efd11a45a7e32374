package cli

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/boxes/pkg/boxes/config"
	"github.com/arthur-debert/boxes/pkg/boxes/metadata"
	"github.com/arthur-debert/boxes/pkg/errors"
)

// fileConfig mirrors config.Config for unmarshalling. Pointer fields
// keep the unset/set distinction so a defaults file can override exactly
// the fields it names.
type fileConfig struct {
	PrefixWithNewline *bool `koanf:"prefix_with_newline"`
	CharsPerLine      *int  `koanf:"chars_per_line"`
	WrapContent       *bool `koanf:"wrap_content"`

	BorderLeft   *bool `koanf:"border_left"`
	BorderRight  *bool `koanf:"border_right"`
	BorderTop    *bool `koanf:"border_top"`
	BorderBottom *bool `koanf:"border_bottom"`

	PaddingLeft   *int `koanf:"padding_left"`
	PaddingRight  *int `koanf:"padding_right"`
	PaddingTop    *int `koanf:"padding_top"`
	PaddingBottom *int `koanf:"padding_bottom"`

	MarginLeft   *int `koanf:"margin_left"`
	MarginRight  *int `koanf:"margin_right"`
	MarginTop    *int `koanf:"margin_top"`
	MarginBottom *int `koanf:"margin_bottom"`

	HeaderMetadata []string `koanf:"header_metadata"`
	FooterMetadata []string `koanf:"footer_metadata"`
}

// LoadConfigFile reads a TOML or YAML defaults file into a partial
// configuration, suitable as the formatter's instance layer.
func LoadConfigFile(path string) (config.Config, error) {
	k := koanf.New(".")

	parser, err := parserFor(path)
	if err != nil {
		return config.Config{}, err
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return config.Config{}, errors.Wrapf(err, errors.ErrConfigLoad,
			"loading defaults file %s", path)
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return config.Config{}, errors.Wrapf(err, errors.ErrConfigParse,
			"parsing defaults file %s", path)
	}

	return fc.toConfig()
}

// DiscoverConfigFile finds the defaults file in the XDG config dir, if
// one exists. It returns "" when none is found.
func DiscoverConfigFile() string {
	for _, name := range []string{
		filepath.Join("boxes", "config.toml"),
		filepath.Join("boxes", "config.yaml"),
		filepath.Join("boxes", "config.yml"),
	} {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ktoml.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported defaults file extension %q (want .toml, .yaml or .yml)",
			filepath.Ext(path))
	}
}

func (fc fileConfig) toConfig() (config.Config, error) {
	cfg := config.Config{
		PrefixWithNewline: fc.PrefixWithNewline,
		CharsPerLine:      fc.CharsPerLine,
		WrapContent:       fc.WrapContent,
		BorderLeft:        fc.BorderLeft,
		BorderRight:       fc.BorderRight,
		BorderTop:         fc.BorderTop,
		BorderBottom:      fc.BorderBottom,
		PaddingLeft:       fc.PaddingLeft,
		PaddingRight:      fc.PaddingRight,
		PaddingTop:        fc.PaddingTop,
		PaddingBottom:     fc.PaddingBottom,
		MarginLeft:        fc.MarginLeft,
		MarginRight:       fc.MarginRight,
		MarginTop:         fc.MarginTop,
		MarginBottom:      fc.MarginBottom,
	}

	header, err := parseKinds(fc.HeaderMetadata)
	if err != nil {
		return config.Config{}, err
	}
	footer, err := parseKinds(fc.FooterMetadata)
	if err != nil {
		return config.Config{}, err
	}
	cfg.HeaderMetadata = header
	cfg.FooterMetadata = footer

	return cfg, nil
}

func parseKinds(names []string) ([]metadata.Kind, error) {
	if names == nil {
		return nil, nil
	}
	kinds := make([]metadata.Kind, 0, len(names))
	for _, name := range names {
		kind, err := metadata.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
