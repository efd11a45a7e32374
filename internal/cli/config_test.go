package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/boxes/pkg/boxes/metadata"
	"github.com/arthur-debert/boxes/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigFile_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
chars_per_line = 60
wrap_content = false
border_right = false
padding_left = 2
header_metadata = ["current-time", "ts"]
`)

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.CharsPerLine)
	assert.Equal(t, 60, *cfg.CharsPerLine)
	require.NotNil(t, cfg.WrapContent)
	assert.False(t, *cfg.WrapContent)
	require.NotNil(t, cfg.BorderRight)
	assert.False(t, *cfg.BorderRight)
	require.NotNil(t, cfg.PaddingLeft)
	assert.Equal(t, 2, *cfg.PaddingLeft)
	assert.Equal(t, []metadata.Kind{metadata.CurrentTime, metadata.TimestampSeconds},
		cfg.HeaderMetadata)

	// Unnamed fields stay unset.
	assert.Nil(t, cfg.BorderLeft)
	assert.Nil(t, cfg.PaddingRight)
	assert.Nil(t, cfg.PrefixWithNewline)
	assert.Nil(t, cfg.FooterMetadata)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
chars_per_line: 40
margin_top: 1
footer_metadata:
  - timestamp-millis
`)

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.CharsPerLine)
	assert.Equal(t, 40, *cfg.CharsPerLine)
	require.NotNil(t, cfg.MarginTop)
	assert.Equal(t, 1, *cfg.MarginTop)
	assert.Equal(t, []metadata.Kind{metadata.TimestampMillis}, cfg.FooterMetadata)
}

func TestLoadConfigFile_ExplicitZeroIsSet(t *testing.T) {
	path := writeFile(t, "config.toml", "padding_left = 0\n")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.PaddingLeft, "explicit zero must not read as unset")
	assert.Equal(t, 0, *cfg.PaddingLeft)
}

func TestLoadConfigFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.json", "{}")

	_, err := LoadConfigFile(path)
	assert.True(t, errors.IsCode(err, errors.ErrConfigLoad))
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.IsCode(err, errors.ErrConfigLoad))
}

func TestLoadConfigFile_BadMetadataKind(t *testing.T) {
	path := writeFile(t, "config.toml", `header_metadata = ["bogus"]`+"\n")

	_, err := LoadConfigFile(path)
	assert.True(t, errors.IsCode(err, errors.ErrUnknownKind))
}

func TestDiscoverConfigFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	assert.Equal(t, "", DiscoverConfigFile(), "nothing to find yet")

	dir := filepath.Join(configHome, "boxes")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("chars_per_line = 50\n"), 0o644))

	assert.Equal(t, path, DiscoverConfigFile())
}

func TestRun_WithConfigFile(t *testing.T) {
	path := writeFile(t, "config.toml", "chars_per_line = 20\nwrap_content = false\n")

	out, err := runCommand(t, "", "--no-color", "--config", path, "hi")
	require.NoError(t, err)

	for _, row := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Equal(t, 20, len([]rune(row)))
	}
}

func TestRun_FlagsBeatConfigFile(t *testing.T) {
	path := writeFile(t, "config.toml", "chars_per_line = 20\nwrap_content = false\n")

	out, err := runCommand(t, "", "--no-color", "--config", path, "--chars-per-line=12", "hi")
	require.NoError(t, err)

	for _, row := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Equal(t, 12, len([]rune(row)))
	}
}
