package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/boxes/pkg/boxes/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	// Hide any real user defaults file from discovery.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_ArgsAsLines(t *testing.T) {
	out, err := runCommand(t, "", "--no-color", "hello")
	require.NoError(t, err)

	assert.Equal(t, "┌───────┐\n│ hello │\n└───────┘\n", out)
}

func TestRun_StdinLines(t *testing.T) {
	out, err := runCommand(t, "one\ntwo\n", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "│ one │")
	assert.Contains(t, out, "│ two │")
}

func TestRun_EmptyArgBecomesSectionBreak(t *testing.T) {
	out, err := runCommand(t, "", "--no-color", "a", "", "b")
	require.NoError(t, err)

	assert.Contains(t, out, "├┄┄┄┤")
}

func TestRun_FixedWidthFlags(t *testing.T) {
	out, err := runCommand(t, "", "--no-color", "--wrap=false", "--chars-per-line=20", "hi")
	require.NoError(t, err)

	for _, row := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Equal(t, 20, len([]rune(row)))
	}
}

func TestRun_BordersOff(t *testing.T) {
	out, err := runCommand(t, "", "--no-color", "--borders=false", "hi")
	require.NoError(t, err)

	assert.Equal(t, " hi \n", out)
}

func TestRun_FanOutThenPerSide(t *testing.T) {
	out, err := runCommand(t, "", "--no-color", "--padding=2", "--padding-left=0", "hi")
	require.NoError(t, err)

	assert.Contains(t, out, "│hi  │")
}

func TestRun_BadMetadataKind(t *testing.T) {
	_, err := runCommand(t, "", "--no-color", "--header=bogus", "hi")
	assert.Error(t, err)
}

func TestRun_InvalidWidthFallsBackWithWarning(t *testing.T) {
	out, err := runCommand(t, "", "--no-color", "--chars-per-line=2", "hi")
	require.NoError(t, err, "invalid geometry is a warning, not an error")

	assert.Contains(t, out, "WARNING:")
	assert.Contains(t, out, "│ hi │")
}

func TestOverrideFromFlags_OnlyChangedFlagsSet(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--chars-per-line=30", "--border-left=false"}))

	flags := &boxFlags{}
	// Re-parse into a fresh flag struct via the command's own flag set.
	charsPerLine, err := cmd.Flags().GetInt("chars-per-line")
	require.NoError(t, err)
	flags.charsPerLine = charsPerLine
	borderLeft, err := cmd.Flags().GetBool("border-left")
	require.NoError(t, err)
	flags.borderLeft = borderLeft

	cfg, err := overrideFromFlags(cmd, flags)
	require.NoError(t, err)

	require.NotNil(t, cfg.CharsPerLine)
	assert.Equal(t, 30, *cfg.CharsPerLine)
	require.NotNil(t, cfg.BorderLeft)
	assert.False(t, *cfg.BorderLeft)

	// Untouched flags stay unset even though they carry defaults.
	assert.Nil(t, cfg.WrapContent)
	assert.Nil(t, cfg.BorderRight)
	assert.Nil(t, cfg.PaddingLeft)
	assert.Nil(t, cfg.HeaderMetadata)
}

func TestParseKinds(t *testing.T) {
	kinds, err := parseKinds([]string{"current-time", "ts"})
	require.NoError(t, err)
	assert.Equal(t, []metadata.Kind{metadata.CurrentTime, metadata.TimestampSeconds}, kinds)

	kinds, err = parseKinds(nil)
	require.NoError(t, err)
	assert.Nil(t, kinds)

	_, err = parseKinds([]string{"bogus"})
	assert.Error(t, err)
}
