// Package cli builds the boxes command line: flag parsing, defaults-file
// discovery, and the glue from flags to a per-call configuration.
package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/boxes/pkg/boxes"
	"github.com/arthur-debert/boxes/pkg/boxes/config"
	"github.com/arthur-debert/boxes/pkg/boxes/style"
	"github.com/arthur-debert/boxes/pkg/errors"
	"github.com/arthur-debert/boxes/pkg/logging"
)

type boxFlags struct {
	configPath string
	theme      string
	noColor    bool
	verbosity  int

	prefixNewline bool
	charsPerLine  int
	wrap          bool

	borders      bool
	borderLeft   bool
	borderRight  bool
	borderTop    bool
	borderBottom bool

	padding       int
	paddingLeft   int
	paddingRight  int
	paddingTop    int
	paddingBottom int

	margin       int
	marginLeft   int
	marginRight  int
	marginTop    int
	marginBottom int

	header []string
	footer []string
}

// NewRootCmd builds the boxes root command.
func NewRootCmd() *cobra.Command {
	flags := &boxFlags{}

	cmd := &cobra.Command{
		Use:   "boxes [line]...",
		Short: "Draw a box around text",
		Long: `boxes renders text inside a box drawn with line characters.

Lines are taken from the arguments, one argument per line, or from stdin
when no arguments are given. An empty line renders as a section break.

Defaults are read from the XDG config dir (boxes/config.toml or .yaml)
when present; flags apply on top, per call.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBox(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.Flags().StringVar(&flags.configPath, "config", "",
		"Defaults file (default: boxes/config.{toml,yaml} under the XDG config dir)")
	cmd.Flags().StringVar(&flags.theme, "theme", "plain",
		fmt.Sprintf("Color theme: %v", style.Names()))
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false,
		"Disable colors even on a terminal")

	cmd.Flags().BoolVar(&flags.prefixNewline, "prefix-newline", false,
		"Emit a near-empty line before the box")
	cmd.Flags().IntVar(&flags.charsPerLine, "chars-per-line", 0,
		"Total box width budget, borders, padding and margins included")
	cmd.Flags().BoolVar(&flags.wrap, "wrap", true,
		"Shrink the box to the longest line (--wrap=false for a fixed width)")

	cmd.Flags().BoolVar(&flags.borders, "borders", true, "Draw all four borders")
	cmd.Flags().BoolVar(&flags.borderLeft, "border-left", true, "Draw the left border")
	cmd.Flags().BoolVar(&flags.borderRight, "border-right", true, "Draw the right border")
	cmd.Flags().BoolVar(&flags.borderTop, "border-top", true, "Draw the top border")
	cmd.Flags().BoolVar(&flags.borderBottom, "border-bottom", true, "Draw the bottom border")

	cmd.Flags().IntVar(&flags.padding, "padding", 0, "Padding on all four sides")
	cmd.Flags().IntVar(&flags.paddingLeft, "padding-left", 0, "Left padding")
	cmd.Flags().IntVar(&flags.paddingRight, "padding-right", 0, "Right padding")
	cmd.Flags().IntVar(&flags.paddingTop, "padding-top", 0, "Top padding rows")
	cmd.Flags().IntVar(&flags.paddingBottom, "padding-bottom", 0, "Bottom padding rows")

	cmd.Flags().IntVar(&flags.margin, "margin", 0, "Margin on all four sides")
	cmd.Flags().IntVar(&flags.marginLeft, "margin-left", 0, "Left margin")
	cmd.Flags().IntVar(&flags.marginRight, "margin-right", 0, "Right margin")
	cmd.Flags().IntVar(&flags.marginTop, "margin-top", 0, "Top margin lines")
	cmd.Flags().IntVar(&flags.marginBottom, "margin-bottom", 0, "Bottom margin lines")

	cmd.Flags().StringSliceVar(&flags.header, "header", nil,
		"Header metadata kinds (current-time, timestamp-seconds, timestamp-millis)")
	cmd.Flags().StringSliceVar(&flags.footer, "footer", nil,
		"Footer metadata kinds")

	return cmd
}

func runBox(cmd *cobra.Command, args []string, flags *boxFlags) error {
	formatter := boxes.New()

	configPath := flags.configPath
	if configPath == "" {
		configPath = DiscoverConfigFile()
	}
	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return err
		}
		log.Debug().Str("path", configPath).Msg("Loaded defaults file")
		formatter.SetConfiguration(fileCfg)
	}

	override, err := overrideFromFlags(cmd, flags)
	if err != nil {
		return err
	}

	lines, err := gatherLines(cmd, args)
	if err != nil {
		return err
	}

	out, err := formatter.FormatWith(lines, override)
	if err != nil {
		return err
	}

	if theme := pickTheme(flags); theme != nil {
		out = style.Colorize(out, *theme)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// overrideFromFlags builds the per-call layer from exactly the flags the
// user changed, preserving the unset/set distinction. Fan-out flags
// apply before per-side ones so the latter can override the former, the
// same composition the builder's convenience setters give.
func overrideFromFlags(cmd *cobra.Command, flags *boxFlags) (config.Config, error) {
	b := config.NewBuilder()
	changed := cmd.Flags().Changed

	if changed("prefix-newline") {
		b.PrefixWithNewline(flags.prefixNewline)
	}
	if changed("chars-per-line") {
		b.CharsPerLine(flags.charsPerLine)
	}
	if changed("wrap") {
		b.WrapContent(flags.wrap)
	}

	if changed("borders") {
		b.Borders(flags.borders)
	}
	if changed("border-left") {
		b.BorderLeft(flags.borderLeft)
	}
	if changed("border-right") {
		b.BorderRight(flags.borderRight)
	}
	if changed("border-top") {
		b.BorderTop(flags.borderTop)
	}
	if changed("border-bottom") {
		b.BorderBottom(flags.borderBottom)
	}

	if changed("padding") {
		b.Padding(flags.padding)
	}
	if changed("padding-left") {
		b.PaddingLeft(flags.paddingLeft)
	}
	if changed("padding-right") {
		b.PaddingRight(flags.paddingRight)
	}
	if changed("padding-top") {
		b.PaddingTop(flags.paddingTop)
	}
	if changed("padding-bottom") {
		b.PaddingBottom(flags.paddingBottom)
	}

	if changed("margin") {
		b.Margin(flags.margin)
	}
	if changed("margin-left") {
		b.MarginLeft(flags.marginLeft)
	}
	if changed("margin-right") {
		b.MarginRight(flags.marginRight)
	}
	if changed("margin-top") {
		b.MarginTop(flags.marginTop)
	}
	if changed("margin-bottom") {
		b.MarginBottom(flags.marginBottom)
	}

	if changed("header") {
		kinds, err := parseKinds(flags.header)
		if err != nil {
			return config.Config{}, err
		}
		b.HeaderMetadata(kinds...)
	}
	if changed("footer") {
		kinds, err := parseKinds(flags.footer)
		if err != nil {
			return config.Config{}, err
		}
		b.FooterMetadata(kinds...)
	}

	return b.Build(), nil
}

// gatherLines takes one line per argument, or reads stdin when no
// arguments are given.
func gatherLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "reading stdin")
	}
	return lines, nil
}

// pickTheme returns the theme to apply, or nil for plain output. Color
// needs a named theme, a terminal on stdout and no --no-color.
func pickTheme(flags *boxFlags) *style.Theme {
	if flags.noColor {
		return nil
	}
	theme, ok := style.Named(flags.theme)
	if !ok || theme.Name == "plain" {
		return nil
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return nil
	}
	if !style.ColorSupported() {
		return nil
	}
	return &theme
}
