package boxes

// The package-level formatter mirrors the Formatter API for callers that
// want one shared, process-wide configuration. It is an ordinary
// Formatter, so the same configuration/widths atomicity applies.
var std = New()

// Format renders lines with the shared formatter.
func Format(lines []string) (string, error) {
	return std.Format(lines)
}

// FormatWith renders lines with a per-call override on the shared formatter.
func FormatWith(lines []string, override Config) (string, error) {
	return std.FormatWith(lines, override)
}

// FormatSource renders a LineSource with the shared formatter.
func FormatSource(source LineSource) (string, error) {
	return std.FormatSource(source)
}

// FormatSourceWith renders a LineSource with a per-call override.
func FormatSourceWith(source LineSource, override Config) (string, error) {
	return std.FormatSourceWith(source, override)
}

// SetConfiguration replaces the shared formatter's instance-level
// configuration.
func SetConfiguration(cfg Config) {
	std.SetConfiguration(cfg)
}

// Configuration returns the shared formatter's resolved instance-level
// configuration.
func Configuration() Resolved {
	return std.Configuration()
}
