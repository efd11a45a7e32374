// Package boxes renders text as a box drawn with line characters, for
// console and log output that needs to stand apart from its surroundings.
//
// A Formatter carries an instance-level configuration; each call may add
// a per-call override on top. Both layers sit over the compiled defaults,
// and later layers win field by field, so a caller only ever states what
// it wants changed:
//
//	f := boxes.New()
//	out, _ := f.Format([]string{"hello"})
//
//	narrow := config.NewBuilder().CharsPerLine(40).Build()
//	out, _ = f.FormatWith([]string{"hello"}, narrow)
//
// Geometrically impossible configurations never fail a call: the
// formatter falls back to the nearest valid layer and says so in a
// warning line above the box. Errors are reserved for caller contract
// violations such as requesting type metadata without a source value.
package boxes

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/boxes/pkg/boxes/config"
	"github.com/arthur-debert/boxes/pkg/boxes/content"
	"github.com/arthur-debert/boxes/pkg/boxes/geometry"
	"github.com/arthur-debert/boxes/pkg/boxes/metadata"
	"github.com/arthur-debert/boxes/pkg/boxes/render"
	"github.com/arthur-debert/boxes/pkg/errors"
	"github.com/arthur-debert/boxes/pkg/logging"
)

// Config and Resolved are re-exported so callers with simple needs only
// import this package.
type (
	Config   = config.Config
	Resolved = config.Resolved
)

// NewBuilder returns an empty configuration builder.
func NewBuilder() *config.Builder {
	return config.NewBuilder()
}

// LineSource supplies the content lines for a box. Values implementing
// it can be formatted directly and double as the introspection subject
// for type and identity metadata.
type LineSource interface {
	ToLines() []string
}

// Formatter renders boxes under a cached instance-level configuration.
// The resolved configuration and the widths derived from it form one
// atomic unit: both are replaced together under the same lock, so no
// call ever pairs a configuration with stale widths. A zero-cost
// read-lock snapshot keeps concurrent Format calls safe alongside
// SetConfiguration.
type Formatter struct {
	mu sync.RWMutex

	// instance is the instance layer exactly as last set.
	instance config.Config
	// resolved is the instance layer over the compiled defaults.
	resolved config.Resolved
	// valid records whether resolved is drawable. When false, effective
	// holds the compiled defaults and every call carries a warning line.
	valid bool
	// effective is what format calls actually use.
	effective config.Resolved
	// widths is derived from effective, always in lockstep with it.
	widths geometry.Widths

	gen    *metadata.Generator
	logger zerolog.Logger
}

// New returns a Formatter using the compiled default configuration.
func New() *Formatter {
	return NewWithGenerator(metadata.NewGenerator())
}

// NewWithConfig returns a Formatter with cfg merged over the compiled
// defaults as its instance-level configuration.
func NewWithConfig(cfg config.Config) *Formatter {
	f := New()
	f.SetConfiguration(cfg)
	return f
}

// NewWithGenerator returns a Formatter using the given metadata
// generator, letting callers inject a pinned clock.
func NewWithGenerator(gen *metadata.Generator) *Formatter {
	f := &Formatter{
		gen:    gen,
		logger: logging.GetLogger("boxes.formatter"),
	}
	f.install(config.Config{})
	return f
}

// SetConfiguration replaces the instance-level configuration with cfg
// merged over the compiled defaults. An invalid result is kept for
// inspection but not used: rendering falls back to the defaults until a
// valid configuration is set.
func (f *Formatter) SetConfiguration(cfg config.Config) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.install(cfg)
}

// install recomputes the configuration/widths unit. Callers hold the
// write lock (or exclusive ownership during construction). The config is
// cloned so later merges never alias the caller's metadata slices.
func (f *Formatter) install(cfg config.Config) {
	f.instance = cfg.Clone()
	f.resolved = config.Resolve(cfg)
	f.valid = geometry.Validate(f.resolved)

	if f.valid {
		f.effective = f.resolved
	} else {
		f.effective = config.Resolve()
		f.logger.Warn().
			Int("contentWidth", geometry.MaxContentWidth(f.resolved)).
			Msg("instance configuration has no room for content, falling back to defaults")
	}
	f.widths = geometry.Derive(f.effective)
}

// Configuration returns the currently resolved instance-level
// configuration, even while it is invalid and rendering is falling back,
// so callers can inspect exactly what they installed.
func (f *Formatter) Configuration() config.Resolved {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.resolved.Clone()
}

// Format renders lines under the instance-level configuration.
func (f *Formatter) Format(lines []string) (string, error) {
	return f.format(lines, nil, nil)
}

// FormatWith renders lines with override merged, for this call only,
// over the instance-level configuration.
func (f *Formatter) FormatWith(lines []string, override config.Config) (string, error) {
	return f.format(lines, &override, nil)
}

// FormatSource renders a LineSource. The source also serves as the
// subject for type and identity metadata.
func (f *Formatter) FormatSource(source LineSource) (string, error) {
	if source == nil {
		return "", errors.New(errors.ErrNilSource, "source must not be nil")
	}
	return f.format(source.ToLines(), nil, source)
}

// FormatSourceWith renders a LineSource with a per-call override.
func (f *Formatter) FormatSourceWith(source LineSource, override config.Config) (string, error) {
	if source == nil {
		return "", errors.New(errors.ErrNilSource, "source must not be nil")
	}
	return f.format(source.ToLines(), &override, source)
}

// format is the single rendering path. A per-call override never touches
// instance state: it resolves, validates and falls back entirely within
// this call's locals.
func (f *Formatter) format(lines []string, override *config.Config, source interface{}) (string, error) {
	f.mu.RLock()
	instance := f.instance
	effective := f.effective
	widths := f.widths
	valid := f.valid
	f.mu.RUnlock()

	var warnings []string
	if !valid {
		warnings = append(warnings, render.InstanceFallbackWarning)
	}

	if override != nil {
		var call config.Resolved
		if valid {
			call = config.Resolve(instance, *override)
		} else {
			call = config.Resolve(*override)
		}
		if geometry.Validate(call) {
			effective = call
			widths = geometry.Derive(call)
		} else {
			warnings = append(warnings, render.CallFallbackWarning)
			f.logger.Warn().
				Int("contentWidth", geometry.MaxContentWidth(call)).
				Msg("override configuration has no room for content, ignoring it for this call")
		}
	}

	task, err := content.Prepare(lines, effective, widths, f.gen, source)
	if err != nil {
		return "", err
	}

	f.logger.Trace().
		Int("lines", len(task.Lines)).
		Int("contentWidth", task.ContentWidth).
		Int("lineWidth", task.LineWidth).
		Msg("rendering box")

	return render.Render(task, effective, warnings), nil
}
