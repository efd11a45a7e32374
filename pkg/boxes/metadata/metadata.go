// Package metadata generates the header/footer metadata lines a box can
// carry: timestamps and type/identity information about the boxed value.
package metadata

import (
	"reflect"
	"strconv"
	"time"

	"github.com/arthur-debert/boxes/pkg/errors"
)

// Kind identifies one metadata line variant. The set is closed: every
// switch over Kind in this package handles all values and has no default
// branch, so a new Kind fails loudly instead of silently rendering nothing.
type Kind int

const (
	// CurrentTime is the wall-clock time as a human-readable string.
	CurrentTime Kind = iota
	// TimestampSeconds is the Unix timestamp in seconds.
	TimestampSeconds
	// TimestampMillis is the Unix timestamp in milliseconds.
	TimestampMillis
	// FullTypeName is the package-qualified type name of the boxed value.
	FullTypeName
	// ShortTypeName is the bare type name of the boxed value.
	ShortTypeName
	// IdentityToken is a short type@address token identifying the boxed value.
	IdentityToken
)

// kindNames are the canonical names, used by String and ParseKind and by
// the CLI flag / config file surfaces.
var kindNames = map[Kind]string{
	CurrentTime:      "current-time",
	TimestampSeconds: "timestamp-seconds",
	TimestampMillis:  "timestamp-millis",
	FullTypeName:     "full-type-name",
	ShortTypeName:    "short-type-name",
	IdentityToken:    "identity-token",
}

// kindAliases are accepted on input only.
var kindAliases = map[string]Kind{
	"time":       CurrentTime,
	"ts":         TimestampSeconds,
	"ts-ms":      TimestampMillis,
	"type":       FullTypeName,
	"short-type": ShortTypeName,
	"id":         IdentityToken,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind converts a canonical name or alias into a Kind.
func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if s == name {
			return kind, nil
		}
	}
	if kind, ok := kindAliases[s]; ok {
		return kind, nil
	}
	return 0, errors.Newf(errors.ErrUnknownKind, "unknown metadata kind %q", s)
}

// RequiresSource reports whether generating this kind needs the boxed
// value itself rather than just the clock.
func (k Kind) RequiresSource() bool {
	switch k {
	case CurrentTime, TimestampSeconds, TimestampMillis:
		return false
	case FullTypeName, ShortTypeName, IdentityToken:
		return true
	}
	return false
}

// timeFormat is the layout used for CurrentTime lines.
const timeFormat = "2006-01-02 15:04:05"

// Generator produces metadata strings. The clock is injectable so tests
// can pin time.
type Generator struct {
	Now func() time.Time
}

// NewGenerator returns a Generator backed by the system clock.
func NewGenerator() *Generator {
	return &Generator{Now: time.Now}
}

// Generate returns the metadata line for kind. Kinds that introspect the
// boxed value require a non-nil source; passing none is a caller contract
// violation and returns an error instead of a placeholder string.
func (g *Generator) Generate(kind Kind, source interface{}) (string, error) {
	if kind.RequiresSource() && source == nil {
		return "", errors.Newf(errors.ErrNoSource,
			"metadata kind %s requires a source value", kind)
	}

	switch kind {
	case CurrentTime:
		return g.Now().Format(timeFormat), nil
	case TimestampSeconds:
		return strconv.FormatInt(g.Now().Unix(), 10), nil
	case TimestampMillis:
		return strconv.FormatInt(g.Now().UnixMilli(), 10), nil
	case FullTypeName:
		return fullTypeName(source), nil
	case ShortTypeName:
		return shortTypeName(source), nil
	case IdentityToken:
		return identityToken(source)
	}
	return "", errors.Newf(errors.ErrUnknownKind, "unknown metadata kind %d", int(kind))
}

// GenerateAll maps kinds to lines, in order.
func (g *Generator) GenerateAll(kinds []Kind, source interface{}) ([]string, error) {
	lines := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		line, err := g.Generate(kind, source)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// baseType walks through pointers to the underlying type.
func baseType(source interface{}) reflect.Type {
	t := reflect.TypeOf(source)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func fullTypeName(source interface{}) string {
	t := baseType(source)
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

func shortTypeName(source interface{}) string {
	t := baseType(source)
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// identityToken builds a Type@hex token from the value's address. Only
// reference kinds carry a stable address; plain values are a contract
// violation, mirroring the requirement that the source support identity
// introspection.
func identityToken(source interface{}) (string, error) {
	v := reflect.ValueOf(source)
	switch v.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Map, reflect.Func,
		reflect.Slice, reflect.UnsafePointer:
		return shortTypeName(source) + "@" + strconv.FormatUint(uint64(v.Pointer()), 16), nil
	default:
		return "", errors.Newf(errors.ErrNotIdentifiable,
			"identity metadata requires a reference value, got %s", v.Kind())
	}
}
