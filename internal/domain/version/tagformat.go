// Package version provides domain types for semantic versioning.
package version

import (
	"strings"

	verrors "github.com/vergo-dev/vergo/internal/errors"
)

// versionPlaceholder is the substitution point in a tag format template.
const versionPlaceholder = "{version}"

// DefaultTagFormat is the conventional "v"-prefixed tag template.
const DefaultTagFormat = "v" + versionPlaceholder

// TagFormat is a bidirectional mapping between a version and a tag name.
// Rendering substitutes the canonical version string into the template;
// parsing is the exact inverse for any tag produced by Render.
type TagFormat struct {
	prefix string
	suffix string
}

// NewTagFormat compiles a tag format template. The template must contain
// the {version} placeholder exactly once.
func NewTagFormat(template string) (TagFormat, error) {
	const op = "version.NewTagFormat"

	idx := strings.Index(template, versionPlaceholder)
	if idx < 0 {
		return TagFormat{}, verrors.Validation(op, "tag format must contain the {version} placeholder")
	}
	if strings.Count(template, versionPlaceholder) > 1 {
		return TagFormat{}, verrors.Validation(op, "tag format must contain the {version} placeholder exactly once")
	}

	return TagFormat{
		prefix: template[:idx],
		suffix: template[idx+len(versionPlaceholder):],
	}, nil
}

// MustTagFormat compiles a tag format template and panics if invalid.
// Use only for known-good templates.
func MustTagFormat(template string) TagFormat {
	f, err := NewTagFormat(template)
	if err != nil {
		panic(err)
	}
	return f
}

// Render produces the tag name for a version.
func (f TagFormat) Render(v SemanticVersion) string {
	var sb strings.Builder
	sb.Grow(len(f.prefix) + len(f.suffix) + 16)
	sb.WriteString(f.prefix)
	sb.WriteString(v.String())
	sb.WriteString(f.suffix)
	return sb.String()
}

// Parse recovers a version from a tag name. The second return value is
// false when the tag does not match the template; callers use this to
// filter unmanaged tags, so a mismatch is never an error.
func (f TagFormat) Parse(tag string) (SemanticVersion, bool) {
	if !strings.HasPrefix(tag, f.prefix) || !strings.HasSuffix(tag, f.suffix) {
		return Zero, false
	}
	// A short tag can satisfy both checks with overlapping prefix and suffix.
	if len(tag) < len(f.prefix)+len(f.suffix) {
		return Zero, false
	}
	body := tag[len(f.prefix) : len(tag)-len(f.suffix)]
	if len(body) == 0 {
		return Zero, false
	}

	v, err := Parse(body)
	if err != nil {
		return Zero, false
	}
	return v, true
}

// Prefix returns the literal text before the version placeholder.
func (f TagFormat) Prefix() string {
	return f.prefix
}

// String returns the template form of the format.
func (f TagFormat) String() string {
	return f.prefix + versionPlaceholder + f.suffix
}
