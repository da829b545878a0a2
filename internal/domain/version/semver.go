// Package version provides domain types for semantic versioning.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SemanticVersion is a value object representing a semantic version.
// A prerelease is always the pair (token, revision), e.g. "rc.2".
// All operations return new instances.
type SemanticVersion struct {
	major       uint64
	minor       uint64
	patch       uint64
	preToken    string
	preRevision uint64
}

// Common prerelease tokens.
const (
	TokenAlpha = "alpha"
	TokenBeta  = "beta"
	TokenRC    = "rc"
)

var (
	// semverRegex validates semantic version strings. The prerelease part
	// must be a token followed by a numeric revision ("rc.1", "beta.3").
	semverRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z-]+)\.([1-9]\d*))?$`)

	// Zero is the zero version (0.0.0).
	Zero = SemanticVersion{}

	// Initial is the conventional first release (0.1.0).
	Initial = SemanticVersion{minor: 1}
)

// New creates a new SemanticVersion value object.
func New(major, minor, patch uint64) SemanticVersion {
	return SemanticVersion{
		major: major,
		minor: minor,
		patch: patch,
	}
}

// NewPrerelease creates a new SemanticVersion with a prerelease token and revision.
func NewPrerelease(major, minor, patch uint64, token string, revision uint64) SemanticVersion {
	return SemanticVersion{
		major:       major,
		minor:       minor,
		patch:       patch,
		preToken:    token,
		preRevision: revision,
	}
}

// Parse parses a semantic version string into a SemanticVersion value object.
// Returns an error if the string is not a valid semantic version.
func Parse(s string) (SemanticVersion, error) {
	matches := semverRegex.FindStringSubmatch(s)
	if matches == nil {
		return Zero, fmt.Errorf("invalid semantic version: %q", s)
	}

	major, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("invalid major version: %w", err)
	}

	minor, err := strconv.ParseUint(matches[2], 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("invalid minor version: %w", err)
	}

	patch, err := strconv.ParseUint(matches[3], 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("invalid patch version: %w", err)
	}

	v := SemanticVersion{
		major: major,
		minor: minor,
		patch: patch,
	}

	if matches[4] != "" {
		rev, err := strconv.ParseUint(matches[5], 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("invalid prerelease revision: %w", err)
		}
		v.preToken = matches[4]
		v.preRevision = rev
	}

	return v, nil
}

// MustParse parses a semantic version string and panics if invalid.
// Use only for known-good version strings.
func MustParse(s string) SemanticVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Major returns the major version component.
func (v SemanticVersion) Major() uint64 {
	return v.major
}

// Minor returns the minor version component.
func (v SemanticVersion) Minor() uint64 {
	return v.minor
}

// Patch returns the patch version component.
func (v SemanticVersion) Patch() uint64 {
	return v.patch
}

// PrereleaseToken returns the prerelease token ("rc", "beta", ...).
func (v SemanticVersion) PrereleaseToken() string {
	return v.preToken
}

// PrereleaseRevision returns the prerelease revision counter.
func (v SemanticVersion) PrereleaseRevision() uint64 {
	return v.preRevision
}

// IsPrerelease returns true if this is a prerelease version.
func (v SemanticVersion) IsPrerelease() bool {
	return v.preToken != ""
}

// IsZero returns true if this is the zero version.
func (v SemanticVersion) IsZero() bool {
	return v == Zero
}

// String returns the canonical string representation of the version.
func (v SemanticVersion) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.major, v.minor, v.patch)

	if v.preToken != "" {
		fmt.Fprintf(&sb, "-%s.%d", v.preToken, v.preRevision)
	}

	return sb.String()
}

// WithPrerelease returns a new version carrying the given token and revision.
func (v SemanticVersion) WithPrerelease(token string, revision uint64) SemanticVersion {
	return SemanticVersion{
		major:       v.major,
		minor:       v.minor,
		patch:       v.patch,
		preToken:    token,
		preRevision: revision,
	}
}

// WithoutPrerelease returns a new version without the prerelease pair.
func (v SemanticVersion) WithoutPrerelease() SemanticVersion {
	return SemanticVersion{
		major: v.major,
		minor: v.minor,
		patch: v.patch,
	}
}

// BumpMajor returns a new final version with the major component incremented.
func (v SemanticVersion) BumpMajor() SemanticVersion {
	return SemanticVersion{major: v.major + 1}
}

// BumpMinor returns a new final version with the minor component incremented.
func (v SemanticVersion) BumpMinor() SemanticVersion {
	return SemanticVersion{major: v.major, minor: v.minor + 1}
}

// BumpPatch returns a new final version with the patch component incremented.
func (v SemanticVersion) BumpPatch() SemanticVersion {
	return SemanticVersion{major: v.major, minor: v.minor, patch: v.patch + 1}
}

// SameTuple returns true if both versions share (major, minor, patch).
func (v SemanticVersion) SameTuple(other SemanticVersion) bool {
	return v.major == other.major && v.minor == other.minor && v.patch == other.patch
}

// TupleCompare compares only the (major, minor, patch) tuples.
// Returns -1 if v < other, 0 if equal, 1 if v > other.
func (v SemanticVersion) TupleCompare(other SemanticVersion) int {
	if v.major != other.major {
		if v.major < other.major {
			return -1
		}
		return 1
	}
	if v.minor != other.minor {
		if v.minor < other.minor {
			return -1
		}
		return 1
	}
	if v.patch != other.patch {
		if v.patch < other.patch {
			return -1
		}
		return 1
	}
	return 0
}

// Compare compares two versions.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
// A final release outranks any prerelease of the same tuple. Prereleases
// with the same tuple and token are ordered by revision. Different tokens
// have no semantic ordering; they compare lexicographically so that sorting
// stays a strict total order.
func (v SemanticVersion) Compare(other SemanticVersion) int {
	if c := v.TupleCompare(other); c != 0 {
		return c
	}

	if v.preToken == "" && other.preToken != "" {
		return 1
	}
	if v.preToken != "" && other.preToken == "" {
		return -1
	}
	if v.preToken != other.preToken {
		if v.preToken < other.preToken {
			return -1
		}
		return 1
	}
	if v.preRevision != other.preRevision {
		if v.preRevision < other.preRevision {
			return -1
		}
		return 1
	}
	return 0
}

// LessThan returns true if v < other.
func (v SemanticVersion) LessThan(other SemanticVersion) bool {
	return v.Compare(other) < 0
}

// GreaterThan returns true if v > other.
func (v SemanticVersion) GreaterThan(other SemanticVersion) bool {
	return v.Compare(other) > 0
}

// Equal returns true if all components of both versions are equal.
func (v SemanticVersion) Equal(other SemanticVersion) bool {
	return v == other
}
