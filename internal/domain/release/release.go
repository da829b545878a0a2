// Package release provides the version resolver and release history domain.
package release

import (
	"time"

	"github.com/vergo-dev/vergo/internal/domain/changes"
	"github.com/vergo-dev/vergo/internal/domain/version"
)

// Release is one released bucket of the commit history: the commits
// between its tag and the next older managed tag. Immutable after the
// builder finishes one pass.
type Release struct {
	// Version is the version recovered from the release tag.
	Version version.SemanticVersion
	// Tag is the tag name marking the release boundary.
	Tag string
	// Commits holds the release's classified commits, newest first.
	Commits []changes.Token
	// CommittedAt is the authored date of the tagged commit.
	CommittedAt time.Time
}

// ChangelogCommits returns the release's commits with bookkeeping-only
// (excluded) entries filtered out, preserving order.
func (r *Release) ChangelogCommits() []changes.Token {
	out := make([]changes.Token, 0, len(r.Commits))
	for _, t := range r.Commits {
		if !t.Excluded {
			out = append(out, t)
		}
	}
	return out
}

// WarningKind classifies a non-fatal diagnostic raised during a build.
type WarningKind string

const (
	// WarningDanglingTag marks a managed tag whose target commit the walk
	// never reached.
	WarningDanglingTag WarningKind = "dangling_tag"
	// WarningParse marks a commit whose message failed to parse at the
	// encoding level.
	WarningParse WarningKind = "parse"
)

// Warning is a non-fatal diagnostic surfaced to the caller. The affected
// commit or tag stays in (or out of) the history per the warning kind;
// the build itself continues.
type Warning struct {
	Kind    WarningKind
	Tag     string
	SHA     string
	Message string
}

// ReleaseHistory is the ordered collection of releases recovered from one
// walk, newest first, plus the unreleased head bucket. Every commit in
// the walked range appears in exactly one release or in Unreleased.
type ReleaseHistory struct {
	// Released holds the recognized releases, newest first.
	Released []*Release
	// Unreleased holds the classified commits above the newest tag.
	Unreleased []changes.Token
	// Warnings holds the non-fatal diagnostics raised during the build.
	Warnings []Warning
}

// Latest returns the newest release, or nil when none exists.
func (h *ReleaseHistory) Latest() *Release {
	if len(h.Released) == 0 {
		return nil
	}
	return h.Released[0]
}

// LatestVersion returns the newest released version, or nil.
func (h *ReleaseHistory) LatestVersion() *version.SemanticVersion {
	if r := h.Latest(); r != nil {
		v := r.Version
		return &v
	}
	return nil
}

// LatestFinal returns the newest non-prerelease release, or nil.
func (h *ReleaseHistory) LatestFinal() *Release {
	for _, r := range h.Released {
		if !r.Version.IsPrerelease() {
			return r
		}
	}
	return nil
}

// LatestFinalVersion returns the newest non-prerelease version, or nil.
func (h *ReleaseHistory) LatestFinalVersion() *version.SemanticVersion {
	if r := h.LatestFinal(); r != nil {
		v := r.Version
		return &v
	}
	return nil
}

// ByVersion returns the release with the given version, or nil.
func (h *ReleaseHistory) ByVersion(v version.SemanticVersion) *Release {
	for _, r := range h.Released {
		if r.Version.Equal(v) {
			return r
		}
	}
	return nil
}

// CommitCount returns the total number of commits across all buckets.
func (h *ReleaseHistory) CommitCount() int {
	n := len(h.Unreleased)
	for _, r := range h.Released {
		n += len(r.Commits)
	}
	return n
}
