package release

import (
	"github.com/vergo-dev/vergo/internal/domain/changes"
	"github.com/vergo-dev/vergo/internal/domain/version"
)

// Policy carries the configuration knobs of the version resolver.
type Policy struct {
	// Initial is the version of the first release ever.
	Initial version.SemanticVersion
	// MajorOnZero controls major bumps while the major component is 0.
	// When false, a major-level change on a 0.x tree is applied as a
	// minor bump, keeping the tree on 0.x until explicitly promoted.
	MajorOnZero bool
}

// DefaultPolicy returns the conventional resolver policy: first release
// 0.1.0, major bumps applied normally.
func DefaultPolicy() Policy {
	return Policy{
		Initial:     version.Initial,
		MajorOnZero: true,
	}
}

// Resolve computes the next version for a branch. current is the latest
// released version reachable from the branch (nil when no release exists);
// latestFinal is the latest non-prerelease version (nil when none exists).
// The second return value is false when no release is warranted by the
// pending tokens.
func Resolve(current, latestFinal *version.SemanticVersion, tokens []changes.Token, rule ChannelRule, pol Policy) (version.SemanticVersion, bool, error) {
	agg := changes.AggregateBump(tokens)

	// First release ever: the initial version applies regardless of the
	// aggregate bump level. A major-level change promotes a 0.x initial
	// version to 1.0.0 only under the MajorOnZero policy.
	if current == nil {
		if len(tokens) == 0 {
			return version.Zero, false, nil
		}
		next := pol.Initial
		if agg == changes.BumpMajor && pol.MajorOnZero && pol.Initial.Major() == 0 {
			next = version.New(1, 0, 0)
		}
		if rule.Prerelease() {
			next = next.WithPrerelease(rule.Token(), 1)
		}
		return next, true, nil
	}

	if agg == changes.BumpNone {
		return version.Zero, false, nil
	}

	// Prereleases are superseded, not built upon: the bump always applies
	// to the numeric tuple of the latest final release.
	base := version.Zero
	if latestFinal != nil {
		base = *latestFinal
	}
	target := applyBump(base, agg, pol)

	if !rule.Prerelease() {
		// Finalizing an in-flight prerelease keeps its tuple when it is
		// already ahead of the bumped final tuple.
		if current.IsPrerelease() && current.WithoutPrerelease().TupleCompare(target) > 0 {
			target = current.WithoutPrerelease()
		}
		return target, true, nil
	}

	// Prerelease channel. When the current version already carries the
	// channel's token, the revision counter advances unless the pending
	// bump outranks the bump that produced the current prerelease, in
	// which case the tuple is bumped again and the counter restarts.
	if current.PrereleaseToken() == rule.Token() {
		produced := bumpBetween(base, *current)
		if agg <= produced {
			return current.WithPrerelease(rule.Token(), current.PrereleaseRevision()+1), true, nil
		}
	}
	return target.WithPrerelease(rule.Token(), 1), true, nil
}

// applyBump applies a bump level to the numeric tuple of base, yielding a
// final version.
func applyBump(base version.SemanticVersion, level changes.BumpLevel, pol Policy) version.SemanticVersion {
	switch level {
	case changes.BumpMajor:
		if base.Major() == 0 && !pol.MajorOnZero {
			return base.BumpMinor()
		}
		return base.BumpMajor()
	case changes.BumpMinor:
		return base.BumpMinor()
	case changes.BumpPatch:
		return base.BumpPatch()
	default:
		return base.WithoutPrerelease()
	}
}

// bumpBetween recovers the bump level that moved the numeric tuple from
// base to v.
func bumpBetween(base, v version.SemanticVersion) changes.BumpLevel {
	switch {
	case v.Major() > base.Major():
		return changes.BumpMajor
	case v.Minor() > base.Minor():
		return changes.BumpMinor
	case v.Patch() > base.Patch():
		return changes.BumpPatch
	default:
		return changes.BumpNone
	}
}
