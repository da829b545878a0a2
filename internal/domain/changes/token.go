// Package changes provides commit classification against release conventions.
package changes

// BumpLevel represents the magnitude of version increment a commit implies.
type BumpLevel int

// Bump levels ordered by severity.
const (
	BumpNone BumpLevel = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

// String returns the string representation of the bump level.
func (b BumpLevel) String() string {
	switch b {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	default:
		return "none"
	}
}

// Max returns the higher severity of two bump levels.
func (b BumpLevel) Max(other BumpLevel) BumpLevel {
	if other > b {
		return other
	}
	return b
}

// Token is the classification of one commit message. Immutable once
// produced by a parser; the history builder owns tokens for the duration
// of one build.
type Token struct {
	// SHA identifies the classified commit.
	SHA string
	// Raw is the original commit message.
	Raw string
	// Category is the convention-specific changelog category.
	Category string
	// Scope is the optional commit scope.
	Scope string
	// Description is the subject text with convention markers stripped.
	Description string
	// Bump is the version increment this commit implies.
	Bump BumpLevel
	// Breaking is true when the commit carries a breaking-change marker.
	Breaking bool
	// Excluded marks commits kept for bookkeeping but left out of bump
	// aggregation and changelog rendering. Set by the history builder.
	Excluded bool
}

// ShortSHA returns the short (7 character) commit identifier.
func (t Token) ShortSHA() string {
	if len(t.SHA) > 7 {
		return t.SHA[:7]
	}
	return t.SHA
}

// AggregateBump returns the maximum bump severity across tokens,
// ignoring excluded ones.
func AggregateBump(tokens []Token) BumpLevel {
	agg := BumpNone
	for _, t := range tokens {
		if t.Excluded {
			continue
		}
		agg = agg.Max(t.Bump)
	}
	return agg
}
