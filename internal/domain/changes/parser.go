// Package changes provides commit classification against release conventions.
package changes

import (
	"regexp"
	"strings"
	"unicode/utf8"

	verrors "github.com/vergo-dev/vergo/internal/errors"
)

// Parser classifies raw commit messages into tokens according to one
// commit-message convention. Implementations also declare the convention's
// changelog sections so the renderer does not depend on option shapes.
type Parser interface {
	// Parse classifies one raw commit message. A message matching no
	// recognized marker yields the convention's default category with
	// BumpNone; only an empty or malformed message is an error.
	Parse(sha, message string) (Token, error)

	// SectionOrder returns the convention's changelog section names in
	// their fixed render order, excluding the default catch-all.
	SectionOrder() []string

	// DefaultCategory returns the catch-all category for commits matching
	// no recognized marker. It always renders last.
	DefaultCategory() string
}

// Convention identifies a commit-message convention.
type Convention string

// Supported conventions.
const (
	ConventionAngular Convention = "angular"
	ConventionEmoji   Convention = "emoji"
	ConventionSciPy   Convention = "scipy"
	ConventionTag     Convention = "tag"
)

// IsValid returns true if the convention is recognized.
func (c Convention) IsValid() bool {
	switch c {
	case ConventionAngular, ConventionEmoji, ConventionSciPy, ConventionTag:
		return true
	default:
		return false
	}
}

// String returns the string representation of the convention.
func (c Convention) String() string {
	return string(c)
}

// NewParser creates a parser for the convention with its default options.
// Convention-specific options are supplied through the per-convention
// constructors (NewAngularParser, NewTagParser, ...).
func NewParser(c Convention) (Parser, error) {
	const op = "changes.NewParser"

	switch c {
	case ConventionAngular:
		return NewAngularParser(DefaultAngularOptions()), nil
	case ConventionEmoji:
		return NewEmojiParser(DefaultEmojiOptions()), nil
	case ConventionSciPy:
		return NewSciPyParser(DefaultSciPyOptions()), nil
	case ConventionTag:
		return NewTagParser(DefaultTagOptions()), nil
	default:
		return nil, verrors.Validation(op, "unknown commit convention: "+string(c))
	}
}

// breakingChangeRegex matches a BREAKING CHANGE: or BREAKING-CHANGE: marker
// at the start of a line.
var breakingChangeRegex = regexp.MustCompile(`(?im)^BREAKING[ -]CHANGE:\s*(.+)$`)

// checkMessage validates a raw message at the encoding level. Convention
// parsers call it before classification.
func checkMessage(op, message string) error {
	if strings.TrimSpace(message) == "" {
		return verrors.Parse(op, "empty commit message")
	}
	if !utf8.ValidString(message) {
		return verrors.Parse(op, "commit message is not valid UTF-8")
	}
	return nil
}

// splitSubject returns the first line of a message and the remainder.
func splitSubject(message string) (subject, rest string) {
	message = strings.TrimSpace(message)
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return strings.TrimSpace(message[:i]), strings.TrimSpace(message[i+1:])
	}
	return message, ""
}

// hasBreakingFooter reports whether the message body carries a breaking
// change marker.
func hasBreakingFooter(message string) bool {
	return breakingChangeRegex.MatchString(message)
}

// containsAny reports whether s contains any of the markers, returning the
// first one found in marker order.
func containsAny(s string, markers []string) (string, bool) {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return m, true
		}
	}
	return "", false
}
