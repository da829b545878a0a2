package release

import (
	"fmt"
	"regexp"
	"strings"

	verrors "github.com/vergo-dev/vergo/internal/errors"
)

// ChannelRule is a branch-scoped release policy. Branches matching the
// rule's pattern cut prereleases under the rule's token, or final releases
// when Prerelease is false.
type ChannelRule struct {
	name       string
	pattern    *regexp.Regexp
	prerelease bool
	token      string
}

// NewChannelRule compiles a channel rule. The match pattern is an anchored
// regular expression against the full branch name.
func NewChannelRule(name, match string, prerelease bool, token string) (ChannelRule, error) {
	const op = "release.NewChannelRule"

	if match == "" {
		return ChannelRule{}, verrors.Validation(op, "channel rule requires a match pattern")
	}
	if prerelease && token == "" {
		return ChannelRule{}, verrors.Validation(op, "prerelease channel requires a prerelease token")
	}

	pattern, err := regexp.Compile(anchor(match))
	if err != nil {
		return ChannelRule{}, verrors.ConfigWrap(err, op, fmt.Sprintf("invalid match pattern %q for channel %q", match, name))
	}

	return ChannelRule{
		name:       name,
		pattern:    pattern,
		prerelease: prerelease,
		token:      token,
	}, nil
}

// anchor wraps a pattern so it must match the whole branch name.
func anchor(pattern string) string {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^" + pattern
	}
	if !strings.HasSuffix(pattern, "$") {
		pattern += "$"
	}
	return pattern
}

// Name returns the rule's configured name.
func (r ChannelRule) Name() string {
	return r.name
}

// Prerelease returns true if the channel cuts prereleases.
func (r ChannelRule) Prerelease() bool {
	return r.prerelease
}

// Token returns the prerelease token for prerelease channels.
func (r ChannelRule) Token() string {
	return r.token
}

// Matches returns true if the branch name matches the rule's pattern.
func (r ChannelRule) Matches(branch string) bool {
	return r.pattern.MatchString(branch)
}

// MatchChannel selects the single channel rule matching the branch.
// Zero matches yield ErrNoChannelMatch; more than one is a fatal
// AmbiguousChannelError naming the conflicting rules.
func MatchChannel(rules []ChannelRule, branch string) (ChannelRule, error) {
	var matched []ChannelRule
	for _, r := range rules {
		if r.Matches(branch) {
			matched = append(matched, r)
		}
	}

	switch len(matched) {
	case 0:
		return ChannelRule{}, fmt.Errorf("branch %q: %w", branch, ErrNoChannelMatch)
	case 1:
		return matched[0], nil
	default:
		names := make([]string, len(matched))
		for i, r := range matched {
			names[i] = r.name
		}
		return ChannelRule{}, &AmbiguousChannelError{Branch: branch, Rules: names}
	}
}
