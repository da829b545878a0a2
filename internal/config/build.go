package config

import (
	"regexp"
	"sort"

	"github.com/vergo-dev/vergo/internal/domain/changes"
	"github.com/vergo-dev/vergo/internal/domain/release"
	"github.com/vergo-dev/vergo/internal/domain/version"
	verrors "github.com/vergo-dev/vergo/internal/errors"
)

// TagFormat compiles the configured version tag template.
func (c *Config) TagFormat() (version.TagFormat, error) {
	return version.NewTagFormat(c.Versioning.TagFormat)
}

// Policy builds the resolver policy from the versioning section.
func (c *Config) Policy() (release.Policy, error) {
	const op = "config.Policy"

	initial, err := version.Parse(c.Versioning.Initial)
	if err != nil {
		return release.Policy{}, verrors.ConfigWrap(err, op, "invalid versioning.initial")
	}
	return release.Policy{
		Initial:     initial,
		MajorOnZero: c.Versioning.MajorOnZero,
	}, nil
}

// BuildParser constructs the configured commit convention parser,
// applying per-convention overrides over the convention defaults.
func (c *Config) BuildParser() (changes.Parser, error) {
	const op = "config.BuildParser"

	switch changes.Convention(c.Parser.Convention) {
	case changes.ConventionAngular:
		opts := changes.DefaultAngularOptions()
		if len(c.Parser.Angular.MinorTypes) > 0 {
			opts.MinorTypes = c.Parser.Angular.MinorTypes
		}
		if len(c.Parser.Angular.PatchTypes) > 0 {
			opts.PatchTypes = c.Parser.Angular.PatchTypes
		}
		return changes.NewAngularParser(opts), nil
	case changes.ConventionEmoji:
		opts := changes.DefaultEmojiOptions()
		if len(c.Parser.Emoji.MajorTags) > 0 {
			opts.MajorTags = c.Parser.Emoji.MajorTags
		}
		if len(c.Parser.Emoji.MinorTags) > 0 {
			opts.MinorTags = c.Parser.Emoji.MinorTags
		}
		if len(c.Parser.Emoji.PatchTags) > 0 {
			opts.PatchTags = c.Parser.Emoji.PatchTags
		}
		return changes.NewEmojiParser(opts), nil
	case changes.ConventionSciPy:
		opts := changes.DefaultSciPyOptions()
		opts.ExtraMinorTags = c.Parser.SciPy.ExtraMinorTags
		opts.ExtraPatchTags = c.Parser.SciPy.ExtraPatchTags
		return changes.NewSciPyParser(opts), nil
	case changes.ConventionTag:
		opts := changes.DefaultTagOptions()
		if len(c.Parser.Tag.MinorTags) > 0 {
			opts.MinorTags = c.Parser.Tag.MinorTags
		}
		if len(c.Parser.Tag.PatchTags) > 0 {
			opts.PatchTags = c.Parser.Tag.PatchTags
		}
		return changes.NewTagParser(opts), nil
	default:
		return nil, verrors.Config(op, "unknown parser convention "+c.Parser.Convention)
	}
}

// ChannelRules compiles the branch rules, sorted by name for
// deterministic reporting.
func (c *Config) ChannelRules() ([]release.ChannelRule, error) {
	names := make([]string, 0, len(c.Branches))
	for name := range c.Branches {
		names = append(names, name)
	}
	sort.Strings(names)

	rules := make([]release.ChannelRule, 0, len(names))
	for _, name := range names {
		branch := c.Branches[name]
		rule, err := release.NewChannelRule(name, branch.Match, branch.Prerelease, branch.PrereleaseToken)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ExcludePatterns compiles the history exclusion patterns.
func (c *Config) ExcludePatterns() ([]*regexp.Regexp, error) {
	const op = "config.ExcludePatterns"

	patterns := make([]*regexp.Regexp, 0, len(c.History.Exclude))
	for _, raw := range c.History.Exclude {
		pattern, err := regexp.Compile(raw)
		if err != nil {
			return nil, verrors.ConfigWrap(err, op, "invalid history.exclude pattern "+raw)
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// OrphanPolicy returns the configured walk-boundary policy.
func (c *Config) OrphanPolicy() release.OrphanPolicy {
	return release.OrphanPolicy(c.History.OrphanPolicy)
}
