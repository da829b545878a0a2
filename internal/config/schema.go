// Package config provides configuration management for vergo.
package config

// ConfigFileNames are the base names searched for a config file.
var ConfigFileNames = []string{"vergo", ".vergo"}

// ConfigFileExtensions are the recognized config file extensions.
var ConfigFileExtensions = []string{"yaml", "yml", "toml", "json"}

// Config is the root configuration for vergo.
type Config struct {
	// Versioning configures version resolution and tag naming.
	Versioning VersioningConfig `mapstructure:"versioning" json:"versioning"`
	// Parser configures the commit message convention.
	Parser ParserConfig `mapstructure:"parser" json:"parser"`
	// Branches maps rule names to release channel rules.
	Branches map[string]BranchConfig `mapstructure:"branches" json:"branches"`
	// History configures the commit history walk.
	History HistoryConfig `mapstructure:"history" json:"history"`
	// Changelog configures changelog rendering.
	Changelog ChangelogConfig `mapstructure:"changelog" json:"changelog"`
	// Git configures repository access and tagging.
	Git GitConfig `mapstructure:"git" json:"git"`
	// Output configures logging and CLI output.
	Output OutputConfig `mapstructure:"output" json:"output"`
}

// VersioningConfig configures version resolution and tag naming.
type VersioningConfig struct {
	// TagFormat is the version tag template with a {version} placeholder.
	TagFormat string `mapstructure:"tag_format" json:"tag_format"`
	// Initial is the version of the first release ever.
	Initial string `mapstructure:"initial" json:"initial"`
	// MajorOnZero controls whether major bumps apply while the major
	// component is 0. When false, a major-level change on a 0.x tree is
	// applied as a minor bump.
	MajorOnZero bool `mapstructure:"major_on_zero" json:"major_on_zero"`
}

// ParserConfig configures the commit message convention.
type ParserConfig struct {
	// Convention selects the commit convention (angular, emoji, scipy, tag).
	Convention string `mapstructure:"convention" json:"convention"`
	// Angular holds angular convention options.
	Angular AngularConfig `mapstructure:"angular" json:"angular,omitempty"`
	// Emoji holds emoji convention options.
	Emoji EmojiConfig `mapstructure:"emoji" json:"emoji,omitempty"`
	// SciPy holds SciPy convention options.
	SciPy SciPyConfig `mapstructure:"scipy" json:"scipy,omitempty"`
	// Tag holds tag convention options.
	Tag TagConfig `mapstructure:"tag" json:"tag,omitempty"`
}

// AngularConfig overrides the angular convention's bump mapping.
type AngularConfig struct {
	// MinorTypes are the commit types implying a minor bump.
	MinorTypes []string `mapstructure:"minor_types" json:"minor_types,omitempty"`
	// PatchTypes are the commit types implying a patch bump.
	PatchTypes []string `mapstructure:"patch_types" json:"patch_types,omitempty"`
}

// EmojiConfig overrides the emoji convention's bump mapping.
type EmojiConfig struct {
	// MajorTags are the emoji implying a major bump.
	MajorTags []string `mapstructure:"major_tags" json:"major_tags,omitempty"`
	// MinorTags are the emoji implying a minor bump.
	MinorTags []string `mapstructure:"minor_tags" json:"minor_tags,omitempty"`
	// PatchTags are the emoji implying a patch bump.
	PatchTags []string `mapstructure:"patch_tags" json:"patch_tags,omitempty"`
}

// SciPyConfig extends the SciPy convention's acronym table.
type SciPyConfig struct {
	// ExtraMinorTags are additional acronyms implying a minor bump.
	ExtraMinorTags []string `mapstructure:"extra_minor_tags" json:"extra_minor_tags,omitempty"`
	// ExtraPatchTags are additional acronyms implying a patch bump.
	ExtraPatchTags []string `mapstructure:"extra_patch_tags" json:"extra_patch_tags,omitempty"`
}

// TagConfig overrides the tag convention's bump mapping.
type TagConfig struct {
	// MinorTags are the markers implying a minor bump.
	MinorTags []string `mapstructure:"minor_tags" json:"minor_tags,omitempty"`
	// PatchTags are the markers implying a patch bump.
	PatchTags []string `mapstructure:"patch_tags" json:"patch_tags,omitempty"`
}

// BranchConfig is one release channel rule.
type BranchConfig struct {
	// Match is an anchored regular expression against the branch name.
	Match string `mapstructure:"match" json:"match"`
	// Prerelease marks the channel as cutting prereleases.
	Prerelease bool `mapstructure:"prerelease" json:"prerelease"`
	// PrereleaseToken is the prerelease identifier for prerelease channels.
	PrereleaseToken string `mapstructure:"prerelease_token" json:"prerelease_token,omitempty"`
}

// HistoryConfig configures the commit history walk.
type HistoryConfig struct {
	// Exclude holds regular expressions matching commit messages to keep
	// for bookkeeping but drop from bump aggregation and rendering.
	Exclude []string `mapstructure:"exclude" json:"exclude,omitempty"`
	// OrphanPolicy controls commits older than the oldest managed tag
	// (attach or discard).
	OrphanPolicy string `mapstructure:"orphan_policy" json:"orphan_policy"`
}

// ChangelogConfig configures changelog rendering.
type ChangelogConfig struct {
	// Title is the document title.
	Title string `mapstructure:"title" json:"title"`
	// File is the changelog output path.
	File string `mapstructure:"file" json:"file"`
	// LinkCommits links commit hashes to the hosting platform.
	LinkCommits bool `mapstructure:"link_commits" json:"link_commits"`
}

// GitConfig configures repository access and tagging.
type GitConfig struct {
	// DefaultRemote is the remote used for link resolution.
	DefaultRemote string `mapstructure:"default_remote" json:"default_remote"`
	// Annotate creates annotated tags with a release message.
	Annotate bool `mapstructure:"annotate" json:"annotate"`
	// TaggerName is the signature name for annotated tags.
	TaggerName string `mapstructure:"tagger_name" json:"tagger_name,omitempty"`
	// TaggerEmail is the signature email for annotated tags.
	TaggerEmail string `mapstructure:"tagger_email" json:"tagger_email,omitempty"`
}

// OutputConfig configures logging and CLI output.
type OutputConfig struct {
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level" json:"log_level"`
	// Color enables colored output.
	Color bool `mapstructure:"color" json:"color"`
	// JSON switches command output to structured JSON.
	JSON bool `mapstructure:"json" json:"json"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Versioning: VersioningConfig{
			TagFormat:   "v{version}",
			Initial:     "0.1.0",
			MajorOnZero: true,
		},
		Parser: ParserConfig{
			Convention: "angular",
		},
		Branches: map[string]BranchConfig{
			"main": {Match: "(main|master)"},
		},
		History: HistoryConfig{
			OrphanPolicy: "attach",
		},
		Changelog: ChangelogConfig{
			Title:       "Changelog",
			File:        "CHANGELOG.md",
			LinkCommits: true,
		},
		Git: GitConfig{
			DefaultRemote: "origin",
			Annotate:      true,
		},
		Output: OutputConfig{
			LogLevel: "info",
			Color:    true,
		},
	}
}
