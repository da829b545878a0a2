package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vergo-dev/vergo/internal/domain/changes"
	"github.com/vergo-dev/vergo/internal/domain/release"
	"github.com/vergo-dev/vergo/internal/domain/version"
)

// validLogLevels are the accepted output.log_level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidationError collects all validation failures of one config.
type ValidationError struct {
	Errors []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s",
		strings.Join(e.Errors, "\n  - "))
}

// HasErrors returns true if there are validation errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Addf adds a formatted error.
func (e *ValidationError) Addf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// Validate checks the configuration for contradictions. It returns a
// *ValidationError naming every problem found, or nil.
func Validate(cfg *Config) error {
	errs := &ValidationError{}

	if _, err := version.NewTagFormat(cfg.Versioning.TagFormat); err != nil {
		errs.Addf("versioning.tag_format %q: must contain exactly one {version} placeholder", cfg.Versioning.TagFormat)
	}
	if _, err := version.Parse(cfg.Versioning.Initial); err != nil {
		errs.Addf("versioning.initial %q: not a valid semantic version", cfg.Versioning.Initial)
	}

	if !changes.Convention(cfg.Parser.Convention).IsValid() {
		errs.Addf("parser.convention %q: must be one of angular, emoji, scipy, tag", cfg.Parser.Convention)
	}

	if len(cfg.Branches) == 0 {
		errs.Addf("branches: at least one release channel rule is required")
	}
	for name, branch := range cfg.Branches {
		if branch.Match == "" {
			errs.Addf("branches.%s: match pattern is required", name)
			continue
		}
		if _, err := regexp.Compile(branch.Match); err != nil {
			errs.Addf("branches.%s: invalid match pattern %q", name, branch.Match)
		}
		if branch.Prerelease && branch.PrereleaseToken == "" {
			errs.Addf("branches.%s: prerelease channel requires prerelease_token", name)
		}
	}

	for _, pattern := range cfg.History.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			errs.Addf("history.exclude: invalid pattern %q", pattern)
		}
	}
	if policy := release.OrphanPolicy(cfg.History.OrphanPolicy); !policy.IsValid() {
		errs.Addf("history.orphan_policy %q: must be attach or discard", cfg.History.OrphanPolicy)
	}

	if !validLogLevels[cfg.Output.LogLevel] {
		errs.Addf("output.log_level %q: must be one of debug, info, warn, error", cfg.Output.LogLevel)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
