// Package versioning orchestrates history analysis and version resolution.
package versioning

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vergo-dev/vergo/internal/config"
	"github.com/vergo-dev/vergo/internal/domain/changes"
	"github.com/vergo-dev/vergo/internal/domain/release"
	"github.com/vergo-dev/vergo/internal/domain/sourcecontrol"
	"github.com/vergo-dev/vergo/internal/domain/version"
)

// Service wires the history builder and resolver for one repository.
type Service struct {
	repo    sourcecontrol.Repository
	parser  changes.Parser
	format  version.TagFormat
	rules   []release.ChannelRule
	policy  release.Policy
	builder *release.Builder
	logger  *log.Logger
}

// NewService builds the versioning service from resolved configuration.
func NewService(cfg *config.Config, repo sourcecontrol.Repository, logger *log.Logger) (*Service, error) {
	format, err := cfg.TagFormat()
	if err != nil {
		return nil, err
	}
	parser, err := cfg.BuildParser()
	if err != nil {
		return nil, err
	}
	rules, err := cfg.ChannelRules()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	exclude, err := cfg.ExcludePatterns()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Service{
		repo:   repo,
		parser: parser,
		format: format,
		rules:  rules,
		policy: policy,
		builder: release.NewBuilder(format, parser,
			release.WithExcludePatterns(exclude),
			release.WithOrphanPolicy(cfg.OrphanPolicy()),
		),
		logger: logger,
	}, nil
}

// Parser returns the configured commit convention parser.
func (s *Service) Parser() changes.Parser {
	return s.parser
}

// TagFormat returns the configured tag codec.
func (s *Service) TagFormat() version.TagFormat {
	return s.format
}

// Resolution is the outcome of resolving the next version for the
// checked-out branch.
type Resolution struct {
	// Branch is the branch the resolution applies to.
	Branch string
	// Channel is the matched release channel rule.
	Channel release.ChannelRule
	// History is the full analyzed release history.
	History *release.ReleaseHistory
	// Current is the latest released version, nil before the first release.
	Current *version.SemanticVersion
	// Next is the resolved next version. Only meaningful when Warranted.
	Next version.SemanticVersion
	// TagName is Next rendered through the tag codec.
	TagName string
	// Warranted is false when the pending commits justify no release.
	Warranted bool
}

// History walks the repository and returns the analyzed release history
// for the checked-out branch. Non-fatal warnings are logged.
func (s *Service) History(ctx context.Context) (*release.ReleaseHistory, error) {
	branch, err := s.repo.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	return s.historyFor(ctx, branch)
}

// Resolve computes the next version for the checked-out branch.
func (s *Service) Resolve(ctx context.Context) (*Resolution, error) {
	branch, err := s.repo.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	rule, err := release.MatchChannel(s.rules, branch)
	if err != nil {
		return nil, err
	}

	hist, err := s.historyFor(ctx, branch)
	if err != nil {
		return nil, err
	}

	current := hist.LatestVersion()
	next, warranted, err := release.Resolve(current, hist.LatestFinalVersion(), hist.Unreleased, rule, s.policy)
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		Branch:    branch,
		Channel:   rule,
		History:   hist,
		Current:   current,
		Warranted: warranted,
	}
	if warranted {
		res.Next = next
		res.TagName = s.format.Render(next)
	}
	return res, nil
}

// historyFor builds and logs the history for one ref.
func (s *Service) historyFor(ctx context.Context, ref string) (*release.ReleaseHistory, error) {
	hist, err := s.builder.Build(ctx, s.repo, ref)
	if err != nil {
		return nil, err
	}

	for _, w := range hist.Warnings {
		switch w.Kind {
		case release.WarningDanglingTag:
			s.logger.Warn("dangling version tag excluded from history", "tag", w.Tag, "target", w.SHA)
		case release.WarningParse:
			s.logger.Warn("commit message failed to parse", "sha", w.SHA, "err", w.Message)
		}
	}
	return hist, nil
}
