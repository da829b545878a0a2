package release

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/vergo-dev/vergo/internal/domain/changes"
	"github.com/vergo-dev/vergo/internal/domain/sourcecontrol"
	"github.com/vergo-dev/vergo/internal/domain/version"
	verrors "github.com/vergo-dev/vergo/internal/errors"
)

// OrphanPolicy controls what happens to commits older than the oldest
// managed tag at the walk boundary.
type OrphanPolicy string

const (
	// OrphanAttach keeps boundary commits in the oldest release.
	OrphanAttach OrphanPolicy = "attach"
	// OrphanDiscard drops boundary commits from the oldest release,
	// keeping only its tagged commit.
	OrphanDiscard OrphanPolicy = "discard"
)

// IsValid returns true if the policy is recognized.
func (p OrphanPolicy) IsValid() bool {
	return p == OrphanAttach || p == OrphanDiscard
}

// Builder walks a commit history backward from a ref and partitions it
// into release buckets at managed tag boundaries.
type Builder struct {
	format  version.TagFormat
	parser  changes.Parser
	exclude []*regexp.Regexp
	orphans OrphanPolicy
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithExcludePatterns sets the commit exclusion patterns. Matching commits
// are parsed for bookkeeping but excluded from bump aggregation and from
// changelog rendering.
func WithExcludePatterns(patterns []*regexp.Regexp) BuilderOption {
	return func(b *Builder) {
		b.exclude = patterns
	}
}

// WithOrphanPolicy sets the walk-boundary policy.
func WithOrphanPolicy(p OrphanPolicy) BuilderOption {
	return func(b *Builder) {
		b.orphans = p
	}
}

// NewBuilder creates a history builder for the given tag format and
// commit convention parser.
func NewBuilder(format version.TagFormat, parser changes.Parser, opts ...BuilderOption) *Builder {
	b := &Builder{
		format:  format,
		parser:  parser,
		orphans: OrphanAttach,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// managedTag is a tag recognized by the codec, paired with its version.
type managedTag struct {
	name    string
	version version.SemanticVersion
}

// Build walks the history reachable from ref, newest first, and returns
// the partitioned release history. Commits reachable through merge
// ancestry already enclosed in an earlier bucket are deduplicated by
// hash. Managed tags whose target the walk never reaches are reported as
// dangling-tag warnings and excluded.
func (b *Builder) Build(ctx context.Context, repo sourcecontrol.Repository, ref string) (*ReleaseHistory, error) {
	const op = "release.Builder.Build"

	tags, err := repo.ListTags(ctx)
	if err != nil {
		return nil, verrors.GitWrap(err, op, "failed to list tags")
	}

	// Index managed tags by target commit. When several managed tags
	// point at one commit, the greatest version wins.
	managed := make(map[sourcecontrol.CommitHash]managedTag)
	for _, t := range tags {
		v, ok := b.format.Parse(t.Name())
		if !ok {
			continue
		}
		if cur, exists := managed[t.Hash()]; !exists || v.GreaterThan(cur.version) {
			managed[t.Hash()] = managedTag{name: t.Name(), version: v}
		}
	}

	hist := &ReleaseHistory{}
	seen := make(map[sourcecontrol.CommitHash]bool)
	reached := make(map[sourcecontrol.CommitHash]bool)

	var cur *Release
	var bucket []changes.Token
	flush := func() {
		if cur == nil {
			hist.Unreleased = bucket
		} else {
			cur.Commits = bucket
			hist.Released = append(hist.Released, cur)
		}
		bucket = nil
	}

	walkErr := repo.WalkCommits(ctx, ref, func(c *sourcecontrol.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		hash := c.Hash()
		if seen[hash] {
			return nil
		}
		seen[hash] = true

		if mt, ok := managed[hash]; ok {
			reached[hash] = true
			flush()
			cur = &Release{
				Version:     mt.version,
				Tag:         mt.name,
				CommittedAt: c.Date(),
			}
		}

		token, err := b.parser.Parse(hash.String(), c.Message())
		if err != nil {
			// Encoding-level failures degrade to a no-op classification;
			// the commit still counts toward its bucket.
			token = changes.Token{
				SHA:      hash.String(),
				Raw:      c.Message(),
				Category: b.parser.DefaultCategory(),
				Bump:     changes.BumpNone,
			}
			hist.Warnings = append(hist.Warnings, Warning{
				Kind:    WarningParse,
				SHA:     hash.String(),
				Message: err.Error(),
			})
		}
		if b.isExcluded(c.Message()) {
			token.Excluded = true
		}
		bucket = append(bucket, token)
		return nil
	})
	if walkErr != nil {
		return nil, verrors.GitWrap(walkErr, op, fmt.Sprintf("commit walk from %q failed", ref))
	}
	flush()

	if len(seen) == 0 {
		return nil, verrors.Wrap(ErrNoCommits, verrors.KindGit, op, fmt.Sprintf("no commits reachable from %q", ref))
	}

	// Managed tags pointing outside the walked range are dangling:
	// reported, never fatal, excluded from the history.
	for hash, mt := range managed {
		if !reached[hash] {
			hist.Warnings = append(hist.Warnings, Warning{
				Kind:    WarningDanglingTag,
				Tag:     mt.name,
				SHA:     hash.String(),
				Message: fmt.Sprintf("tag %q points to commit %s unreachable from %q", mt.name, hash.Short(), ref),
			})
		}
	}

	if b.orphans == OrphanDiscard && len(hist.Released) > 0 {
		oldest := hist.Released[len(hist.Released)-1]
		if len(oldest.Commits) > 1 {
			oldest.Commits = oldest.Commits[:1]
		}
	}

	// The walk yields releases in encounter order, which diverges from
	// version order once a prerelease branch is merged back. Releases are
	// totally ordered by version.
	sort.SliceStable(hist.Released, func(i, j int) bool {
		return hist.Released[i].Version.GreaterThan(hist.Released[j].Version)
	})

	return hist, nil
}

// isExcluded reports whether a commit message matches any exclusion
// pattern.
func (b *Builder) isExcluded(message string) bool {
	for _, p := range b.exclude {
		if p.MatchString(message) {
			return true
		}
	}
	return false
}
