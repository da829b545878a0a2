package git

import (
	"context"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/vergo-dev/vergo/internal/domain/sourcecontrol"
)

// versionTag pairs a tag with its pre-parsed semver version.
type versionTag struct {
	tag     *sourcecontrol.Tag
	version *semver.Version
}

// ListVersionTags returns the tags whose name, with the prefix stripped,
// parses as a semantic version, sorted newest version first.
func (r *Repository) ListVersionTags(ctx context.Context, prefix string) (sourcecontrol.TagList, error) {
	tags, err := r.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	parsed := make([]versionTag, 0, len(tags))
	for _, tag := range tags {
		name := tag.Name()
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		if v, err := semver.NewVersion(strings.TrimPrefix(name, prefix)); err == nil {
			parsed = append(parsed, versionTag{tag: tag, version: v})
		}
	}

	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].version.GreaterThan(parsed[j].version)
	})

	result := make(sourcecontrol.TagList, len(parsed))
	for i, p := range parsed {
		result[i] = p.tag
	}
	return result, nil
}

// LatestVersionTag returns the highest version tag matching the prefix,
// or nil when no tag parses.
func (r *Repository) LatestVersionTag(ctx context.Context, prefix string) (*sourcecontrol.Tag, error) {
	tags, err := r.ListVersionTags(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags[0], nil
}
