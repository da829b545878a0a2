// Package hvcs derives browsable URLs from git remote configuration.
package hvcs

import (
	"fmt"
	"strings"

	verrors "github.com/vergo-dev/vergo/internal/errors"
)

// Host identifies a hosting platform with a known URL layout.
type Host string

// Supported hosting platforms. Unrecognized hosts fall back to the
// GitHub-style layout, which Gitea and Forgejo also use.
const (
	HostGitHub    Host = "github"
	HostGitLab    Host = "gitlab"
	HostBitbucket Host = "bitbucket"
	HostGeneric   Host = "generic"
)

// Remote is a parsed git remote pointing at a hosted repository.
type Remote struct {
	host  Host
	base  string
	owner string
	name  string
}

// ParseRemoteURL parses an https or scp-like ssh remote URL.
func ParseRemoteURL(raw string) (*Remote, error) {
	const op = "hvcs.ParseRemoteURL"

	if raw == "" {
		return nil, verrors.Validation(op, "remote URL is empty")
	}

	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), ".git")

	var hostname, path string
	switch {
	case strings.HasPrefix(trimmed, "https://"), strings.HasPrefix(trimmed, "http://"):
		rest := trimmed[strings.Index(trimmed, "://")+3:]
		hostname, path = splitHostPath(rest, "/")
	case strings.HasPrefix(trimmed, "ssh://"):
		rest := strings.TrimPrefix(trimmed, "ssh://")
		if at := strings.Index(rest, "@"); at != -1 {
			rest = rest[at+1:]
		}
		hostname, path = splitHostPath(rest, "/")
	case strings.Contains(trimmed, "@") && strings.Contains(trimmed, ":"):
		// scp-like syntax: git@host:owner/repo
		rest := trimmed[strings.Index(trimmed, "@")+1:]
		hostname, path = splitHostPath(rest, ":")
	default:
		return nil, verrors.Validation(op, fmt.Sprintf("unsupported remote URL format: %s", raw))
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if hostname == "" || len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, verrors.Validation(op, fmt.Sprintf("remote URL missing owner/name: %s", raw))
	}

	// GitLab subgroups keep every path element before the repository name.
	name := parts[len(parts)-1]
	owner := strings.Join(parts[:len(parts)-1], "/")

	return &Remote{
		host:  detectHost(hostname),
		base:  "https://" + hostname,
		owner: owner,
		name:  name,
	}, nil
}

// splitHostPath splits "host<sep>path", tolerating a missing path.
func splitHostPath(s, sep string) (host, path string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}

// detectHost classifies a hostname by its well-known platform domains.
func detectHost(hostname string) Host {
	switch {
	case strings.Contains(hostname, "github"):
		return HostGitHub
	case strings.Contains(hostname, "gitlab"):
		return HostGitLab
	case strings.Contains(hostname, "bitbucket"):
		return HostBitbucket
	default:
		return HostGeneric
	}
}

// Host returns the detected hosting platform.
func (r *Remote) Host() Host {
	return r.host
}

// Owner returns the repository owner, including subgroups.
func (r *Remote) Owner() string {
	return r.owner
}

// Name returns the repository name.
func (r *Remote) Name() string {
	return r.name
}

// RepoURL returns the browsable repository root URL.
func (r *Remote) RepoURL() string {
	return fmt.Sprintf("%s/%s/%s", r.base, r.owner, r.name)
}

// CommitURL returns the browsable URL of a commit.
func (r *Remote) CommitURL(sha string) string {
	switch r.host {
	case HostGitLab:
		return fmt.Sprintf("%s/-/commit/%s", r.RepoURL(), sha)
	case HostBitbucket:
		return fmt.Sprintf("%s/commits/%s", r.RepoURL(), sha)
	default:
		return fmt.Sprintf("%s/commit/%s", r.RepoURL(), sha)
	}
}

// CompareURL returns the browsable URL comparing two refs.
func (r *Remote) CompareURL(from, to string) string {
	switch r.host {
	case HostGitLab:
		return fmt.Sprintf("%s/-/compare/%s...%s", r.RepoURL(), from, to)
	case HostBitbucket:
		return fmt.Sprintf("%s/branches/compare/%s%%0D%s", r.RepoURL(), to, from)
	default:
		return fmt.Sprintf("%s/compare/%s...%s", r.RepoURL(), from, to)
	}
}
