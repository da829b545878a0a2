// Package sourcecontrol provides domain types for source control operations.
package sourcecontrol

import (
	"context"
	"errors"
)

// ErrStopWalk signals early termination of a commit walk. Walk
// implementations return nil when the callback yields it.
var ErrStopWalk = errors.New("stop walk")

// Repository is the narrow capability the release pipeline consumes from
// the version control system. The go-git adapter is the production
// implementation; tests provide fakes.
type Repository interface {
	// CurrentBranch returns the name of the checked-out branch.
	CurrentBranch(ctx context.Context) (string, error)

	// Head returns the hash of the current head commit.
	Head(ctx context.Context) (CommitHash, error)

	// WalkCommits walks commits reachable from ref in descending committer
	// time, the order git log uses by default, invoking fn per commit.
	// Returning ErrStopWalk from fn ends the walk without error; any other
	// error aborts it. Consumers needing version order sort their own
	// output rather than relying on walk order across branches.
	WalkCommits(ctx context.Context, ref string, fn func(*Commit) error) error

	// ListTags returns all tags with their target commit hashes, with
	// annotated tags resolved to the commit they ultimately point at.
	ListTags(ctx context.Context) (TagList, error)

	// CreateTag creates a tag pointing at target. A non-empty message
	// produces an annotated tag.
	CreateTag(ctx context.Context, name string, target CommitHash, message string) (*Tag, error)
}
