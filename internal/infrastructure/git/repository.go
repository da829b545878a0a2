// Package git provides the go-git implementation of the source control port.
package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/vergo-dev/vergo/internal/domain/sourcecontrol"
	verrors "github.com/vergo-dev/vergo/internal/errors"
)

// errStopIteration signals early termination of a go-git commit iteration.
var errStopIteration = errors.New("stop iteration")

// Ensure Repository implements the domain port.
var _ sourcecontrol.Repository = (*Repository)(nil)

// Repository is the go-git backed implementation of
// sourcecontrol.Repository.
type Repository struct {
	repo        *gogit.Repository
	taggerName  string
	taggerEmail string
}

// Option configures a Repository.
type Option func(*Repository)

// WithTagger sets the signature used for annotated tags.
func WithTagger(name, email string) Option {
	return func(r *Repository) {
		r.taggerName = name
		r.taggerEmail = email
	}
}

// Open opens the repository at path, searching upward for the .git
// directory the way the git CLI does.
func Open(path string, opts ...Option) (*Repository, error) {
	const op = "git.Open"

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, verrors.GitWrap(err, op, "failed to get absolute path")
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, verrors.Wrap(sourcecontrol.ErrNotARepository, verrors.KindGit, op, absPath)
		}
		return nil, verrors.GitWrap(err, op, fmt.Sprintf("failed to open repository at %s", absPath))
	}

	r := &Repository{
		repo:        repo,
		taggerName:  "vergo",
		taggerEmail: "vergo@localhost",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// CurrentBranch returns the name of the checked-out branch.
func (r *Repository) CurrentBranch(_ context.Context) (string, error) {
	const op = "git.CurrentBranch"

	head, err := r.repo.Head()
	if err != nil {
		return "", verrors.GitWrap(err, op, "failed to get HEAD")
	}
	if !head.Name().IsBranch() {
		return "", verrors.Git(op, "HEAD is not on a branch (detached HEAD)")
	}
	return head.Name().Short(), nil
}

// Head returns the hash of the current head commit.
func (r *Repository) Head(_ context.Context) (sourcecontrol.CommitHash, error) {
	const op = "git.Head"

	head, err := r.repo.Head()
	if err != nil {
		return "", verrors.GitWrap(err, op, "failed to get HEAD")
	}
	return sourcecontrol.CommitHash(head.Hash().String()), nil
}

// WalkCommits walks commits reachable from ref in descending committer
// time. The walk stops without error when fn returns
// sourcecontrol.ErrStopWalk.
func (r *Repository) WalkCommits(ctx context.Context, ref string, fn func(*sourcecontrol.Commit) error) error {
	const op = "git.WalkCommits"

	hash, err := r.resolveRef(ref)
	if err != nil {
		return verrors.GitWrap(err, op, fmt.Sprintf("failed to resolve reference %s", ref))
	}

	iter, err := r.repo.Log(&gogit.LogOptions{
		From:  hash,
		Order: gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return verrors.GitWrap(err, op, "failed to get log iterator")
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if fnErr := fn(convertCommit(c)); fnErr != nil {
			if errors.Is(fnErr, sourcecontrol.ErrStopWalk) {
				return errStopIteration
			}
			return fnErr
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		if ctx.Err() != nil {
			return verrors.GitWrap(ctx.Err(), op, "operation canceled")
		}
		return verrors.GitWrap(err, op, "failed to iterate commits")
	}

	return nil
}

// ListTags returns all tags with annotated tags resolved to the commit
// they ultimately point at.
func (r *Repository) ListTags(ctx context.Context) (sourcecontrol.TagList, error) {
	const op = "git.ListTags"

	iter, err := r.repo.Tags()
	if err != nil {
		return nil, verrors.GitWrap(err, op, "failed to get tags iterator")
	}
	defer iter.Close()

	var tags sourcecontrol.TagList
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		tags = append(tags, r.convertTag(ref))
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, verrors.GitWrap(ctx.Err(), op, "operation canceled")
		}
		return nil, verrors.GitWrap(err, op, "failed to iterate tags")
	}

	return tags, nil
}

// CreateTag creates a tag pointing at target, or at HEAD when target is
// empty. A non-empty message produces an annotated tag.
func (r *Repository) CreateTag(_ context.Context, name string, target sourcecontrol.CommitHash, message string) (*sourcecontrol.Tag, error) {
	const op = "git.CreateTag"

	hash := plumbing.NewHash(target.String())
	if target.IsEmpty() {
		head, err := r.repo.Head()
		if err != nil {
			return nil, verrors.GitWrap(err, op, "failed to get HEAD")
		}
		hash = head.Hash()
	}

	refName := plumbing.NewTagReferenceName(name)
	if _, err := r.repo.Reference(refName, true); err == nil {
		return nil, verrors.Wrap(sourcecontrol.ErrTagAlreadyExists, verrors.KindGit, op, name)
	}

	if message != "" {
		_, err := r.repo.CreateTag(name, hash, &gogit.CreateTagOptions{
			Message: message,
			Tagger: &object.Signature{
				Name:  r.taggerName,
				Email: r.taggerEmail,
				When:  time.Now(),
			},
		})
		if err != nil {
			return nil, verrors.GitWrap(err, op, fmt.Sprintf("failed to create tag %s", name))
		}
		return sourcecontrol.NewAnnotatedTag(name, sourcecontrol.CommitHash(hash.String()), message), nil
	}

	tagRef := plumbing.NewHashReference(refName, hash)
	if err := r.repo.Storer.SetReference(tagRef); err != nil {
		return nil, verrors.GitWrap(err, op, fmt.Sprintf("failed to create tag %s", name))
	}
	return sourcecontrol.NewTag(name, sourcecontrol.CommitHash(hash.String())), nil
}

// RemoteURL returns the first URL of the named remote.
func (r *Repository) RemoteURL(_ context.Context, name string) (string, error) {
	const op = "git.RemoteURL"

	remote, err := r.repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", verrors.Wrap(sourcecontrol.ErrRemoteNotFound, verrors.KindNotFound, op, name)
		}
		return "", verrors.GitWrap(err, op, fmt.Sprintf("failed to get remote %s", name))
	}

	cfg := remote.Config()
	if len(cfg.URLs) == 0 {
		return "", verrors.NotFound(op, fmt.Sprintf("remote %s has no URLs", name))
	}
	return cfg.URLs[0], nil
}

// resolveRef resolves a tag, branch, or commit hash to a hash.
func (r *Repository) resolveRef(ref string) (plumbing.Hash, error) {
	if plumbing.IsHash(ref) {
		hash := plumbing.NewHash(ref)
		if _, err := r.repo.CommitObject(hash); err != nil {
			return plumbing.ZeroHash, fmt.Errorf("%w: %s", sourcecontrol.ErrCommitNotFound, ref)
		}
		return hash, nil
	}

	resolved, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return plumbing.ZeroHash, fmt.Errorf("%w: %s", sourcecontrol.ErrBranchNotFound, ref)
		}
		return plumbing.ZeroHash, fmt.Errorf("failed to resolve reference %s: %w", ref, err)
	}
	return *resolved, nil
}

// convertCommit converts a go-git commit to the domain entity.
func convertCommit(c *object.Commit) *sourcecontrol.Commit {
	commit := sourcecontrol.NewCommit(
		sourcecontrol.CommitHash(c.Hash.String()),
		c.Message,
		sourcecontrol.Author{Name: c.Author.Name, Email: c.Author.Email},
		c.Author.When,
	)

	parents := make([]sourcecontrol.CommitHash, 0, len(c.ParentHashes))
	for _, parent := range c.ParentHashes {
		parents = append(parents, sourcecontrol.CommitHash(parent.String()))
	}
	commit.SetParents(parents)

	return commit
}

// convertTag converts a go-git tag reference, resolving annotated tags
// to the commit they point at.
func (r *Repository) convertTag(ref *plumbing.Reference) *sourcecontrol.Tag {
	tagObj, err := r.repo.TagObject(ref.Hash())
	if err != nil {
		// Lightweight tag, already points at the commit.
		return sourcecontrol.NewTag(ref.Name().Short(), sourcecontrol.CommitHash(ref.Hash().String()))
	}

	target := tagObj.Target
	if commit, err := tagObj.Commit(); err == nil {
		target = commit.Hash
	}
	return sourcecontrol.NewAnnotatedTag(ref.Name().Short(), sourcecontrol.CommitHash(target.String()), tagObj.Message)
}
