// Package sourcecontrol provides domain types for source control operations.
package sourcecontrol

import "errors"

// Domain errors for source control operations.
var (
	// ErrNotARepository indicates the path is not a git repository.
	ErrNotARepository = errors.New("not a git repository")

	// ErrCommitNotFound indicates the commit was not found.
	ErrCommitNotFound = errors.New("commit not found")

	// ErrTagAlreadyExists indicates the tag already exists.
	ErrTagAlreadyExists = errors.New("tag already exists")

	// ErrBranchNotFound indicates the branch was not found.
	ErrBranchNotFound = errors.New("branch not found")

	// ErrRemoteNotFound indicates the remote was not found.
	ErrRemoteNotFound = errors.New("remote not found")
)
