package release

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for release operations.
var (
	// ErrNoChannelMatch indicates no release channel rule matches the branch.
	ErrNoChannelMatch = errors.New("no release channel matches branch")

	// ErrNoCommits indicates the walked range contained no commits.
	ErrNoCommits = errors.New("no commits in walked range")
)

// AmbiguousChannelError indicates more than one channel rule matches the
// current branch. It is fatal to the resolve step: without a single rule
// there is no policy to apply.
type AmbiguousChannelError struct {
	// Branch is the branch name that matched multiple rules.
	Branch string
	// Rules names the conflicting rules.
	Rules []string
}

// Error implements the error interface.
func (e *AmbiguousChannelError) Error() string {
	return fmt.Sprintf("branch %q matches multiple release channels: %s",
		e.Branch, strings.Join(e.Rules, ", "))
}
