// Package version provides domain types for semantic versioning.
package version

import "errors"

// Domain errors for version operations.
var (
	// ErrInvalidVersion indicates an invalid version string.
	ErrInvalidVersion = errors.New("invalid semantic version")

	// ErrInvalidTagFormat indicates an invalid tag format template.
	ErrInvalidTagFormat = errors.New("invalid tag format template")

	// ErrCannotDowngrade indicates an attempt to downgrade a version.
	ErrCannotDowngrade = errors.New("cannot downgrade version")
)
