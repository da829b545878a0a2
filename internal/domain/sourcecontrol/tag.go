// Package sourcecontrol provides domain types for source control operations.
package sourcecontrol

import "strings"

// Tag represents a git tag entity pointing at a commit. Recognizing a tag
// as a managed version tag is the tag format codec's concern, not the
// tag's own.
type Tag struct {
	name    string
	hash    CommitHash
	message string
}

// NewTag creates a new lightweight Tag entity.
func NewTag(name string, hash CommitHash) *Tag {
	return &Tag{
		name: name,
		hash: hash,
	}
}

// NewAnnotatedTag creates a new annotated Tag entity.
func NewAnnotatedTag(name string, hash CommitHash, message string) *Tag {
	return &Tag{
		name:    name,
		hash:    hash,
		message: message,
	}
}

// Name returns the tag name.
func (t *Tag) Name() string {
	return t.name
}

// Hash returns the commit hash the tag points to.
func (t *Tag) Hash() CommitHash {
	return t.hash
}

// Message returns the tag message (for annotated tags).
func (t *Tag) Message() string {
	return t.message
}

// IsAnnotated returns true if the tag carries a message.
func (t *Tag) IsAnnotated() bool {
	return t.message != ""
}

// HasPrefix returns true if the tag has the specified prefix.
func (t *Tag) HasPrefix(prefix string) bool {
	return strings.HasPrefix(t.name, prefix)
}

// TagList is a collection of tags.
type TagList []*Tag

// ByName returns the tag with the given name, or nil.
func (tl TagList) ByName(name string) *Tag {
	for _, t := range tl {
		if t.name == name {
			return t
		}
	}
	return nil
}

// TargetMap returns a mapping from tag name to target commit hash.
func (tl TagList) TargetMap() map[string]CommitHash {
	m := make(map[string]CommitHash, len(tl))
	for _, t := range tl {
		m[t.name] = t.hash
	}
	return m
}
