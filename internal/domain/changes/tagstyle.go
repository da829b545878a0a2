// Package changes provides commit classification against release conventions.
package changes

import (
	"regexp"
	"strings"
)

// tagSubjectRegex matches a single leading ":tag:" token.
var tagSubjectRegex = regexp.MustCompile(`^(:[a-z0-9_+-]+:)\s+(.+)$`)

// TagOptions configures the free-form tag convention parser. The allow-lists
// are the custom tag sets callers may substitute without the rest of the
// system knowing their shape.
type TagOptions struct {
	// MinorTags lists leading tags that imply a minor bump.
	MinorTags []string
	// PatchTags lists leading tags that imply a patch bump.
	PatchTags []string
}

// DefaultTagOptions returns the conventional tag allow-lists.
func DefaultTagOptions() TagOptions {
	return TagOptions{
		MinorTags: []string{":sparkles:"},
		PatchTags: []string{":nut_and_bolt:"},
	}
}

// TagParser classifies messages carrying a single leading tag token
// checked against configurable minor/patch allow-lists.
type TagParser struct {
	minor map[string]bool
	patch map[string]bool
}

// NewTagParser creates a tag convention parser.
func NewTagParser(opts TagOptions) *TagParser {
	p := &TagParser{
		minor: make(map[string]bool, len(opts.MinorTags)),
		patch: make(map[string]bool, len(opts.PatchTags)),
	}
	for _, t := range opts.MinorTags {
		p.minor[t] = true
	}
	for _, t := range opts.PatchTags {
		p.patch[t] = true
	}
	return p
}

// Parse classifies one commit message.
func (p *TagParser) Parse(sha, message string) (Token, error) {
	const op = "changes.TagParser.Parse"

	if err := checkMessage(op, message); err != nil {
		return Token{}, err
	}

	subject, body := splitSubject(message)
	token := Token{
		SHA:         sha,
		Raw:         message,
		Category:    p.DefaultCategory(),
		Description: subject,
		Bump:        BumpNone,
	}

	if matches := tagSubjectRegex.FindStringSubmatch(subject); matches != nil {
		tag := matches[1]
		switch {
		case p.minor[tag]:
			token.Category = "Feature"
			token.Bump = BumpMinor
			token.Description = strings.TrimSpace(matches[2])
		case p.patch[tag]:
			token.Category = "Fix"
			token.Bump = BumpPatch
			token.Description = strings.TrimSpace(matches[2])
		}
	}

	if hasBreakingFooter(body) {
		token.Breaking = true
		token.Bump = BumpMajor
	}

	return token, nil
}

// SectionOrder returns the tag convention sections in render order.
func (p *TagParser) SectionOrder() []string {
	return []string{"Feature", "Fix"}
}

// DefaultCategory returns the catch-all tag section.
func (p *TagParser) DefaultCategory() string {
	return "Unknown"
}
