// Package changes provides commit classification against release conventions.
package changes

import (
	"regexp"
	"strings"
)

// angularSubjectRegex matches "type(scope)!: subject" with optional scope
// and breaking marker.
var angularSubjectRegex = regexp.MustCompile(`^(\w+)(?:\(([^)]*)\))?(!)?\s*:\s+(.+)$`)

// angularCategories maps conventional commit types to changelog categories.
var angularCategories = map[string]string{
	"feat":     "Feature",
	"fix":      "Fix",
	"perf":     "Performance",
	"docs":     "Documentation",
	"style":    "Style",
	"refactor": "Refactor",
	"test":     "Test",
	"build":    "Build",
	"ci":       "Continuous Integration",
	"chore":    "Chore",
	"revert":   "Revert",
}

// angularSectionOrder is the fixed render order of angular sections.
var angularSectionOrder = []string{
	"Feature",
	"Fix",
	"Performance",
	"Documentation",
	"Style",
	"Refactor",
	"Test",
	"Build",
	"Continuous Integration",
	"Chore",
	"Revert",
}

// AngularOptions configures the angular convention parser.
type AngularOptions struct {
	// MinorTypes lists commit types that imply a minor bump.
	MinorTypes []string
	// PatchTypes lists commit types that imply a patch bump.
	PatchTypes []string
}

// DefaultAngularOptions returns the conventional angular bump mapping.
func DefaultAngularOptions() AngularOptions {
	return AngularOptions{
		MinorTypes: []string{"feat"},
		PatchTypes: []string{"fix", "perf"},
	}
}

// AngularParser classifies messages following the Angular commit convention.
type AngularParser struct {
	minor map[string]bool
	patch map[string]bool
}

// NewAngularParser creates an angular convention parser.
func NewAngularParser(opts AngularOptions) *AngularParser {
	p := &AngularParser{
		minor: make(map[string]bool, len(opts.MinorTypes)),
		patch: make(map[string]bool, len(opts.PatchTypes)),
	}
	for _, t := range opts.MinorTypes {
		p.minor[strings.ToLower(t)] = true
	}
	for _, t := range opts.PatchTypes {
		p.patch[strings.ToLower(t)] = true
	}
	return p
}

// Parse classifies one commit message.
func (p *AngularParser) Parse(sha, message string) (Token, error) {
	const op = "changes.AngularParser.Parse"

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

	matches := angularSubjectRegex.FindStringSubmatch(subject)
	if matches == nil {
		return token, nil
	}

	commitType := strings.ToLower(matches[1])
	token.Scope = matches[2]
	token.Description = strings.TrimSpace(matches[4])

	if cat, ok := angularCategories[commitType]; ok {
		token.Category = cat
	}

	switch {
	case p.minor[commitType]:
		token.Bump = BumpMinor
	case p.patch[commitType]:
		token.Bump = BumpPatch
	}

	if matches[3] == "!" || hasBreakingFooter(body) {
		token.Breaking = true
		token.Bump = BumpMajor
	}

	return token, nil
}

// SectionOrder returns the angular changelog sections in render order.
func (p *AngularParser) SectionOrder() []string {
	return angularSectionOrder
}

// DefaultCategory returns the catch-all angular section.
func (p *AngularParser) DefaultCategory() string {
	return "Unknown"
}
