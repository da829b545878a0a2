// Package changes provides commit classification against release conventions.
package changes

import (
	"regexp"
	"strings"
)

// scipySubjectRegex matches "TAG: subject" or "TAG, TAG2: subject" with
// an uppercase acronym tag.
var scipySubjectRegex = regexp.MustCompile(`^([A-Z]+)(?:\s*,\s*[A-Z]+)*:\s+(.+)$`)

// scipyTag describes one SciPy acronym's classification.
type scipyTag struct {
	bump     BumpLevel
	category string
	breaking bool
}

// SciPyOptions configures the SciPy convention parser. Tags maps an
// acronym (ENH, BUG, ...) to its classification; when empty, the standard
// table applies.
type SciPyOptions struct {
	// ExtraMinorTags lists additional acronyms treated as minor/Feature.
	ExtraMinorTags []string
	// ExtraPatchTags lists additional acronyms treated as patch/Fix.
	ExtraPatchTags []string
}

// DefaultSciPyOptions returns the standard SciPy tag table.
func DefaultSciPyOptions() SciPyOptions {
	return SciPyOptions{}
}

// scipyTable is the standard SciPy acronym classification.
var scipyTable = map[string]scipyTag{
	"API":   {bump: BumpMajor, category: "Breaking", breaking: true},
	"DEP":   {bump: BumpMinor, category: "Deprecation"},
	"ENH":   {bump: BumpMinor, category: "Feature"},
	"BUG":   {bump: BumpPatch, category: "Fix"},
	"MAINT": {bump: BumpPatch, category: "Fix"},
	"REV":   {bump: BumpPatch, category: "Fix"},
	"BLD":   {bump: BumpPatch, category: "Fix"},
	"DOC":   {bump: BumpNone, category: "Documentation"},
	"STY":   {bump: BumpNone, category: "None"},
	"TST":   {bump: BumpNone, category: "None"},
	"BENCH": {bump: BumpNone, category: "None"},
	"REL":   {bump: BumpNone, category: "None"},
}

// scipySectionOrder is the fixed render order of SciPy sections.
var scipySectionOrder = []string{
	"Breaking",
	"Feature",
	"Deprecation",
	"Fix",
	"Documentation",
}

// SciPyParser classifies messages following the SciPy commit convention.
type SciPyParser struct {
	table map[string]scipyTag
}

// NewSciPyParser creates a SciPy convention parser.
func NewSciPyParser(opts SciPyOptions) *SciPyParser {
	table := make(map[string]scipyTag, len(scipyTable)+len(opts.ExtraMinorTags)+len(opts.ExtraPatchTags))
	for k, v := range scipyTable {
		table[k] = v
	}
	for _, t := range opts.ExtraMinorTags {
		table[strings.ToUpper(t)] = scipyTag{bump: BumpMinor, category: "Feature"}
	}
	for _, t := range opts.ExtraPatchTags {
		table[strings.ToUpper(t)] = scipyTag{bump: BumpPatch, category: "Fix"}
	}
	return &SciPyParser{table: table}
}

// Parse classifies one commit message.
func (p *SciPyParser) Parse(sha, message string) (Token, error) {
	const op = "changes.SciPyParser.Parse"

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

	matches := scipySubjectRegex.FindStringSubmatch(subject)
	if matches == nil {
		return token, nil
	}

	entry, ok := p.table[matches[1]]
	if !ok {
		return token, nil
	}

	token.Category = entry.category
	token.Bump = entry.bump
	token.Breaking = entry.breaking
	token.Description = strings.TrimSpace(matches[2])

	if hasBreakingFooter(body) {
		token.Breaking = true
		token.Bump = BumpMajor
	}

	return token, nil
}

// SectionOrder returns the SciPy changelog sections in render order.
func (p *SciPyParser) SectionOrder() []string {
	return scipySectionOrder
}

// DefaultCategory returns the catch-all SciPy section.
func (p *SciPyParser) DefaultCategory() string {
	return "None"
}
