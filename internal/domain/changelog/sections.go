// Package changelog renders release histories as markdown documents.
package changelog

import (
	"github.com/vergo-dev/vergo/internal/domain/changes"
)

// breakingSectionTitle heads the section collecting breaking changes
// across all conventions. It always renders first.
const breakingSectionTitle = "Breaking Changes"

// Item is a single rendered line in a changelog section.
type Item struct {
	Description string
	Scope       string
	SHA         string
	URL         string
}

// Section is a titled group of items. Items preserve the newest-first
// order established by the history builder.
type Section struct {
	Title string
	Items []Item
}

// LinkFunc resolves a commit SHA to a browsable URL. A nil LinkFunc or an
// empty result leaves the item unlinked.
type LinkFunc func(sha string) string

// CompareFunc resolves a tag pair to a browsable comparison URL. A nil
// CompareFunc or an empty result leaves the release heading unlinked.
type CompareFunc func(from, to string) string

// Sectionize groups tokens into the convention's fixed section order.
// Breaking changes lead, the convention's sections follow, and tokens
// whose category maps to no section fall into the catch-all, rendered
// last. Excluded tokens are dropped. Output is deterministic: identical
// input yields identical sections.
func Sectionize(tokens []changes.Token, parser changes.Parser, link LinkFunc) []Section {
	order := parser.SectionOrder()
	def := parser.DefaultCategory()

	known := make(map[string]bool, len(order))
	for _, title := range order {
		known[title] = true
	}

	var breaking []Item
	grouped := make(map[string][]Item, len(order))
	var catchAll []Item

	for _, t := range tokens {
		if t.Excluded {
			continue
		}
		item := Item{
			Description: t.Description,
			Scope:       t.Scope,
			SHA:         t.ShortSHA(),
		}
		if link != nil {
			item.URL = link(t.SHA)
		}

		switch {
		case t.Breaking:
			breaking = append(breaking, item)
		case known[t.Category] && t.Category != def:
			grouped[t.Category] = append(grouped[t.Category], item)
		default:
			catchAll = append(catchAll, item)
		}
	}

	var sections []Section
	if len(breaking) > 0 {
		sections = append(sections, Section{Title: breakingSectionTitle, Items: breaking})
	}
	for _, title := range order {
		if items := grouped[title]; len(items) > 0 {
			sections = append(sections, Section{Title: title, Items: items})
		}
	}
	if len(catchAll) > 0 {
		sections = append(sections, Section{Title: def, Items: catchAll})
	}
	return sections
}
