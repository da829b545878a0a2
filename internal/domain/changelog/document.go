package changelog

import (
	"strings"
	"time"

	"github.com/vergo-dev/vergo/internal/domain/changes"
	"github.com/vergo-dev/vergo/internal/domain/release"
	"github.com/vergo-dev/vergo/internal/domain/version"
)

// Entry is one release block of the document.
type Entry struct {
	Version      version.SemanticVersion
	Date         time.Time
	Sections     []Section
	CompareURL   string
	IsUnreleased bool
}

// Document is a value object representing a complete changelog.
type Document struct {
	title   string
	entries []Entry
}

// NewDocument creates an empty changelog document.
func NewDocument(title string) *Document {
	return &Document{
		title:   title,
		entries: make([]Entry, 0),
	}
}

// Title returns the document title.
func (d *Document) Title() string {
	return d.title
}

// Entries returns all entries, newest first.
func (d *Document) Entries() []Entry {
	return d.entries
}

// AddEntry appends an entry. Callers append in newest-first order.
func (d *Document) AddEntry(entry Entry) {
	d.entries = append(d.entries, entry)
}

// LatestEntry returns the most recent entry, or nil.
func (d *Document) LatestEntry() *Entry {
	if len(d.entries) == 0 {
		return nil
	}
	return &d.entries[0]
}

// FromHistory builds the document for a release history: an Unreleased
// entry when the head bucket has renderable commits, then one entry per
// release, newest first. Each release with an older neighbor gets a
// comparison link from compare.
func FromHistory(title string, hist *release.ReleaseHistory, parser changes.Parser, link LinkFunc, compare CompareFunc) *Document {
	doc := NewDocument(title)

	if sections := Sectionize(hist.Unreleased, parser, link); len(sections) > 0 {
		doc.AddEntry(Entry{IsUnreleased: true, Sections: sections})
	}
	for i, rel := range hist.Released {
		entry := Entry{
			Version:  rel.Version,
			Date:     rel.CommittedAt,
			Sections: Sectionize(rel.Commits, parser, link),
		}
		if compare != nil && i+1 < len(hist.Released) {
			entry.CompareURL = compare(hist.Released[i+1].Tag, rel.Tag)
		}
		doc.AddEntry(entry)
	}
	return doc
}

// Render renders the document to markdown. Rendering is pure: identical
// documents produce byte-identical output.
func (d *Document) Render() string {
	var sb strings.Builder
	estimatedSize := len(d.title) + 100
	for _, entry := range d.entries {
		estimatedSize += 100
		for _, section := range entry.Sections {
			estimatedSize += 50 + len(section.Title)
			for _, item := range section.Items {
				estimatedSize += len(item.Description) + len(item.URL) + 20
			}
		}
	}
	sb.Grow(estimatedSize)

	sb.WriteString("# ")
	sb.WriteString(d.title)
	sb.WriteString("\n\n")

	for _, entry := range d.entries {
		renderEntry(&sb, entry)
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderEntry renders a single release block.
func renderEntry(sb *strings.Builder, entry Entry) {
	if entry.IsUnreleased {
		sb.WriteString("## [Unreleased]")
	} else {
		sb.WriteString("## [")
		sb.WriteString(entry.Version.String())
		sb.WriteString("]")
		if entry.CompareURL != "" {
			sb.WriteString("(")
			sb.WriteString(entry.CompareURL)
			sb.WriteString(")")
		}
		if !entry.Date.IsZero() {
			sb.WriteString(" - ")
			sb.WriteString(entry.Date.Format("2006-01-02"))
		}
	}
	sb.WriteString("\n\n")

	for _, section := range entry.Sections {
		sb.WriteString("### ")
		sb.WriteString(section.Title)
		sb.WriteString("\n\n")

		for _, item := range section.Items {
			sb.WriteString("- ")
			if item.Scope != "" {
				sb.WriteString("**")
				sb.WriteString(item.Scope)
				sb.WriteString(":** ")
			}
			sb.WriteString(item.Description)
			if item.SHA != "" {
				sb.WriteString(" (")
				if item.URL != "" {
					sb.WriteString("[")
					sb.WriteString(item.SHA)
					sb.WriteString("](")
					sb.WriteString(item.URL)
					sb.WriteString(")")
				} else {
					sb.WriteString(item.SHA)
				}
				sb.WriteString(")")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
}
