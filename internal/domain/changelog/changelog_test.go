package changelog

import (
	"strings"
	"testing"
	"time"

	"github.com/vergo-dev/vergo/internal/domain/changes"
	"github.com/vergo-dev/vergo/internal/domain/release"
	"github.com/vergo-dev/vergo/internal/domain/version"
)

func angularParser(t *testing.T) changes.Parser {
	t.Helper()
	p, err := changes.NewParser(changes.ConventionAngular)
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	return p
}

func TestSectionizeOrdering(t *testing.T) {
	tokens := []changes.Token{
		{SHA: "a1a1a1a1a1", Category: "Fix", Description: "repair pagination", Bump: changes.BumpPatch},
		{SHA: "b2b2b2b2b2", Category: "Unknown", Description: "Initial commit"},
		{SHA: "c3c3c3c3c3", Category: "Feature", Description: "add pagination", Bump: changes.BumpMinor},
		{SHA: "d4d4d4d4d4", Category: "Feature", Description: "drop v1 endpoints", Bump: changes.BumpMajor, Breaking: true},
		{SHA: "e5e5e5e5e5", Category: "Fix", Description: "noise", Excluded: true},
	}

	sections := Sectionize(tokens, angularParser(t), nil)

	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	want := []string{"Breaking Changes", "Feature", "Fix", "Unknown"}
	if len(titles) != len(want) {
		t.Fatalf("section titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("section titles = %v, want %v", titles, want)
		}
	}

	if sections[2].Items[0].Description != "repair pagination" {
		t.Errorf("Fix section = %v, want the non-excluded fix only", sections[2].Items)
	}
	if len(sections[2].Items) != 1 {
		t.Errorf("len(Fix items) = %d, want 1 (excluded token dropped)", len(sections[2].Items))
	}
	if got := sections[0].Items[0].SHA; got != "d4d4d4d" {
		t.Errorf("breaking item SHA = %q, want shortened d4d4d4d", got)
	}
}

func TestSectionizeUnknownCommitFallsThrough(t *testing.T) {
	p := angularParser(t)
	tok, err := p.Parse("f6f6f6f6f6", "Initial commit")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tok.Bump != changes.BumpNone {
		t.Fatalf("Bump = %v, want none", tok.Bump)
	}

	sections := Sectionize([]changes.Token{tok}, p, nil)
	if len(sections) != 1 || sections[0].Title != "Unknown" {
		t.Fatalf("sections = %v, want single Unknown section", sections)
	}
}

func TestSectionizeLinks(t *testing.T) {
	tokens := []changes.Token{
		{SHA: "a1a1a1a1a1", Category: "Feature", Description: "add search", Bump: changes.BumpMinor},
	}
	link := func(sha string) string {
		return "https://example.com/commit/" + sha
	}

	sections := Sectionize(tokens, angularParser(t), link)
	if got := sections[0].Items[0].URL; got != "https://example.com/commit/a1a1a1a1a1" {
		t.Errorf("URL = %q, want full-SHA link", got)
	}
}

func TestFromHistory(t *testing.T) {
	hist := &release.ReleaseHistory{
		Unreleased: []changes.Token{
			{SHA: "head1head1", Category: "Feature", Description: "pending work", Bump: changes.BumpMinor},
		},
		Released: []*release.Release{
			{
				Version:     version.New(0, 2, 0),
				Tag:         "v0.2.0",
				CommittedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
				Commits: []changes.Token{
					{SHA: "rel2rel2re", Category: "Feature", Description: "add feature", Bump: changes.BumpMinor},
				},
			},
			{
				Version:     version.New(0, 1, 0),
				Tag:         "v0.1.0",
				CommittedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				Commits: []changes.Token{
					{SHA: "rel1rel1re", Category: "Unknown", Description: "Initial commit"},
				},
			},
		},
	}

	doc := FromHistory("Changelog", hist, angularParser(t), nil, nil)

	entries := doc.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(Entries()) = %d, want 3", len(entries))
	}
	if !entries[0].IsUnreleased {
		t.Error("Entries()[0].IsUnreleased = false, want true")
	}
	if !entries[1].Version.Equal(version.New(0, 2, 0)) {
		t.Errorf("Entries()[1].Version = %v, want 0.2.0", entries[1].Version)
	}

	out := doc.Render()
	for _, want := range []string{
		"# Changelog",
		"## [Unreleased]",
		"## [0.2.0] - 2026-02-01",
		"## [0.1.0] - 2026-01-01",
		"### Feature",
		"- add feature (rel2rel)",
		"- Initial commit (rel1rel)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q\n%s", want, out)
		}
	}

	compare := func(from, to string) string {
		return "https://example.com/compare/" + from + "..." + to
	}
	linked := FromHistory("Changelog", hist, angularParser(t), nil, compare)

	entries = linked.Entries()
	if got := entries[1].CompareURL; got != "https://example.com/compare/v0.1.0...v0.2.0" {
		t.Errorf("Entries()[1].CompareURL = %q, want compare link to v0.1.0", got)
	}
	if got := entries[2].CompareURL; got != "" {
		t.Errorf("Entries()[2].CompareURL = %q, want empty for the oldest release", got)
	}

	out = linked.Render()
	if !strings.Contains(out, "## [0.2.0](https://example.com/compare/v0.1.0...v0.2.0) - 2026-02-01") {
		t.Errorf("Render() missing linked release heading\n%s", out)
	}
}

func TestFromHistoryOmitsEmptyUnreleased(t *testing.T) {
	hist := &release.ReleaseHistory{
		Unreleased: []changes.Token{
			{SHA: "skip1skip1", Category: "Fix", Description: "bot noise", Excluded: true},
		},
	}

	doc := FromHistory("Changelog", hist, angularParser(t), nil, nil)
	if len(doc.Entries()) != 0 {
		t.Errorf("Entries() = %v, want none for excluded-only head bucket", doc.Entries())
	}
}

func TestRenderIdempotent(t *testing.T) {
	hist := &release.ReleaseHistory{
		Released: []*release.Release{
			{
				Version:     version.New(1, 0, 0),
				Tag:         "v1.0.0",
				CommittedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Commits: []changes.Token{
					{SHA: "aaaaaaaaaa", Category: "Feature", Description: "ship it", Bump: changes.BumpMinor, Scope: "core"},
					{SHA: "bbbbbbbbbb", Category: "Fix", Description: "patch it", Bump: changes.BumpPatch},
				},
			},
		},
	}
	doc := FromHistory("Changelog", hist, angularParser(t), nil, nil)

	first := doc.Render()
	for i := 0; i < 3; i++ {
		if got := doc.Render(); got != first {
			t.Fatal("Render() output differs across invocations")
		}
	}
	if !strings.Contains(first, "- **core:** ship it (aaaaaaa)") {
		t.Errorf("Render() missing scoped item\n%s", first)
	}
}
