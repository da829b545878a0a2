// Package changes provides commit classification against release conventions.
package changes

import "testing"

func TestSciPyParser_Parse(t *testing.T) {
	p := NewSciPyParser(DefaultSciPyOptions())

	tests := []struct {
		name         string
		message      string
		wantCategory string
		wantBump     BumpLevel
		wantBreaking bool
		wantDesc     string
	}{
		{
			name:         "enhancement is minor feature",
			message:      "ENH: add some more text",
			wantCategory: "Feature",
			wantBump:     BumpMinor,
			wantDesc:     "add some more text",
		},
		{
			name:         "maintenance is patch fix",
			message:      "MAINT: add some more text",
			wantCategory: "Fix",
			wantBump:     BumpPatch,
			wantDesc:     "add some more text",
		},
		{
			name:         "bug is patch fix",
			message:      "BUG: off by one",
			wantCategory: "Fix",
			wantBump:     BumpPatch,
			wantDesc:     "off by one",
		},
		{
			name:         "api change is breaking",
			message:      "API: drop deprecated interface",
			wantCategory: "Breaking",
			wantBump:     BumpMajor,
			wantBreaking: true,
			wantDesc:     "drop deprecated interface",
		},
		{
			name:         "deprecation is minor",
			message:      "DEP: deprecate legacy mode",
			wantCategory: "Deprecation",
			wantBump:     BumpMinor,
			wantDesc:     "deprecate legacy mode",
		},
		{
			name:         "docs contribute no bump",
			message:      "DOC: document the flags",
			wantCategory: "Documentation",
			wantBump:     BumpNone,
			wantDesc:     "document the flags",
		},
		{
			name:         "comma separated tags use the first",
			message:      "ENH, TST: feature with tests",
			wantCategory: "Feature",
			wantBump:     BumpMinor,
			wantDesc:     "feature with tests",
		},
		{
			name:         "unknown acronym",
			message:      "WIP: not finished",
			wantCategory: "None",
			wantBump:     BumpNone,
			wantDesc:     "WIP: not finished",
		},
		{
			name:         "plain message",
			message:      "Initial commit",
			wantCategory: "None",
			wantBump:     BumpNone,
			wantDesc:     "Initial commit",
		},
		{
			name:         "breaking footer escalates",
			message:      "MAINT: tidy up\n\nBREAKING CHANGE: renamed public module",
			wantCategory: "Fix",
			wantBump:     BumpMajor,
			wantBreaking: true,
			wantDesc:     "tidy up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := p.Parse("abc1234", tt.message)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if token.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", token.Category, tt.wantCategory)
			}
			if token.Bump != tt.wantBump {
				t.Errorf("Bump = %v, want %v", token.Bump, tt.wantBump)
			}
			if token.Breaking != tt.wantBreaking {
				t.Errorf("Breaking = %v, want %v", token.Breaking, tt.wantBreaking)
			}
			if token.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", token.Description, tt.wantDesc)
			}
		})
	}
}

func TestSciPyParser_ExtraTags(t *testing.T) {
	p := NewSciPyParser(SciPyOptions{ExtraMinorTags: []string{"FEAT"}, ExtraPatchTags: []string{"SEC"}})

	token, err := p.Parse("abc", "FEAT: brand new thing")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if token.Bump != BumpMinor || token.Category != "Feature" {
		t.Errorf("token = %+v, want minor Feature", token)
	}

	token, err = p.Parse("abc", "SEC: patch the hole")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if token.Bump != BumpPatch || token.Category != "Fix" {
		t.Errorf("token = %+v, want patch Fix", token)
	}
}

func TestSciPyParser_Sections(t *testing.T) {
	p := NewSciPyParser(DefaultSciPyOptions())
	if p.DefaultCategory() != "None" {
		t.Errorf("DefaultCategory() = %q, want None", p.DefaultCategory())
	}
	if p.SectionOrder()[0] != "Breaking" {
		t.Errorf("SectionOrder()[0] = %q, want Breaking", p.SectionOrder()[0])
	}
}
