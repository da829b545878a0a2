// Package version provides domain types for semantic versioning.
package version

import (
	"testing"
)

func TestNewTagFormat(t *testing.T) {
	tests := []struct {
		template string
		wantErr  bool
	}{
		{"v{version}", false},
		{"{version}", false},
		{"release-{version}", false},
		{"{version}-live", false},
		{"v", true},
		{"", true},
		{"{version}{version}", true},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			_, err := NewTagFormat(tt.template)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTagFormat(%q) error = %v, wantErr %v", tt.template, err, tt.wantErr)
			}
		})
	}
}

func TestTagFormat_Render(t *testing.T) {
	tests := []struct {
		template string
		version  string
		want     string
	}{
		{"v{version}", "1.2.3", "v1.2.3"},
		{"v{version}", "0.1.1-rc.1", "v0.1.1-rc.1"},
		{"{version}", "0.3.0-beta.2", "0.3.0-beta.2"},
		{"release-{version}-final", "1.0.0", "release-1.0.0-final"},
	}

	for _, tt := range tests {
		f := MustTagFormat(tt.template)
		if got := f.Render(MustParse(tt.version)); got != tt.want {
			t.Errorf("Render(%s, %s) = %q, want %q", tt.version, tt.template, got, tt.want)
		}
	}
}

func TestTagFormat_ParseRoundTrip(t *testing.T) {
	templates := []string{"v{version}", "{version}", "rel/{version}", "{version}-stamp"}
	versions := []string{"0.0.0", "0.1.0", "1.2.3", "0.1.1-rc.1", "0.3.0-beta.2", "10.0.0-alpha.99"}

	for _, template := range templates {
		f := MustTagFormat(template)
		for _, vs := range versions {
			v := MustParse(vs)
			got, ok := f.Parse(f.Render(v))
			if !ok {
				t.Fatalf("Parse(Render(%s)) with template %q not recognized", vs, template)
			}
			if !got.Equal(v) {
				t.Errorf("Parse(Render(%s)) = %v, want %v", vs, got, v)
			}
		}
	}
}

func TestTagFormat_ParseRejectsUnmanaged(t *testing.T) {
	f := MustTagFormat("v{version}")

	tests := []string{
		"1.2.3",          // missing prefix
		"v1.2",           // incomplete tuple
		"vabc",           // not a version
		"v",              // empty body
		"nightly-2024",   // unrelated tag
		"v1.2.3-rc",      // prerelease without revision
		"v1.2.3+build.1", // build metadata is not part of the grammar
	}

	for _, tag := range tests {
		if _, ok := f.Parse(tag); ok {
			t.Errorf("Parse(%q) = ok, want not recognized", tag)
		}
	}

	// A tag shorter than prefix+suffix can still satisfy both affix checks
	// when they overlap. It must be rejected, not sliced.
	overlapping := MustTagFormat("release-{version}-live")
	for _, tag := range []string{"release-live", "release-", "release--live"} {
		if _, ok := overlapping.Parse(tag); ok {
			t.Errorf("Parse(%q) = ok, want not recognized", tag)
		}
	}
}

func TestTagFormat_String(t *testing.T) {
	f := MustTagFormat("rel/{version}")
	if got := f.String(); got != "rel/{version}" {
		t.Errorf("String() = %q, want rel/{version}", got)
	}
	if got := f.Prefix(); got != "rel/" {
		t.Errorf("Prefix() = %q, want rel/", got)
	}
}
