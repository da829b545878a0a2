// Package version provides domain types for semantic versioning.
package version

import (
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    SemanticVersion
		wantErr bool
	}{
		{"1.2.3", New(1, 2, 3), false},
		{"0.1.0", Initial, false},
		{"0.0.0", Zero, false},
		{"1.0.0-rc.1", NewPrerelease(1, 0, 0, "rc", 1), false},
		{"0.3.0-beta.2", NewPrerelease(0, 3, 0, "beta", 2), false},
		{"10.20.30-alpha.42", NewPrerelease(10, 20, 30, "alpha", 42), false},
		{"v1.2.3", Zero, true},
		{"1.2", Zero, true},
		{"1.2.3-rc", Zero, true},
		{"1.2.3-rc.0", Zero, true},
		{"1.2.3-rc.1.2", Zero, true},
		{"1.2.3+build", Zero, true},
		{"", Zero, true},
		{"not-a-version", Zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	versions := []SemanticVersion{
		Zero,
		Initial,
		New(1, 2, 3),
		NewPrerelease(0, 1, 1, "rc", 1),
		NewPrerelease(2, 0, 0, "beta", 12),
	}

	for _, v := range versions {
		got, err := Parse(v.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", v.String(), err)
		}
		if !got.Equal(v) {
			t.Errorf("Parse(String()) = %v, want %v", got, v)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.1.0", "1.0.9", 1},
		{"1.0.1", "1.0.2", -1},
		// Final releases outrank prereleases of the same tuple.
		{"1.0.0", "1.0.0-rc.1", 1},
		{"1.0.0-rc.1", "1.0.0", -1},
		// Same token orders by revision.
		{"1.0.0-rc.1", "1.0.0-rc.2", -1},
		{"0.3.0-beta.2", "0.3.0-beta.1", 1},
		{"0.3.0-beta.1", "0.3.0-beta.1", 0},
		// Prerelease of a higher tuple outranks a lower final.
		{"0.2.0", "0.3.0-beta.1", -1},
	}

	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompare_SortStability(t *testing.T) {
	// Sorting then re-sorting must be stable: the ordering is a strict
	// total order within one (tuple, token) family.
	input := []SemanticVersion{
		MustParse("0.2.0"),
		MustParse("0.1.1-rc.1"),
		MustParse("0.3.0-beta.2"),
		MustParse("0.1.0"),
		MustParse("0.3.0-beta.1"),
		MustParse("0.2.0-rc.1"),
	}

	sorted := make([]SemanticVersion, len(input))
	copy(sorted, input)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	want := []string{
		"0.1.0",
		"0.1.1-rc.1",
		"0.2.0-rc.1",
		"0.2.0",
		"0.3.0-beta.1",
		"0.3.0-beta.2",
	}
	for i, w := range want {
		if sorted[i].String() != w {
			t.Fatalf("sorted[%d] = %s, want %s", i, sorted[i], w)
		}
	}

	// Round-trip: sorting the sorted slice changes nothing.
	again := make([]SemanticVersion, len(sorted))
	copy(again, sorted)
	sort.Slice(again, func(i, j int) bool { return again[i].LessThan(again[j]) })
	for i := range again {
		if !again[i].Equal(sorted[i]) {
			t.Fatalf("re-sort moved element %d: %s != %s", i, again[i], sorted[i])
		}
	}
}

func TestBump(t *testing.T) {
	v := MustParse("1.2.3")

	if got := v.BumpMajor(); !got.Equal(New(2, 0, 0)) {
		t.Errorf("BumpMajor() = %v, want 2.0.0", got)
	}
	if got := v.BumpMinor(); !got.Equal(New(1, 3, 0)) {
		t.Errorf("BumpMinor() = %v, want 1.3.0", got)
	}
	if got := v.BumpPatch(); !got.Equal(New(1, 2, 4)) {
		t.Errorf("BumpPatch() = %v, want 1.2.4", got)
	}

	// Bumps clear prerelease state.
	pre := MustParse("1.2.3-rc.2")
	if got := pre.BumpMinor(); got.IsPrerelease() {
		t.Errorf("BumpMinor() of prerelease = %v, want final", got)
	}
}

func TestWithPrerelease(t *testing.T) {
	v := MustParse("0.3.0").WithPrerelease("beta", 1)

	if v.String() != "0.3.0-beta.1" {
		t.Errorf("String() = %v, want 0.3.0-beta.1", v)
	}
	if !v.IsPrerelease() {
		t.Error("IsPrerelease() = false, want true")
	}
	if got := v.WithoutPrerelease(); got.String() != "0.3.0" {
		t.Errorf("WithoutPrerelease() = %v, want 0.3.0", got)
	}
}

func TestSameTuple(t *testing.T) {
	if !MustParse("1.0.0-rc.1").SameTuple(MustParse("1.0.0")) {
		t.Error("SameTuple(1.0.0-rc.1, 1.0.0) = false, want true")
	}
	if MustParse("1.0.1").SameTuple(MustParse("1.0.0")) {
		t.Error("SameTuple(1.0.1, 1.0.0) = true, want false")
	}
}
