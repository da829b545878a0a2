// Package changes provides commit classification against release conventions.
package changes

import (
	"testing"

	verrors "github.com/vergo-dev/vergo/internal/errors"
)

func TestNewParser(t *testing.T) {
	for _, c := range []Convention{ConventionAngular, ConventionEmoji, ConventionSciPy, ConventionTag} {
		p, err := NewParser(c)
		if err != nil {
			t.Fatalf("NewParser(%s) error = %v", c, err)
		}
		if p == nil {
			t.Fatalf("NewParser(%s) = nil", c)
		}
	}

	if _, err := NewParser(Convention("fancy")); err == nil {
		t.Error("NewParser(fancy) error = nil, want validation error")
	}
}

func TestConvention_IsValid(t *testing.T) {
	if !ConventionAngular.IsValid() {
		t.Error("ConventionAngular.IsValid() = false, want true")
	}
	if Convention("nope").IsValid() {
		t.Error(`Convention("nope").IsValid() = true, want false`)
	}
}

func TestParseError_Kind(t *testing.T) {
	p, err := NewParser(ConventionAngular)
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	_, err = p.Parse("abc", "")
	if !verrors.IsKind(err, verrors.KindParse) {
		t.Errorf("Parse(empty) kind = %v, want parse", verrors.GetKind(err))
	}
}

func TestBumpLevel_Max(t *testing.T) {
	if got := BumpPatch.Max(BumpMinor); got != BumpMinor {
		t.Errorf("Max(patch, minor) = %v, want minor", got)
	}
	if got := BumpMajor.Max(BumpNone); got != BumpMajor {
		t.Errorf("Max(major, none) = %v, want major", got)
	}
}

func TestAggregateBump(t *testing.T) {
	tokens := []Token{
		{Bump: BumpPatch},
		{Bump: BumpMinor},
		{Bump: BumpNone},
	}
	if got := AggregateBump(tokens); got != BumpMinor {
		t.Errorf("AggregateBump() = %v, want minor", got)
	}

	// Excluded tokens never contribute.
	tokens = append(tokens, Token{Bump: BumpMajor, Excluded: true})
	if got := AggregateBump(tokens); got != BumpMinor {
		t.Errorf("AggregateBump() with excluded major = %v, want minor", got)
	}

	if got := AggregateBump(nil); got != BumpNone {
		t.Errorf("AggregateBump(nil) = %v, want none", got)
	}
}

func TestToken_ShortSHA(t *testing.T) {
	token := Token{SHA: "0123456789abcdef"}
	if got := token.ShortSHA(); got != "0123456" {
		t.Errorf("ShortSHA() = %q, want 0123456", got)
	}

	short := Token{SHA: "abc"}
	if got := short.ShortSHA(); got != "abc" {
		t.Errorf("ShortSHA() = %q, want abc", got)
	}
}
