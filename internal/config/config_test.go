package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vergo-dev/vergo/internal/domain/changes"
	"github.com/vergo-dev/vergo/internal/domain/version"
)

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFromDirectory(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Versioning.TagFormat != "v{version}" {
		t.Errorf("TagFormat = %q, want v{version}", cfg.Versioning.TagFormat)
	}
	if cfg.Versioning.Initial != "0.1.0" {
		t.Errorf("Initial = %q, want 0.1.0", cfg.Versioning.Initial)
	}
	if !cfg.Versioning.MajorOnZero {
		t.Error("MajorOnZero = false, want true")
	}
	if cfg.Parser.Convention != "angular" {
		t.Errorf("Convention = %q, want angular", cfg.Parser.Convention)
	}
	if cfg.History.OrphanPolicy != "attach" {
		t.Errorf("OrphanPolicy = %q, want attach", cfg.History.OrphanPolicy)
	}

	main, ok := cfg.Branches["main"]
	if !ok {
		t.Fatal("default branches missing main rule")
	}
	if main.Match != "(main|master)" || main.Prerelease {
		t.Errorf("main rule = %+v, want final channel matching (main|master)", main)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "vergo.yaml", `
versioning:
  tag_format: "release-{version}"
  initial: "1.0.0"
  major_on_zero: false
parser:
  convention: scipy
branches:
  main:
    match: "(main|master)"
  beta:
    match: "beta.*"
    prerelease: true
    prerelease_token: beta
history:
  exclude:
    - '^Merge '
  orphan_policy: discard
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Versioning.TagFormat != "release-{version}" {
		t.Errorf("TagFormat = %q, want release-{version}", cfg.Versioning.TagFormat)
	}
	if cfg.Versioning.MajorOnZero {
		t.Error("MajorOnZero = true, want false")
	}
	if cfg.Parser.Convention != "scipy" {
		t.Errorf("Convention = %q, want scipy", cfg.Parser.Convention)
	}

	beta, ok := cfg.Branches["beta"]
	if !ok {
		t.Fatal("branches missing beta rule")
	}
	if !beta.Prerelease || beta.PrereleaseToken != "beta" {
		t.Errorf("beta rule = %+v, want prerelease with token beta", beta)
	}

	if cfg.History.OrphanPolicy != "discard" {
		t.Errorf("OrphanPolicy = %q, want discard", cfg.History.OrphanPolicy)
	}
	if len(cfg.History.Exclude) != 1 || cfg.History.Exclude[0] != "^Merge " {
		t.Errorf("Exclude = %v, want [^Merge ]", cfg.History.Exclude)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bad tag format",
			content: "versioning:\n  tag_format: \"no-placeholder\"\n",
			want:    "versioning.tag_format",
		},
		{
			name:    "bad initial version",
			content: "versioning:\n  initial: \"one.two\"\n",
			want:    "versioning.initial",
		},
		{
			name:    "unknown convention",
			content: "parser:\n  convention: haiku\n",
			want:    "parser.convention",
		},
		{
			name:    "prerelease without token",
			content: "branches:\n  beta:\n    match: \"beta.*\"\n    prerelease: true\n",
			want:    "prerelease_token",
		},
		{
			name:    "bad orphan policy",
			content: "history:\n  orphan_policy: keep\n",
			want:    "orphan_policy",
		},
		{
			name:    "bad exclude pattern",
			content: "history:\n  exclude:\n    - '['\n",
			want:    "history.exclude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeConfigFile(t, dir, "vergo.yaml", tt.content)

			_, err := LoadFromFile(path)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("LoadFromFile() error = %v, want ValidationError", err)
			}
			found := false
			for _, msg := range verr.Errors {
				if strings.Contains(msg, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("ValidationError = %v, want mention of %q", verr.Errors, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ".vergo.toml", "[versioning]\n")

	path, err := FindConfigFile(dir)
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if filepath.Base(path) != ".vergo.toml" {
		t.Errorf("FindConfigFile() = %q, want .vergo.toml", path)
	}

	if _, err := FindConfigFile(t.TempDir()); err == nil {
		t.Error("FindConfigFile() on empty dir error = nil, want not found")
	}
}

func TestConfigBridge(t *testing.T) {
	cfg := DefaultConfig()

	format, err := cfg.TagFormat()
	if err != nil {
		t.Fatalf("TagFormat() error = %v", err)
	}
	if got := format.Render(version.New(1, 2, 3)); got != "v1.2.3" {
		t.Errorf("Render() = %q, want v1.2.3", got)
	}

	pol, err := cfg.Policy()
	if err != nil {
		t.Fatalf("Policy() error = %v", err)
	}
	if !pol.Initial.Equal(version.New(0, 1, 0)) || !pol.MajorOnZero {
		t.Errorf("Policy() = %+v, want initial 0.1.0 with major_on_zero", pol)
	}

	parser, err := cfg.BuildParser()
	if err != nil {
		t.Fatalf("BuildParser() error = %v", err)
	}
	tok, err := parser.Parse("abc1234", "feat: add search")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tok.Bump != changes.BumpMinor {
		t.Errorf("Bump = %v, want minor", tok.Bump)
	}

	rules, err := cfg.ChannelRules()
	if err != nil {
		t.Fatalf("ChannelRules() error = %v", err)
	}
	if len(rules) != 1 || rules[0].Name() != "main" {
		t.Errorf("ChannelRules() = %v, want single main rule", rules)
	}
	if !rules[0].Matches("master") {
		t.Error("main rule does not match master")
	}
}

func TestBuildParserOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parser.Angular.MinorTypes = []string{"feat", "perf"}

	parser, err := cfg.BuildParser()
	if err != nil {
		t.Fatalf("BuildParser() error = %v", err)
	}

	tok, err := parser.Parse("abc1234", "perf: faster joins")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tok.Bump != changes.BumpMinor {
		t.Errorf("Bump = %v, want minor for promoted perf type", tok.Bump)
	}
}
