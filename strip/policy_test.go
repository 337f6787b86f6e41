package strip_test

import (
	stderrors "errors"
	"testing"

	"github.com/wasmkit/wasm-strip/errors"
	"github.com/wasmkit/wasm-strip/strip"
)

func mustPolicy(t *testing.T, all bool, patterns []string) *strip.Policy {
	t.Helper()
	p, err := strip.NewPolicy(all, patterns)
	if err != nil {
		t.Fatalf("NewPolicy: %v", err)
	}
	return p
}

func TestPolicyDefaultKeepsNameSection(t *testing.T) {
	p := mustPolicy(t, false, nil)

	if p.Strip("name") {
		t.Error("default policy should keep the name section")
	}
	for _, n := range []string{"producers", ".debug_info", "target_features", ""} {
		if !p.Strip(n) {
			t.Errorf("default policy should strip %q", n)
		}
	}
}

func TestPolicyStripAll(t *testing.T) {
	p := mustPolicy(t, true, nil)

	for _, n := range []string{"name", "producers", ""} {
		if !p.Strip(n) {
			t.Errorf("strip-all policy should strip %q", n)
		}
	}
}

func TestPolicyStripAllWinsOverPatterns(t *testing.T) {
	p := mustPolicy(t, true, []string{"^never-matches$"})

	if !p.Strip("name") {
		t.Error("strip-all takes priority over patterns")
	}
}

func TestPolicyPatterns(t *testing.T) {
	p := mustPolicy(t, false, []string{"produc.*", "^\\.debug_"})

	tests := []struct {
		name string
		drop bool
	}{
		{"producers", true},
		{".debug_info", true},
		{".debug_line", true},
		{"name", false},
		{"target_features", false},
		{"debug_info", false}, // no leading dot, anchor does not match
	}
	for _, tt := range tests {
		if got := p.Strip(tt.name); got != tt.drop {
			t.Errorf("Strip(%q): got %v, want %v", tt.name, got, tt.drop)
		}
	}
}

func TestPolicyPatternsUnanchored(t *testing.T) {
	p := mustPolicy(t, false, []string{"debug"})

	if !p.Strip(".debug_info") {
		t.Error("pattern matching should be unanchored, like the matcher it wraps")
	}
}

func TestPolicyEmptyPatternsFallsBackToDefault(t *testing.T) {
	p := mustPolicy(t, false, []string{})

	if p.Strip("name") {
		t.Error("empty pattern set must behave like the default mode")
	}
	if !p.Strip("producers") {
		t.Error("empty pattern set must not mean \"drop nothing\"")
	}
}

func TestPolicyInvalidPattern(t *testing.T) {
	_, err := strip.NewPolicy(false, []string{"valid", "("})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidPattern}) {
		t.Errorf("expected invalid-pattern config error, got %v", err)
	}
}
