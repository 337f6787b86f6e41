package strip

import (
	"regexp"
	"strings"

	"github.com/wasmkit/wasm-strip/errors"
)

// NameSection is the custom section carrying symbol names. It is the only
// custom section the default policy retains.
const NameSection = "name"

// Policy decides which custom sections are stripped. It is built once
// before a pass and evaluated independently per custom section name.
//
// Three modes, in strict priority order:
//
//  1. strip everything unconditionally;
//  2. strip names matching any configured pattern;
//  3. (default) strip everything except the "name" section.
type Policy struct {
	rules []rule
}

// rule is one step of the decision chain. It reports a verdict and whether
// the rule applies to the name; the first applicable rule wins.
type rule func(name string) (drop, ok bool)

// NewPolicy compiles a policy. An empty pattern slice falls through to
// the default mode; it never means "drop nothing" or "drop everything".
// A pattern that fails to compile is reported before any input is parsed.
func NewPolicy(stripAll bool, patterns []string) (*Policy, error) {
	var rules []rule

	if stripAll {
		rules = append(rules, func(string) (bool, bool) {
			return true, true
		})
	}

	if len(patterns) > 0 {
		alts := make([]string, len(patterns))
		for i, p := range patterns {
			// Validate each pattern on its own so the error names the
			// pattern the user wrote, not the combined alternation.
			if _, err := regexp.Compile(p); err != nil {
				return nil, errors.InvalidPattern(p, err)
			}
			alts[i] = "(?:" + p + ")"
		}
		re, err := regexp.Compile(strings.Join(alts, "|"))
		if err != nil {
			return nil, errors.InvalidPattern(strings.Join(patterns, "|"), err)
		}
		rules = append(rules, func(name string) (bool, bool) {
			return re.MatchString(name), true
		})
	}

	rules = append(rules, func(name string) (bool, bool) {
		return name != NameSection, true
	})

	return &Policy{rules: rules}, nil
}

// Strip reports whether the custom section with the given name should be
// dropped. It is pure and safe for concurrent use.
func (p *Policy) Strip(name string) bool {
	for _, r := range p.rules {
		if drop, ok := r(name); ok {
			return drop
		}
	}
	return false
}
