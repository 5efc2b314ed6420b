package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is an immutable, pre-compiled matching rule.
//
// Case-insensitive rules fold ASCII letters only. Go's (?i) follows Unicode
// simple folding, where U+212A KELVIN SIGN matches k and U+017F LATIN SMALL
// LETTER LONG S matches s; both are masked before matching.
type Rule struct {
	source          string
	caseInsensitive bool
	asciiFold       bool
	re              *regexp.Regexp
}

// Replacements keep the UTF-8 width so match offsets stay valid for the
// original text, and have no case folding of their own.
var foldMask = strings.NewReplacer("\u212A", "\uFFFD", "\u017F", "\u00D7")

func (r *Rule) subject(text string) string {
	if !r.asciiFold || !strings.ContainsAny(text, "\u212A\u017F") {
		return text
	}
	return foldMask.Replace(text)
}

// NewRule compiles a case-insensitive rule.
func NewRule(pattern string) (*Rule, error) {
	return compile(pattern, true)
}

// NewCaseSensitiveRule compiles a rule that respects letter case.
func NewCaseSensitiveRule(pattern string) (*Rule, error) {
	return compile(pattern, false)
}

// MustRule is like NewRule but panics if the pattern does not compile.
// Intended for package-level rule definitions.
func MustRule(pattern string) *Rule {
	r, err := NewRule(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

func compile(pattern string, caseInsensitive bool) (*Rule, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	expr := pattern
	if caseInsensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return &Rule{
		source:          pattern,
		caseInsensitive: caseInsensitive,
		asciiFold:       caseInsensitive,
		re:              re,
	}, nil
}

// Union builds a rule matching text accepted by any of the given rules.
// Each alternative keeps its own case sensitivity. Nil rules are skipped; it
// panics when none is left, since an empty alternation would accept anything.
func Union(rules ...*Rule) *Rule {
	parts := make([]string, 0, len(rules))
	fold := false
	for _, r := range rules {
		if r == nil {
			continue
		}
		fold = fold || r.asciiFold
		if r.caseInsensitive {
			parts = append(parts, "(?i:"+r.source+")")
		} else {
			parts = append(parts, "(?:"+r.source+")")
		}
	}
	if len(parts) == 0 {
		panic(fmt.Errorf("%w: union of no rules", ErrInvalidPattern))
	}
	source := "(?:" + strings.Join(parts, "|") + ")"
	return &Rule{
		source: source,
		// The flags live inside each alternative.
		caseInsensitive: false,
		asciiFold:       fold,
		re:              regexp.MustCompile(source),
	}
}

// Match reports whether text matches the rule anywhere.
func (r *Rule) Match(text string) bool {
	if r == nil || r.re == nil {
		return false
	}
	return r.re.MatchString(r.subject(text))
}

// Find returns the leftmost matching substring, or "" when nothing matches.
func (r *Rule) Find(text string) string {
	if r == nil || r.re == nil {
		return ""
	}
	loc := r.re.FindStringIndex(r.subject(text))
	if loc == nil {
		return ""
	}
	return text[loc[0]:loc[1]]
}

// CaseInsensitive reports whether the rule ignores letter case.
func (r *Rule) CaseInsensitive() bool {
	return r != nil && r.caseInsensitive
}

// String returns the source pattern without flags.
func (r *Rule) String() string {
	if r == nil {
		return ""
	}
	return r.source
}
