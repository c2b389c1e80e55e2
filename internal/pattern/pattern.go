// Package pattern wraps the regexp2 backtracking engine behind the small
// matching surface the transform pipeline needs: existence tests, full-string
// matches, template and callback replacement, splitting, and tokenizing text
// into matched/unmatched runs. Isolating the dependency here keeps the rest
// of the module free of regexp2 API details.
//
// regexp2 is used instead of the standard library regexp because the
// transform's grammars rely on lookahead, lookbehind, backreferences and
// atomic groups, none of which RE2 supports.
package pattern

import (
	"github.com/dlclark/regexp2"
)

// Options control how a pattern is compiled. They can be OR'd together.
type Options = regexp2.RegexOptions

const (
	None       Options = regexp2.None
	IgnoreCase Options = regexp2.IgnoreCase
	Multiline  Options = regexp2.Multiline  // ^ and $ match at every line
	Singleline Options = regexp2.Singleline // . matches newline
)

// Regexp is a compiled pattern. It is immutable and safe for concurrent use.
type Regexp struct {
	re *regexp2.Regexp
}

// MustCompile compiles the pattern or panics. All of the pipeline's patterns
// are fixed strings compiled at init time, so a panic here is a programming
// error, not an input error.
func MustCompile(expr string, opts Options) *Regexp {
	return &Regexp{re: regexp2.MustCompile(expr, opts)}
}

// Match is a single pattern match with access to its numbered groups.
type Match struct {
	m *regexp2.Match
}

// String returns the full matched text.
func (m *Match) String() string {
	return m.m.String()
}

// Group returns the text captured by group n, or "" if the group did not
// participate in the match.
func (m *Match) Group(n int) string {
	g := m.m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// Present reports whether group n participated in the match. It
// distinguishes an absent optional group from one that matched empty text.
func (m *Match) Present(n int) bool {
	g := m.m.GroupByNumber(n)
	return g != nil && len(g.Captures) > 0
}

// Find reports whether the pattern matches anywhere in text.
func (r *Regexp) Find(text string) bool {
	m, err := r.re.FindStringMatch(text)
	return err == nil && m != nil
}

// Matches reports whether the pattern matches the entire text.
func (r *Regexp) Matches(text string) bool {
	m, err := r.re.FindStringMatch(text)
	if err != nil || m == nil {
		return false
	}
	return m.Index == 0 && m.Length == len([]rune(text))
}

// Replace substitutes every match with the template. The template may refer
// to capture groups as $1, $2, and so on.
func (r *Regexp) Replace(text, template string) string {
	out, err := r.re.Replace(text, template, 0, -1)
	if err != nil {
		return text
	}
	return out
}

// ReplaceFunc substitutes every match with the callback's return value. The
// returned text is inserted literally, with no template expansion.
func (r *Regexp) ReplaceFunc(text string, fn func(*Match) string) string {
	out, err := r.re.ReplaceFunc(text, func(m regexp2.Match) string {
		return fn(&Match{m: &m})
	}, 0, -1)
	if err != nil {
		return text
	}
	return out
}

// Split slices text around every match of the pattern. Adjacent matches
// produce empty segments; text with no matches yields a single segment.
func (r *Regexp) Split(text string) []string {
	runes := []rune(text)
	var parts []string
	pos := 0
	m, err := r.re.FindStringMatch(text)
	for err == nil && m != nil {
		parts = append(parts, string(runes[pos:m.Index]))
		pos = m.Index + m.Length
		m, err = r.re.FindNextMatch(m)
	}
	parts = append(parts, string(runes[pos:]))
	return parts
}

// Tokenize splits text into an alternating sequence of unmatched and matched
// spans, mapping each through the corresponding callback. Unmatched spans of
// zero length are skipped; text with no matches yields a single unmatched
// token covering all of it.
func Tokenize[T any](r *Regexp, text string, unmatched func(string) T, matched func(*Match) T) []T {
	runes := []rune(text)
	var tokens []T
	pos := 0
	m, err := r.re.FindStringMatch(text)
	if err != nil || m == nil {
		return append(tokens, unmatched(text))
	}
	for m != nil {
		if pos < m.Index {
			tokens = append(tokens, unmatched(string(runes[pos:m.Index])))
		}
		tokens = append(tokens, matched(&Match{m: m}))
		pos = m.Index + m.Length
		m, err = r.re.FindNextMatch(m)
		if err != nil {
			break
		}
	}
	if pos < len(runes) {
		tokens = append(tokens, unmatched(string(runes[pos:])))
	}
	return tokens
}
