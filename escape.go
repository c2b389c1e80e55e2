package md2html

import (
	"strconv"
	"strings"
)

// escapeChars are the characters that carry Markdown meaning. During the
// pipeline each may be hidden behind a placeholder token, either because the
// author backslash-escaped it or because a stage needs to protect literal
// content (code, tag attributes) from later rewriting. The backslash comes
// first so escaped backslashes are encoded before the other sequences.
const escapeChars = "\\`*_{}[]()>#+-.!"

// Placeholder tokens are the character's decimal code point wrapped in
// Unicode Private Use Area delimiters. Nothing an author can type produces
// these runes, so tokens cannot collide with document text.
const (
	placeholderStart = "\uE000"
	placeholderEnd   = "\uE001"
)

// escapeTable maps each markup character (and its backslash-escaped form)
// to its placeholder. Built once at init and read-only afterwards, so it is
// shared safely by concurrent Transform calls.
var escapeTable = func() map[string]string {
	t := make(map[string]string, len(escapeChars))
	for _, c := range escapeChars {
		t[string(c)] = placeholderStart + strconv.Itoa(int(c)) + placeholderEnd
	}
	return t
}()

// escape replaces every occurrence of the markup character s with its
// placeholder token.
func escape(text, s string) string {
	rep, ok := escapeTable[s]
	if !ok {
		return text
	}
	return strings.ReplaceAll(text, s, rep)
}

// escapeBoldItalic protects * and _ from the emphasis pass.
func escapeBoldItalic(s string) string {
	s = escape(s, "*")
	return escape(s, "_")
}

// encodeCode escapes characters inside Markdown code runs. In code these
// characters are literals and must lose their Markdown meaning; HTML
// entities are not entities within a code span either.
func encodeCode(code string) string {
	code = strings.ReplaceAll(code, "&", "&amp;")
	code = strings.ReplaceAll(code, "<", "&lt;")
	code = strings.ReplaceAll(code, ">", "&gt;")

	code = escape(code, "*")
	code = escape(code, "_")
	code = escape(code, "{")
	code = escape(code, "}")
	code = escape(code, "[")
	code = escape(code, "]")
	return escape(code, "\\")
}

// encodeBackslashEscapes replaces every backslash-escaped markup character
// with the same placeholder as its bare form, making author escapes and the
// engine's own protective escapes indistinguishable until the final
// unescape. The backslash sequence itself is handled first via the ordering
// of escapeChars.
func encodeBackslashEscapes(value string) string {
	for _, c := range escapeChars {
		ch := string(c)
		value = strings.ReplaceAll(value, "\\"+ch, escapeTable[ch])
	}
	return value
}

// unescapeSpecialChars swaps back in all the characters hidden behind
// placeholders. This runs exactly once, over the whole output, as the final
// pipeline stage; no earlier stage may unescape on its own.
func unescapeSpecialChars(text string) string {
	for _, c := range escapeChars {
		ch := string(c)
		text = strings.ReplaceAll(text, escapeTable[ch], ch)
	}
	return text
}
