package md2html

import (
	"fmt"
	"strings"

	"github.com/markdrop/go-md2html/internal/pattern"
)

// runSpanGamut applies all the span-level transformations. Code spans come
// first so their content is protected from everything after; images before
// anchors because ![foo][f] would otherwise parse as an anchor; autolinks
// after anchors because inline links may use <url> delimiters.
func (c *transformContext) runSpanGamut(text string) string {
	text = c.doCodeSpans(text)

	text = escapeSpecialCharsWithinTagAttributes(text)
	text = encodeBackslashEscapes(text)

	text = c.doImages(text)
	text = c.doAnchors(text)
	text = c.doAutoLinks(text)

	text = EncodeAmpsAndAngles(text)

	text = c.doItalicsAndBold(text)

	return c.engine.lineBreak.Replace(text, c.engine.lineBreakElement)
}

// Code spans: one or more backticks open, the same number closes. Spaces
// just inside the delimiters allow literal backticks at the edges.
var (
	codeSpanPattern = pattern.MustCompile(
		"(?<!\\\\)"+ // character before the opening ` can't be a backslash
			"(`+)"+ // opening run of `
			"(.+?)"+ // the code
			"(?<!`)"+
			"\\1"+
			"(?!`)", pattern.Singleline)

	leadingWhitespacePattern  = pattern.MustCompile(`^[ \t]*`, pattern.None)
	trailingWhitespacePattern = pattern.MustCompile(`[ \t]*$`, pattern.None)
)

func (c *transformContext) doCodeSpans(text string) string {
	return codeSpanPattern.ReplaceFunc(text, func(m *pattern.Match) string {
		code := m.Group(2)
		code = leadingWhitespacePattern.Replace(code, "")
		code = trailingWhitespacePattern.Replace(code, "")
		return fmt.Sprintf("<code>%s</code>", encodeCode(code))
	})
}

var (
	// Inline HTML tokens: comments, processing instructions and tags, with
	// angle brackets nested inside attributes up to the usual fixed depth.
	// Derived from the _tokenize() subroutine in Brad Choate's MTRegex
	// plugin, http://www.bradchoate.com/past/mtregex.php
	htmlTokensPattern = pattern.MustCompile(
		`(?s:<!(?:--.*?--\s*)+>)|(?s:<\?.*?\?>)|`+
			strings.Repeat(`(?:<[a-z\/!$](?:[^<>]|`, nestedBracketDepth)+
			strings.Repeat(`)*>)`, nestedBracketDepth),
		pattern.Multiline|pattern.IgnoreCase)

	codeTagPattern = pattern.MustCompile(`(?<=.)</?code>(?=.)`, pattern.None)
)

// escapeSpecialCharsWithinTagAttributes hides \ ` * _ inside HTML tags, so
// attribute values cannot be mistaken for code, italics or strong by the
// passes that follow. Text between tags passes through untouched.
func escapeSpecialCharsWithinTagAttributes(text string) string {
	tokens := pattern.Tokenize(htmlTokensPattern, text,
		func(s string) string { return s },
		func(m *pattern.Match) string {
			value := m.String()
			value = escape(value, "\\")
			value = codeTagPattern.Replace(value, escapeTable["`"])
			return escapeBoldItalic(value)
		})
	return strings.Join(tokens, "")
}

var (
	// [link text][id], with one optional space or newline between the pair
	// of bracket groups.
	anchorRefPattern = pattern.MustCompile(
		`(`+
			`\[`+
			`(`+nestedBrackets+`)`+ // link text
			`\]`+
			`[ ]?`+
			`(?:\n[ ]*)?`+
			`\[`+
			`(.*?)`+ // id
			`\]`+
			`)`, pattern.Singleline)

	// [link text](url "optional title")
	anchorInlinePattern = pattern.MustCompile(
		`(`+
			`\[`+
			`(`+nestedBrackets+`)`+ // link text
			`\]`+
			`\(`+
			`[ \t]*`+
			`(`+nestedParens+`)`+ // href
			`[ \t]*`+
			`(`+
			`(['\x22])`+ // quote char
			`(.*?)`+ // title
			`\5`+
			`[ \t]*`+
			`)?`+
			`\)`+
			`)`, pattern.Singleline)

	// [link text] with no trailing id or url; resolved against the
	// reference table by its own text.
	anchorRefShortcutPattern = pattern.MustCompile(
		`(`+
			`\[`+
			`([^\[\]]+)`+ // link text, no nesting
			`\]`+
			`)`, pattern.Singleline)

	embeddedNewlinesPattern = pattern.MustCompile(`[ ]*\n[ ]*`, pattern.None)
	enclosingAnglesPattern  = pattern.MustCompile(`^<(.*)>$`, pattern.None)
)

// doAnchors turns [link text](url "title") and [link text][id] into anchor
// tags. Reference style goes first, then inline, then bare [shortcuts] --
// shortcuts must come last or they would eat the text part of the other two
// forms.
func (c *transformContext) doAnchors(text string) string {
	text = anchorRefPattern.ReplaceFunc(text, c.anchorRef)
	text = anchorInlinePattern.ReplaceFunc(text, c.anchorInline)
	return anchorRefShortcutPattern.ReplaceFunc(text, c.anchorRefShortcut)
}

func (c *transformContext) anchorRef(m *pattern.Match) string {
	linkText := m.Group(2)
	linkID := strings.ToLower(m.Group(3))

	// [this][] refers to its own text.
	if linkID == "" {
		linkID = strings.ToLower(linkText)
	}

	url, ok := c.urls[linkID]
	if !ok {
		// No such id; leave the brackets intact.
		return m.Group(1)
	}
	url = c.engine.encodeProblemURLChars(url)

	var sb strings.Builder
	sb.WriteString(`<a href="`)
	sb.WriteString(url)
	sb.WriteString(`"`)
	if title, ok := c.titles[linkID]; ok {
		sb.WriteString(` title="`)
		sb.WriteString(escapeBoldItalic(title))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(linkText)
	sb.WriteString("</a>")
	return sb.String()
}

func (c *transformContext) anchorInline(m *pattern.Match) string {
	linkText := m.Group(2)
	url := m.Group(3)
	title := m.Group(6)

	url = escapeBoldItalic(url)
	if strings.HasPrefix(url, "<") && strings.HasSuffix(url, ">") {
		url = url[1 : len(url)-1]
	}
	url = c.engine.encodeProblemURLChars(url)

	var sb strings.Builder
	sb.WriteString(`<a href="`)
	sb.WriteString(url)
	sb.WriteString(`"`)
	if title != "" {
		title = strings.ReplaceAll(title, `"`, "&quot;")
		sb.WriteString(` title="`)
		sb.WriteString(escapeBoldItalic(title))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(linkText)
	sb.WriteString("</a>")
	return sb.String()
}

func (c *transformContext) anchorRefShortcut(m *pattern.Match) string {
	linkText := m.Group(2)
	linkID := strings.ToLower(embeddedNewlinesPattern.Replace(linkText, " "))

	url, ok := c.urls[linkID]
	if !ok {
		return m.Group(1)
	}
	url = escapeBoldItalic(url)
	url = c.engine.encodeProblemURLChars(url)

	var sb strings.Builder
	sb.WriteString(`<a href="`)
	sb.WriteString(url)
	sb.WriteString(`"`)
	if title, ok := c.titles[linkID]; ok {
		sb.WriteString(` title="`)
		sb.WriteString(escapeBoldItalic(title))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(linkText)
	sb.WriteString("</a>")
	return sb.String()
}

var (
	// ![alt text][id]
	imagesRefPattern = pattern.MustCompile(
		`(`+
			`!\[`+
			`(.*?)`+ // alt text
			`\]`+
			`[ ]?`+
			`(?:\n[ ]*)?`+
			`\[`+
			`(.*?)`+ // id
			`\]`+
			`)`, pattern.Singleline)

	// ![alt text](url "optional title")
	imagesInlinePattern = pattern.MustCompile(
		`(`+
			`!\[`+
			`(.*?)`+ // alt text
			`\]`+
			`\s?`+
			`\(`+
			`[ \t]*`+
			`(`+nestedParens+`)`+ // src
			`[ \t]*`+
			`(`+
			`(['\x22])`+ // quote char
			`(.*?)`+ // title
			`\5`+
			`[ \t]*`+
			`)?`+
			`\)`+
			`)`, pattern.Singleline)
)

// doImages turns image shortcuts into <img> tags. Runs before doAnchors.
func (c *transformContext) doImages(text string) string {
	text = imagesRefPattern.ReplaceFunc(text, c.imageRef)
	return imagesInlinePattern.ReplaceFunc(text, c.imageInline)
}

func (c *transformContext) imageRef(m *pattern.Match) string {
	altText := m.Group(2)
	linkID := strings.ToLower(m.Group(3))

	if linkID == "" {
		linkID = strings.ToLower(altText)
	}
	altText = strings.ReplaceAll(altText, `"`, "&quot;")

	url, ok := c.urls[linkID]
	if !ok {
		return m.Group(1)
	}
	url = c.engine.encodeProblemURLChars(url)

	var sb strings.Builder
	sb.WriteString(`<img src="`)
	sb.WriteString(url)
	sb.WriteString(`" alt="`)
	sb.WriteString(altText)
	sb.WriteString(`"`)
	if title, ok := c.titles[linkID]; ok {
		sb.WriteString(` title="`)
		sb.WriteString(escapeBoldItalic(title))
		sb.WriteString(`"`)
	}
	sb.WriteString(c.engine.emptyElementSuffix)
	return sb.String()
}

func (c *transformContext) imageInline(m *pattern.Match) string {
	alt := m.Group(2)
	url := m.Group(3)
	title := m.Group(6)

	alt = strings.ReplaceAll(alt, `"`, "&quot;")
	title = strings.ReplaceAll(title, `"`, "&quot;")
	url = c.engine.encodeProblemURLChars(url)
	url = enclosingAnglesPattern.Replace(url, "$1")

	var sb strings.Builder
	sb.WriteString(`<img src="`)
	sb.WriteString(url)
	sb.WriteString(`" alt="`)
	sb.WriteString(alt)
	sb.WriteString(`"`)
	if title != "" {
		sb.WriteString(` title="`)
		sb.WriteString(escapeBoldItalic(title))
		sb.WriteString(`"`)
	}
	sb.WriteString(c.engine.emptyElementSuffix)
	return sb.String()
}

func (c *transformContext) doItalicsAndBold(text string) string {
	// <strong> first, so ** is not eaten as two <em> markers.
	text = c.engine.strong.Replace(text, c.engine.strongReplace)
	return c.engine.em.Replace(text, c.engine.emReplace)
}

// Colons in a URL body, except the protocol separator and port-like
// positions (a colon followed by two or more digits).
var linkColonPattern = pattern.MustCompile(`:(?!\d{2,})`, pattern.None)

// encodeProblemURLChars percent-encodes characters that would otherwise
// collide with Markdown markup later in the pipeline. Off unless the engine
// was configured with WithEncodeProblemURLChars.
func (e *Engine) encodeProblemURLChars(url string) string {
	if !e.encodeProblemURLs {
		return url
	}
	url = strings.ReplaceAll(url, "'", "%27")
	url = strings.ReplaceAll(url, "(", "%28")
	url = strings.ReplaceAll(url, ")", "%29")
	url = strings.ReplaceAll(url, "[", "%5B")
	url = strings.ReplaceAll(url, "]", "%5D")
	url = strings.ReplaceAll(url, "*", "%2A")
	url = strings.ReplaceAll(url, "_", "%5F")
	if len(url) > 7 && strings.Contains(url[7:], ":") {
		// Keep the protocol separator; encode colons in the body unless
		// they look like a port number.
		url = url[:7] + linkColonPattern.Replace(url[7:], "%3A")
	}
	return url
}
