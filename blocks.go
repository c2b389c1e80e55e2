package md2html

import (
	"fmt"
	"strings"

	"github.com/markdrop/go-md2html/internal/pattern"
)

var (
	// Setext headers: a line underlined with = (h1) or - (h2).
	setextH1Pattern = pattern.MustCompile(`^(.+?)[ \t]*\n=+[ \t]*\n+`, pattern.Multiline)
	setextH2Pattern = pattern.MustCompile(`^(.+?)[ \t]*\n-+[ \t]*\n+`, pattern.Multiline)

	// Atx headers: 1-6 leading #, optional closing run of # not counted.
	atxPattern = pattern.MustCompile(`^(#{1,6})[ \t]*(.+?)[ \t]*#*\n+`, pattern.Multiline)

	// Horizontal rules: three or more *, - or _ with optional interior
	// spaces, up to two leading spaces.
	hrStarsPattern       = pattern.MustCompile(`^[ ]{0,2}([ ]?\*[ ]?){3,}[ \t]*$`, pattern.Multiline)
	hrDashesPattern      = pattern.MustCompile(`^[ ]{0,2}([ ]?-[ ]?){3,}[ \t]*$`, pattern.Multiline)
	hrUnderscoresPattern = pattern.MustCompile(`^[ ]{0,2}([ ]?_[ ]?){3,}[ \t]*$`, pattern.Multiline)

	// A code block: consecutive lines each indented at least one tab width,
	// ending at a non-indented line or end of document.
	codeBlockPattern = pattern.MustCompile(fmt.Sprintf(
		`(?:\n\n|\A)((?:(?:[ ]{%d}|\t).*\n+)+)((?=^[ ]{0,%d}\S)|\Z)`, tabWidth, tabWidth), pattern.Multiline)

	// A block quote: consecutive >-prefixed lines, blank lines allowed
	// inside the run.
	blockQuotePattern = pattern.MustCompile(`((^[ \t]*>[ \t]?.+\n(.+\n)*\n*)+)`, pattern.Multiline)

	leadingQuotePattern = pattern.MustCompile(`^[ \t]*>[ \t]?`, pattern.Multiline)
	spacePrePattern     = pattern.MustCompile(`(\s*<pre>.+?</pre>)`, pattern.Singleline)
	startOfLinePattern  = pattern.MustCompile(`^`, pattern.Multiline)
	preSpacePattern     = pattern.MustCompile(`^  `, pattern.Multiline)

	leadingNewlinesPattern  = pattern.MustCompile(`^\n+`, pattern.None)
	trailingNewlinesPattern = pattern.MustCompile(`\n+\z`, pattern.None)
	twoPlusNewlinesPattern  = pattern.MustCompile(`\n{2,}`, pattern.None)
	leadingTabsPattern      = pattern.MustCompile(`^([ \t]*)`, pattern.None)
)

// runBlockGamut applies all the transformations that form block-level tags:
// headers, rules, lists, code blocks, block quotes and paragraphs.
func (c *transformContext) runBlockGamut(text string) string {
	text = c.doHeaders(text)

	text = hrStarsPattern.Replace(text, c.engine.hrElement)
	text = hrDashesPattern.Replace(text, c.engine.hrElement)
	text = hrUnderscoresPattern.Replace(text, c.engine.hrElement)

	text = c.doLists(text)
	text = c.doCodeBlocks(text)
	text = c.doBlockQuotes(text)

	// Raw HTML was already extracted from the original source before this
	// gamut ran; extract again so the block markup generated above is not
	// wrapped in <p> tags.
	text = c.hashHTMLBlocks(text)

	return c.formParagraphs(text)
}

func (c *transformContext) doHeaders(text string) string {
	text = setextH1Pattern.ReplaceFunc(text, func(m *pattern.Match) string {
		return fmt.Sprintf("<h1>%s</h1>\n\n", c.runSpanGamut(m.Group(1)))
	})
	text = setextH2Pattern.ReplaceFunc(text, func(m *pattern.Match) string {
		return fmt.Sprintf("<h2>%s</h2>\n\n", c.runSpanGamut(m.Group(1)))
	})
	return atxPattern.ReplaceFunc(text, func(m *pattern.Match) string {
		level := len(m.Group(1))
		return fmt.Sprintf("<h%d>%s</h%d>\n\n", level, c.runSpanGamut(m.Group(2)), level)
	})
}

func (c *transformContext) doCodeBlocks(text string) string {
	return codeBlockPattern.ReplaceFunc(text, func(m *pattern.Match) string {
		block := encodeCode(outdent(m.Group(1)))
		block = detab(block)
		block = leadingNewlinesPattern.Replace(block, "")
		block = trailingNewlinesPattern.Replace(block, "")
		return fmt.Sprintf("\n\n<pre><code>%s\n</code></pre>\n\n", block)
	})
}

func (c *transformContext) doBlockQuotes(text string) string {
	return blockQuotePattern.ReplaceFunc(text, func(m *pattern.Match) string {
		bq := m.Group(1)

		// Trim one level of quoting, then any whitespace-only lines.
		bq = leadingQuotePattern.Replace(bq, "")
		bq = blankLinePattern.Replace(bq, "")

		bq = c.runBlockGamut(bq)
		bq = startOfLinePattern.Replace(bq, "  ")

		// The two-space padding corrupts <pre> content, so strip it back
		// out inside preformatted blocks.
		bq = spacePrePattern.ReplaceFunc(bq, func(pre *pattern.Match) string {
			return preSpacePattern.Replace(pre.Group(1), "")
		})

		return fmt.Sprintf("<blockquote>\n%s\n</blockquote>\n\n", bq)
	})
}

// formParagraphs wraps the remaining chunks in <p> tags and restores
// extracted raw HTML blocks verbatim.
func (c *transformContext) formParagraphs(text string) string {
	text = leadingNewlinesPattern.Replace(text, "")
	text = trailingNewlinesPattern.Replace(text, "")

	paragraphs := twoPlusNewlinesPattern.Split(text)

	for i, p := range paragraphs {
		if _, ok := c.htmlBlocks[p]; ok {
			paragraphs[i] = c.htmlBlocks[p]
			continue
		}
		p = c.runSpanGamut(p)
		p = leadingTabsPattern.Replace(p, "<p>")
		paragraphs[i] = p + "</p>"
	}

	return strings.Join(paragraphs, "\n\n")
}
