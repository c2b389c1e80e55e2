package md2html

import (
	"fmt"

	"github.com/markdrop/go-md2html/internal/pattern"
)

// List markers: unordered bullets, ordered numbers, or either.
const (
	markerUL  = `[*+-]`
	markerOL  = `\d+[.]`
	markerAny = `(?:` + markerUL + `|` + markerOL + `)`
)

// wholeList matches an entire list, first marker through the blank line (or
// end of input) that terminates it. The trailing lookahead rejects a
// termination point that is itself another list marker, so lists separated
// by blank lines merge into one loose list rather than splitting.
const wholeList = `(` +
	`(` +
	`[ ]{0,3}` +
	`(` + markerAny + `)` +
	`[ \t]+` +
	`)` +
	`(?s:.+?)` +
	`(` +
	`\z` +
	`|` +
	`\n{2,}` +
	`(?=\S)` +
	`(?![ \t]*` + markerAny + `[ \t]+)` +
	`)` +
	`)`

var (
	// At the top level a list must sit after a blank line or at the very
	// start of the document. Inside a list item the line anchor is enough;
	// the item was outdented so a sub-list starts at its margin.
	listTopLevelPattern = pattern.MustCompile(`(?:(?<=\n\n)|\A\n?)`+wholeList, pattern.Multiline)
	listNestedPattern   = pattern.MustCompile(`^`+wholeList, pattern.Multiline)

	markerULPattern = pattern.MustCompile(markerUL, pattern.None)

	// One list item: optional preceding blank line, marker, body running to
	// the next sibling marker at the same indent or the end of the list.
	listItemPattern = pattern.MustCompile(
		`(\n)?`+
			`(^[ \t]*)`+
			`(`+markerAny+`)`+
			`[ \t]+`+
			`((?s:.+?)`+
			`(\n{1,2}))`+
			`(?=\n*(\z|\2(`+markerAny+`)[ \t]+))`, pattern.Multiline)

	itemTrailingBlanksPattern = pattern.MustCompile(`\n{2,}\z`, pattern.None)
	itemTrailingLinesPattern  = pattern.MustCompile(`\n+$`, pattern.Multiline)
)

// doLists turns Markdown lists into <ul>/<ol> trees. Which boundary variant
// applies depends on whether we are already inside a list item.
func (c *transformContext) doLists(text string) string {
	p := listTopLevelPattern
	if c.listLevel > 0 {
		p = listNestedPattern
	}

	return p.ReplaceFunc(text, func(m *pattern.Match) string {
		list := m.Group(1)

		listType := "ol"
		if markerULPattern.Matches(m.Group(3)) {
			listType = "ul"
		}

		// Collapse blank-line runs so a loose list stays loose but the item
		// splitter sees a uniform two-newline separator.
		list = twoPlusNewlinesPattern.Replace(list, "\n\n\n")
		list = c.processListItems(list)

		return fmt.Sprintf("<%s>\n%s</%s>\n", listType, list, listType)
	})
}

// processListItems splits a list body into items and transforms each one.
// An item preceded by a blank line, or containing one, is "loose" and gets
// the full block treatment so its content is wrapped in paragraphs; a tight
// item gets only span-level processing.
func (c *transformContext) processListItems(list string) string {
	// The nesting counter switches doLists to the relaxed boundary variant
	// for sub-lists found inside an item.
	c.listLevel++
	defer func() { c.listLevel-- }()

	list = itemTrailingBlanksPattern.Replace(list, "\n")

	return listItemPattern.ReplaceFunc(list, func(m *pattern.Match) string {
		item := m.Group(4)
		looseItem := m.Present(1) || twoPlusNewlinesPattern.Find(item)

		if looseItem {
			item = c.runBlockGamut(outdent(item))
		} else {
			// Still might contain a sub-list; recurse before spans.
			item = c.doLists(outdent(item))
			item = itemTrailingLinesPattern.Replace(item, "")
			item = c.runSpanGamut(item)
		}

		return fmt.Sprintf("<li>%s</li>\n", item)
	})
}
