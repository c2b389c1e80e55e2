package md2html

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/markdrop/go-md2html/internal/pattern"
)

// Block-level tag names recognized by the raw HTML extractor. The liberal
// pass uses a slightly smaller set.
const (
	blockTagsNested  = `p|div|h[1-6]|blockquote|pre|table|dl|ol|ul|script|noscript|form|fieldset|iframe|math|ins|del`
	blockTagsLiberal = `p|div|h[1-6]|blockquote|pre|table|dl|ol|ul|script|noscript|form|fieldset|iframe|math`
)

var (
	// Strictly nested blocks: the outermost tags start at the left margin
	// and the closing tag is found by minimal line-wise scanning.
	blocksNestedPattern = pattern.MustCompile(fmt.Sprintf(
		`(^<(%s)\b(?>.*\n)*?</\2>[ \t]*(?=\n+|\Z))`, blockTagsNested), pattern.Multiline)

	// The liberal variant also accepts content after the closing tag on its
	// line, matching simply from <tag> to the first </tag> at a line tail.
	blocksLiberalPattern = pattern.MustCompile(fmt.Sprintf(
		`(^<(%s)\b(?>.*\n)*?.*</\2>[ \t]*(?=\n+|\Z))`, blockTagsLiberal), pattern.Multiline)

	// Standalone <hr>, after a blank line or at the start of the document.
	blocksHRPattern = pattern.MustCompile(fmt.Sprintf(
		`(?:(?<=\n\n)|\A\n?)([ ]{0,%d}<(hr)\b([^<>])*?/?>[ \t]*(?=\n{2,}|\Z))`, tabWidth-1), pattern.None)

	// Standalone HTML comment blocks, same boundary rules as <hr>.
	blocksCommentPattern = pattern.MustCompile(fmt.Sprintf(
		`(?:(?<=\n\n)|\A\n?)([ ]{0,%d}(?s:<!(--.*?--\s*)+>)[ \t]*(?=\n{2,}|\Z))`, tabWidth-1), pattern.None)
)

// HTML block keys are a stable hash of the block text wrapped in Private
// Use Area delimiters, so a key can never occur in ordinary prose.
const (
	blockKeyStart = "\uE002"
	blockKeyEnd   = "\uE003"
)

// htmlBlockKey derives the opaque placeholder key for a raw HTML block.
func htmlBlockKey(text string) string {
	h := fnv.New64a()
	h.Write([]byte(text))
	return blockKeyStart + strconv.FormatUint(h.Sum64(), 10) + blockKeyEnd
}

// hashHTMLBlocks replaces block-level raw HTML with opaque keys, storing the
// original text for restoration during paragraph formation. Only block-level
// tags are extracted: paragraphs wrapped in span-level tags such as anchors
// still want <p> tags around them.
//
// This runs twice per transform: once on raw input, to protect the author's
// HTML, and once on the block transformer's own output, so freshly generated
// block tags are not re-wrapped in paragraphs.
func (c *transformContext) hashHTMLBlocks(text string) string {
	// The strictly nested match must run before the liberal one, which
	// would otherwise stop at the first closing tag of a nested pair.
	text = blocksNestedPattern.ReplaceFunc(text, c.hashBlock)
	text = blocksLiberalPattern.ReplaceFunc(text, c.hashBlock)
	text = blocksHRPattern.ReplaceFunc(text, c.hashBlock)
	return blocksCommentPattern.ReplaceFunc(text, c.hashBlock)
}

func (c *transformContext) hashBlock(m *pattern.Match) string {
	block := m.Group(1)
	key := htmlBlockKey(block)
	c.htmlBlocks[key] = block
	return "\n\n" + key + "\n\n"
}
