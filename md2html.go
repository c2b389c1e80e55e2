package md2html

import (
	"strings"

	"github.com/markdrop/go-md2html/internal/pattern"
)

// Tabs are expanded to spaces during preprocessing; this is how wide those
// tabs become.
const tabWidth = 4

// Maximum nested bracket/paren depth recognized by link and image grammars.
// Beyond this depth matching fails closed and the text stays literal.
const nestedBracketDepth = 6

// Engine converts Markdown text to (X)HTML. Engines are immutable after New
// and safe for concurrent Transform calls.
type Engine struct {
	htmlOutput        bool
	linkEmails        bool
	strictBoldItalic  bool
	autoNewlines      bool
	autoHyperlink     bool
	encodeProblemURLs bool

	emptyElementSuffix string
	hrElement          string
	lineBreakElement   string
	lineBreak          *pattern.Regexp
	strong             *pattern.Regexp
	strongReplace      string
	em                 *pattern.Regexp
	emReplace          string
}

// New creates an Engine. Options that affect pattern grammars (emphasis
// strictness, newline handling) are compiled here, once.
func New(opts ...Option) *Engine {
	e := &Engine{linkEmails: true}
	for _, opt := range opts {
		opt(e)
	}

	e.emptyElementSuffix = " />"
	if e.htmlOutput {
		e.emptyElementSuffix = ">"
	}
	e.hrElement = "<hr" + e.emptyElementSuffix + "\n"
	e.lineBreakElement = "<br" + e.emptyElementSuffix

	if e.autoNewlines {
		e.lineBreak = pattern.MustCompile(`\n`, pattern.None)
	} else {
		e.lineBreak = pattern.MustCompile(` {2,}\n`, pattern.None)
	}

	if e.strictBoldItalic {
		e.strong = pattern.MustCompile(`([\W_]|^)(\*\*|__)(?=\S)([^\r]*?\S[\*_]*)\2([\W_]|$)`, pattern.Singleline)
		e.strongReplace = "$1<strong>$3</strong>$4"
		e.em = pattern.MustCompile(`([\W_]|^)(\*|_)(?=\S)([^\r\*_]*?\S)\2([\W_]|$)`, pattern.Singleline)
		e.emReplace = "$1<em>$3</em>$4"
	} else {
		e.strong = pattern.MustCompile(`(\*\*|__)(?=\S)(.+?[*_]*)(?<=\S)\1`, pattern.Singleline)
		e.strongReplace = "<strong>$2</strong>"
		e.em = pattern.MustCompile(`(\*|_)(?=\S)(.+?)(?<=\S)\1`, pattern.Singleline)
		e.emReplace = "<em>$2</em>"
	}

	return e
}

// transformContext holds the per-call state of one Transform invocation:
// link reference tables, extracted raw HTML blocks, and the list nesting
// counter. A fresh context per call is what makes Engine safe for
// concurrent use.
type transformContext struct {
	engine     *Engine
	urls       map[string]string
	titles     map[string]string
	htmlBlocks map[string]string
	listLevel  int
}

func newTransformContext(e *Engine) *transformContext {
	return &transformContext{
		engine:     e,
		urls:       make(map[string]string),
		titles:     make(map[string]string),
		htmlBlocks: make(map[string]string),
	}
}

// Transform converts Markdown text to (X)HTML. The order of the stages is
// essential: links and images must be resolved before emphasis so that any
// * or _ inside generated tags is already protected, and raw HTML blocks
// must be extracted before paragraph formation so they are not wrapped.
func (e *Engine) Transform(text string) string {
	ctx := newTransformContext(e)

	// Standardize line endings.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Make sure text ends with a couple of newlines; boundary patterns
	// downstream count on it.
	text += "\n\n"

	text = detab(text)

	// Strip any lines consisting only of spaces and tabs, so consecutive
	// blank lines can be matched with \n+ later.
	text = blankLinePattern.Replace(text, "")

	text = ctx.hashHTMLBlocks(text)
	text = ctx.stripLinkDefinitions(text)
	text = ctx.runBlockGamut(text)
	text = unescapeSpecialChars(text)

	return text + "\n"
}
