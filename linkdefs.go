package md2html

import (
	"fmt"
	"strings"

	"github.com/markdrop/go-md2html/internal/pattern"
)

// A link reference definition: [id]: url "optional title". The url may be
// wrapped in angle brackets and the title quoted with ", ' or parens; both
// parts may sit on a continuation line.
var linkDefPattern = pattern.MustCompile(fmt.Sprintf(
	`^[ ]{0,%d}\[(.+)\]:`+ // id = $1
		`[ \t]*\n?[ \t]*`+ // maybe *one* newline
		`<?(\S+?)>?`+ // url = $2
		`[ \t]*\n?[ \t]*`+
		`(?:(?<=\s)[\x22(](.+?)[\x22)][ \t]*)?`+ // title = $3, optional
		`(?:\n+|\Z)`, tabWidth-1), pattern.Multiline)

// stripLinkDefinitions removes link reference definitions from the text and
// records them in the context's url and title tables. Identifiers are
// case-folded; a later definition for the same id overwrites an earlier
// one. Malformed definitions simply do not match and stay in the text.
func (c *transformContext) stripLinkDefinitions(text string) string {
	return linkDefPattern.ReplaceFunc(text, func(m *pattern.Match) string {
		id := strings.ToLower(m.Group(1))
		c.urls[id] = EncodeAmpsAndAngles(m.Group(2))
		if title := m.Group(3); title != "" {
			c.titles[id] = strings.ReplaceAll(title, `"`, "&quot;")
		}
		return ""
	})
}
