package md2html

import (
	"fmt"
	"strings"

	"github.com/markdrop/go-md2html/internal/pattern"
)

var (
	// A run of tabs and the line content before it. The line anchor keeps
	// performance sane and lets the callback compute columns from the start
	// of the line.
	detabPattern = pattern.MustCompile(`^(.*?)(\t+)`, pattern.Multiline)

	// Lines of only spaces and tabs.
	blankLinePattern = pattern.MustCompile(`^[ \t]+$`, pattern.Multiline)

	// One level of leading indentation.
	outdentPattern = pattern.MustCompile(fmt.Sprintf(`^(\t|[ ]{1,%d})`, tabWidth), pattern.Multiline)
)

// detab expands tabs to spaces. Expansion is column-aware: each tab advances
// to the next multiple of tabWidth columns counted from the start of the
// line, so interior tabs may become fewer than tabWidth spaces.
func detab(text string) string {
	return detabPattern.ReplaceFunc(text, func(m *pattern.Match) string {
		leading := m.Group(1)
		tabCount := len(m.Group(2))
		spaceCount := tabWidth - len([]rune(leading))%tabWidth + (tabCount-1)*tabWidth
		return leading + strings.Repeat(" ", spaceCount)
	})
}

// outdent removes one level of line-leading tabs or spaces.
func outdent(block string) string {
	return outdentPattern.Replace(block, "")
}
