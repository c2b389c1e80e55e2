package md2html

import (
	"fmt"
	"math/rand"

	"github.com/markdrop/go-md2html/internal/pattern"
)

var (
	// A bare URL surrounded by whitespace, candidate for auto-hyperlinking.
	autoLinkBarePattern = pattern.MustCompile(
		`(^|\s)(https?|ftp)(://[-A-Z0-9+&@#/%?=~_|\[\]\(\)!:,\.;]*[-A-Z0-9+&@#/%=~_|\[\]])($|\W)`, pattern.IgnoreCase)

	linkEscapePattern = pattern.MustCompile(`<(https?|ftp)://[^>]+>`, pattern.None)
	hyperlinkPattern  = pattern.MustCompile(`<((https?|ftp):[^'\x22>\s]+)>`, pattern.None)

	linkEmailPattern = pattern.MustCompile(
		`<`+
			`(?:mailto:)?`+
			`(`+
			`[-.\w]+`+
			`@`+
			`[-a-z0-9]+(\.[-a-z0-9]+)*\.[a-z]+`+
			`)`+
			`>`, pattern.IgnoreCase)

	emailCharPattern   = pattern.MustCompile(`([^:])`, pattern.None)
	emailMailtoPattern = pattern.MustCompile(`\x22>.+?:`, pattern.None)
)

// doAutoLinks turns <http://example.com/> style URLs and <addr@example.com>
// style email addresses into anchor tags.
func (c *transformContext) doAutoLinks(text string) string {
	if c.engine.autoHyperlink {
		// Wrap bare URLs in <> so the hyperlink pass below picks them up.
		// Authored links were already converted to <a> tags by this point.
		text = autoLinkBarePattern.Replace(text, "$1<$2$3>$4")
	}

	text = linkEscapePattern.ReplaceFunc(text, func(m *pattern.Match) string {
		return c.engine.encodeProblemURLChars(m.String())
	})

	text = hyperlinkPattern.ReplaceFunc(text, func(m *pattern.Match) string {
		url := m.Group(1)
		return fmt.Sprintf(`<a href="%s">%s</a>`, url, url)
	})

	if c.engine.linkEmails {
		text = linkEmailPattern.ReplaceFunc(text, linkEmail)
	}

	return text
}

// linkEmail renders an email address as a mailto link with most characters
// encoded as numeric entities, in the hope of foiling address-harvesting
// bots. Based on a filter by Matthew Wickline posted to the BBEdit-Talk
// mailing list.
func linkEmail(m *pattern.Match) string {
	email := "mailto:" + unescapeSpecialChars(m.Group(1))

	// Encode everything but the colon; it marks the mailto: prefix for the
	// strip below.
	email = emailCharPattern.ReplaceFunc(email, encodeEmailChar)

	email = fmt.Sprintf(`<a href="%s">%s</a>`, email, email)

	// Strip the mailto: from the visible part.
	return emailMailtoPattern.Replace(email, `">`)
}

// encodeEmailChar leaves roughly 10% of characters raw; the rest become
// entities. '@' is always encoded.
func encodeEmailChar(m *pattern.Match) string {
	c := []rune(m.Group(1))[0]
	if rand.Intn(101) > 90 && c != '@' {
		return string(c)
	}
	return fmt.Sprintf("&#x%d;", c)
}

var (
	ampsPattern   = pattern.MustCompile(`&(?!#?[xX]?([0-9a-fA-F]+|\w+);)`, pattern.None)
	anglesPattern = pattern.MustCompile(`<(?![A-Za-z/?\$!])`, pattern.None)
)

// EncodeAmpsAndAngles encodes ampersands and left angle brackets that are
// not already part of an entity or a tag. Ampersand handling is based on
// Nat Irons's Amputator MT plugin.
func EncodeAmpsAndAngles(text string) string {
	text = ampsPattern.Replace(text, "&amp;")
	return anglesPattern.Replace(text, "&lt;")
}
