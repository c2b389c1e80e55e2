package md2html

import "strings"

// Link and image grammars need to match balanced [brackets] and (parens) in
// link text and URLs. True recursion is out of reach for a regex, so the
// patterns unroll it to a fixed depth with atomic groups: up to
// nestedBracketDepth levels nest correctly, and anything deeper fails to
// match and is left as literal text.
var (
	nestedBrackets = strings.Repeat(`(?>[^\[\]]+|\[`, nestedBracketDepth) +
		strings.Repeat(`\])*`, nestedBracketDepth)

	nestedParens = strings.Repeat(`(?>[^()\s]+|\(`, nestedBracketDepth) +
		strings.Repeat(`\))*`, nestedBracketDepth)
)
