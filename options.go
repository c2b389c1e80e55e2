package md2html

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithHTMLOutput selects plain HTML for empty elements ("<hr>") instead of
// the default XHTML form ("<hr />").
func WithHTMLOutput(enabled bool) Option {
	return func(e *Engine) { e.htmlOutput = enabled }
}

// WithLinkEmails controls whether <address@example.com> is turned into an
// entity-obfuscated mailto link. Enabled by default.
func WithLinkEmails(enabled bool) Option {
	return func(e *Engine) { e.linkEmails = enabled }
}

// WithStrictBoldItalic requires non-word characters around emphasis
// delimiters, so mid-word markers like in_this_word are left literal.
// Disabled by default.
func WithStrictBoldItalic(enabled bool) Option {
	return func(e *Engine) { e.strictBoldItalic = enabled }
}

// WithAutoNewlines turns every bare newline into a line break element
// instead of requiring two trailing spaces. This is a deliberate deviation
// from standard Markdown. Disabled by default.
func WithAutoNewlines(enabled bool) Option {
	return func(e *Engine) { e.autoNewlines = enabled }
}

// WithAutoHyperlink links bare http(s)/ftp URLs that are not wrapped in
// angle brackets. Disabled by default.
func WithAutoHyperlink(enabled bool) Option {
	return func(e *Engine) { e.autoHyperlink = enabled }
}

// WithEncodeProblemURLChars percent-encodes characters such as ' ( ) [ ] * _
// inside resolved link targets so they cannot be reinterpreted as markup.
// Disabled by default.
func WithEncodeProblemURLChars(enabled bool) Option {
	return func(e *Engine) { e.encodeProblemURLs = enabled }
}
