// Package md2html converts Markdown documents to (X)HTML using a staged
// text-rewriting pipeline rather than a parse tree.
//
// # Quick Start
//
// Create an engine and transform:
//
//	eng := md2html.New()
//	html := eng.Transform("# Hello\n\nWorld")
//
// Transform never fails: unrecognized or malformed markup is passed through
// as literal text.
//
// # Transformation Pipeline
//
// A call to Transform runs these stages in order:
//
//  1. Preprocessing (line-ending normalization, tab expansion, blank-line
//     stripping)
//  2. Raw HTML block extraction (block-level HTML is hidden behind opaque
//     keys so later stages leave it alone)
//  3. Link reference collection ([id]: url "title" definitions)
//  4. Block transforms (headers, horizontal rules, lists, code blocks,
//     block quotes, paragraph wrapping)
//  5. Span transforms within each block (code spans, images, links,
//     autolinks, emphasis, line breaks)
//  6. A final unescape pass that restores characters hidden behind
//     placeholder tokens earlier in the pipeline
//
// Block quotes and loose list items re-enter the block stage recursively;
// tight list items re-enter only the span stage.
//
// # Configuration
//
// Use functional options to customize the engine:
//
//	eng := md2html.New(
//	    md2html.WithHTMLOutput(true),       // ">" instead of " />"
//	    md2html.WithStrictBoldItalic(true), // word-boundary emphasis
//	)
//
// # Concurrency
//
// An Engine carries no per-call state: every Transform call builds a fresh
// context for its link tables and HTML block store, so a single Engine is
// safe for concurrent use from multiple goroutines. The character escape
// tables are package-level and immutable after initialization.
package md2html
