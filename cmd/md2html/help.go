package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Engine:")
	fmt.Fprintln(w, "      --html                Emit plain HTML empty elements (\"<hr>\")")
	fmt.Fprintln(w, "      --no-emails           Leave email addresses unlinked")
	fmt.Fprintln(w, "      --strict-emphasis     Require word boundaries around * and _")
	fmt.Fprintln(w, "      --auto-newlines       Treat every newline as a line break")
	fmt.Fprintln(w, "      --auto-hyperlink      Linkify bare http(s)/ftp URLs")
	fmt.Fprintln(w, "      --encode-url-chars    Percent-encode risky characters in link targets")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file progress")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version")
}
