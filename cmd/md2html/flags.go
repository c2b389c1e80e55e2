package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every invocation.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// engineFlags mirrors the transformation engine's options. Bool flags only
// turn behavior on relative to the config; --no-emails is the one negative
// switch because email linking defaults to on.
type engineFlags struct {
	html           bool
	noEmails       bool
	strict         bool
	autoNewlines   bool
	autoHyperlink  bool
	encodeURLChars bool
}

// convertFlags holds all parsed flags.
type convertFlags struct {
	common  commonFlags
	engine  engineFlags
	output  string
	help    bool
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
}

// addEngineFlags adds engine option flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.BoolVar(&f.html, "html", false, "emit plain HTML empty elements (\"<hr>\")")
	fs.BoolVar(&f.noEmails, "no-emails", false, "leave email addresses unlinked")
	fs.BoolVar(&f.strict, "strict-emphasis", false, "require word boundaries around * and _")
	fs.BoolVar(&f.autoNewlines, "auto-newlines", false, "treat every newline as a line break")
	fs.BoolVar(&f.autoHyperlink, "auto-hyperlink", false, "linkify bare http(s)/ftp URLs")
	fs.BoolVar(&f.encodeURLChars, "encode-url-chars", false, "percent-encode risky characters in link targets")
}

// parseFlags parses command line flags and returns the remaining positional
// arguments (input files or directories).
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVarP(&f.help, "help", "h", false, "show usage")
	fs.BoolVar(&f.version, "version", false, "show version")

	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)

	fs.Usage = func() {} // run prints usage itself on error

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
