package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	md2html "github.com/markdrop/go-md2html"
	"github.com/markdrop/go-md2html/internal/config"
	"github.com/markdrop/go-md2html/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input: pass a file or directory, or set input.defaultDir in the config")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// run loads configuration, merges flags over it, and converts every
// discovered input file.
func run(flags *convertFlags, inputs []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(cfg, flags)

	if len(inputs) == 0 {
		if cfg.Input.DefaultDir == "" {
			return ErrNoInput
		}
		inputs = []string{cfg.Input.DefaultDir}
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	var files []fileToConvert
	for _, input := range inputs {
		discovered, err := discoverFiles(input, outputDir, cfg.Output.Extension)
		if err != nil {
			return err
		}
		files = append(files, discovered...)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found", ErrNoInput)
	}

	eng := md2html.New(engineOptions(cfg)...)

	for _, file := range files {
		if err := convertFile(eng, file); err != nil {
			return err
		}
		if flags.common.verbose {
			fmt.Fprintf(stderr, "%s -> %s\n", file.inputPath, file.outputPath)
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Converted %d file(s)\n", len(files))
	}
	return nil
}

func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(nameOrPath)
}

// mergeFlags applies explicit command line switches over the loaded config.
func mergeFlags(cfg *config.Config, flags *convertFlags) {
	if flags.engine.html {
		cfg.Engine.HTMLOutput = true
	}
	if flags.engine.noEmails {
		cfg.Engine.LinkEmails = false
	}
	if flags.engine.strict {
		cfg.Engine.StrictBoldItalic = true
	}
	if flags.engine.autoNewlines {
		cfg.Engine.AutoNewlines = true
	}
	if flags.engine.autoHyperlink {
		cfg.Engine.AutoHyperlink = true
	}
	if flags.engine.encodeURLChars {
		cfg.Engine.EncodeProblemURLChars = true
	}
}

// engineOptions translates the merged config into engine options.
func engineOptions(cfg *config.Config) []md2html.Option {
	return []md2html.Option{
		md2html.WithHTMLOutput(cfg.Engine.HTMLOutput),
		md2html.WithLinkEmails(cfg.Engine.LinkEmails),
		md2html.WithStrictBoldItalic(cfg.Engine.StrictBoldItalic),
		md2html.WithAutoNewlines(cfg.Engine.AutoNewlines),
		md2html.WithAutoHyperlink(cfg.Engine.AutoHyperlink),
		md2html.WithEncodeProblemURLChars(cfg.Engine.EncodeProblemURLChars),
	}
}

func convertFile(eng *md2html.Engine, file fileToConvert) error {
	content, err := os.ReadFile(file.inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	html := eng.Transform(string(content))

	if dir := filepath.Dir(file.outputPath); dir != "." {
		if err := fileutil.EnsureDir(dir); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
	}
	if err := os.WriteFile(file.outputPath, []byte(html), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}
