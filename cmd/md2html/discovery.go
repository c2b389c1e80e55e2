package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/markdrop/go-md2html/internal/fileutil"
)

var ErrInvalidExtension = errors.New("file must have .md or .markdown extension")

// fileToConvert represents a single file to process.
type fileToConvert struct {
	inputPath  string
	outputPath string
}

// discoverFiles finds all markdown files under inputPath. A file input is
// taken as-is; a directory is walked recursively.
func discoverFiles(inputPath, outputDir, extension string) ([]fileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdownFile(inputPath) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", extension)
		return []fileToConvert{{inputPath: inputPath, outputPath: outPath}}, nil
	}

	var files []fileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, extension)
		files = append(files, fileToConvert{inputPath: path, outputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
// With no output directory the result sits next to the input; an output
// path that already carries the extension names the output file directly;
// otherwise the input's directory structure is mirrored under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir, extension string) string {
	base := fileutil.ReplaceExtension(filepath.Base(inputPath), extension)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if strings.HasSuffix(outputDir, extension) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}
