package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	writeFile(t, input, "# x\n")

	files, err := discoverFiles(input, "", ".html")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("found %d files, want 1", len(files))
	}
	want := filepath.Join(dir, "doc.html")
	if files[0].outputPath != want {
		t.Errorf("outputPath = %q, want %q", files[0].outputPath, want)
	}
}

func TestDiscoverFilesRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.txt")
	writeFile(t, input, "x")

	_, err := discoverFiles(input, "", ".html")
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("error = %v, want ErrInvalidExtension", err)
	}
}

func TestDiscoverFilesDirectoryWalk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# a\n")
	writeFile(t, filepath.Join(dir, "sub", "b.markdown"), "# b\n")
	writeFile(t, filepath.Join(dir, "sub", "skip.txt"), "x")

	files, err := discoverFiles(dir, "", ".html")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("found %d files, want 2: %+v", len(files), files)
	}
}

func TestDiscoverFilesMissingInput(t *testing.T) {
	_, err := discoverFiles(filepath.Join(t.TempDir(), "nope"), "", ".html")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name         string
		inputPath    string
		outputDir    string
		baseInputDir string
		want         string
	}{
		{
			name:      "next to input",
			inputPath: filepath.Join("docs", "a.md"),
			want:      filepath.Join("docs", "a.html"),
		},
		{
			name:      "explicit output file",
			inputPath: "a.md",
			outputDir: filepath.Join("out", "custom.html"),
			want:      filepath.Join("out", "custom.html"),
		},
		{
			name:         "mirrors directory structure",
			inputPath:    filepath.Join("docs", "sub", "a.md"),
			outputDir:    "out",
			baseInputDir: "docs",
			want:         filepath.Join("out", "sub", "a.html"),
		},
		{
			name:      "flat into output dir",
			inputPath: filepath.Join("docs", "a.md"),
			outputDir: "out",
			want:      filepath.Join("out", "a.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveOutputPath(tt.inputPath, tt.outputDir, tt.baseInputDir, ".html")
			if got != tt.want {
				t.Errorf("resolveOutputPath = %q, want %q", got, tt.want)
			}
		})
	}
}
