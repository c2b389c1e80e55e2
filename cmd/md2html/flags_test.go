package main

import "testing"

func TestParseFlags(t *testing.T) {
	flags, args, err := parseFlags([]string{
		"-o", "out", "--html", "--strict-emphasis", "-v", "doc.md", "extra.md",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.output != "out" {
		t.Errorf("output = %q, want %q", flags.output, "out")
	}
	if !flags.engine.html || !flags.engine.strict {
		t.Errorf("engine flags not set: %+v", flags.engine)
	}
	if !flags.common.verbose {
		t.Error("verbose not set")
	}
	if len(args) != 2 || args[0] != "doc.md" || args[1] != "extra.md" {
		t.Errorf("positional args = %q", args)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	_, _, err := parseFlags([]string{"--bogus"})
	if err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	flags, args, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if flags.output != "" || flags.common.config != "" {
		t.Errorf("defaults not empty: %+v", flags)
	}
	if len(args) != 0 {
		t.Errorf("positional args = %q, want none", args)
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"no input", ErrNoInput, ExitUsage},
		{"bad extension", ErrInvalidExtension, ExitUsage},
		{"read failure", ErrReadMarkdown, ExitIO},
		{"write failure", ErrWriteHTML, ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
