package md2html

import (
	"strings"
	"testing"
)

func TestUnorderedLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "dash bullets",
			input: "- a\n- b\n",
			want:  "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			name:  "asterisk bullets",
			input: "* a\n* b\n",
			want:  "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			name:  "plus bullets",
			input: "+ a\n+ b\n",
			want:  "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			name:  "item with emphasis",
			input: "- *a*\n",
			want:  "<ul>\n<li><em>a</em></li>\n</ul>\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := New().Transform(tt.input); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOrderedLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "sequential numbers",
			input: "1. a\n2. b\n",
			want:  "<ol>\n<li>a</li>\n<li>b</li>\n</ol>\n",
		},
		{
			name:  "numbers do not matter",
			input: "3. a\n1. b\n8. c\n",
			want:  "<ol>\n<li>a</li>\n<li>b</li>\n<li>c</li>\n</ol>\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := New().Transform(tt.input); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNestedList(t *testing.T) {
	t.Parallel()

	input := "* a\n    * b\n"
	want := "<ul>\n<li>a\n<ul>\n<li>b</li>\n</ul></li>\n</ul>\n"

	if got := New().Transform(input); got != want {
		t.Errorf("Transform(%q) = %q, want %q", input, got, want)
	}
}

func TestLooseListWrapsParagraphs(t *testing.T) {
	t.Parallel()

	got := New().Transform("- a\n\n- b\n")
	if !strings.Contains(got, "<li><p>a</p></li>") {
		t.Errorf("loose list items should contain paragraphs:\n%s", got)
	}
	if strings.Count(got, "<ul>") != 1 {
		t.Errorf("blank-separated items should stay one list:\n%s", got)
	}
}

func TestListItemWithTwoParagraphs(t *testing.T) {
	t.Parallel()

	got := New().Transform("- first\n\n    second\n")
	if !strings.Contains(got, "<p>first</p>") || !strings.Contains(got, "<p>second</p>") {
		t.Errorf("indented continuation should become a second paragraph:\n%s", got)
	}
}

func TestListFollowedByParagraph(t *testing.T) {
	t.Parallel()

	got := New().Transform("- a\n- b\n\nprose after\n")
	if !strings.Contains(got, "</ul>") {
		t.Errorf("list did not close:\n%s", got)
	}
	if !strings.Contains(got, "<p>prose after</p>") {
		t.Errorf("trailing paragraph was eaten by the list:\n%s", got)
	}
}

func TestListLevelResetsAfterTransform(t *testing.T) {
	t.Parallel()

	eng := New()
	ctx := newTransformContext(eng)
	ctx.runBlockGamut("* a\n* b\n\n")

	if ctx.listLevel != 0 {
		t.Errorf("listLevel = %d after gamut, want 0", ctx.listLevel)
	}
}
