package distribute

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestMarkdownName tests deriving the Markdown file name.
func TestMarkdownName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{"Alex Burbank.txt", "Alex Burbank.md"},
		{"Summary Report 03-08-2024.txt", "Summary Report 03-08-2024.md"},
		{"noext", "noext.md"},
	}

	for _, tc := range testCases {
		if got := MarkdownName(tc.input); got != tc.expected {
			t.Errorf("MarkdownName(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

// TestMarkdownDistributor tests writing the Markdown rendition.
func TestMarkdownDistributor(t *testing.T) {
	t.Parallel()

	t.Run("writes title and lines", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		d := NewMarkdownDistributor(dir)

		res := d.Distribute(sampleOutput())
		if !res.Created {
			t.Fatalf("expected created, got %+v", res)
		}

		data, err := os.ReadFile(filepath.Join(dir, "Alex Burbank.md"))
		if err != nil {
			t.Fatalf("failed to read markdown: %v", err)
		}
		content := string(data)

		if !strings.Contains(content, "# Alex Burbank") {
			t.Error("expected H1 title")
		}
		if !strings.Contains(content, "```") {
			t.Error("expected fenced block")
		}
		if !strings.Contains(content, "Blah OR 1111") {
			t.Error("expected report lines")
		}
	})

	t.Run("shares the output preconditions", func(t *testing.T) {
		t.Parallel()

		d := NewMarkdownDistributor(t.TempDir())
		out := sampleOutput()
		out.FileName = ""

		res := d.Distribute(out)
		if res.Created || res.ErrorMessage != "No filename for report" {
			t.Errorf("unexpected result %+v", res)
		}
	})
}
