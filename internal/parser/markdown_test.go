package parser

import (
	"bytes"
	"strings"
	"testing"
)

func TestHeadingTitle_PrefersShallowest(t *testing.T) {
	src := []byte("## Section\n\ntext\n\n# Estimation *Workflow*\n\n# Second title\n")
	if got := HeadingTitle(src); got != "Estimation Workflow" {
		t.Errorf("expected %q, got %q", "Estimation Workflow", got)
	}
}

func TestHeadingTitle_NoHeadings(t *testing.T) {
	if got := HeadingTitle([]byte("Just some plain text.\n")); got != "" {
		t.Errorf("expected empty title, got %q", got)
	}
}

func TestHeadingTitle_InlineCode(t *testing.T) {
	if got := HeadingTitle([]byte("### Run `workflowdoc parse`\n")); got != "Run workflowdoc parse" {
		t.Errorf("unexpected title %q", got)
	}
}

func TestRenderHTML(t *testing.T) {
	src := "## 1. DATA\n\n#### 1.01 - Import\n- Load collars\n  - Check IDs\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	var buf bytes.Buffer
	if err := RenderHTML([]byte(src), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<h2>1. DATA</h2>", "<h4>1.01 - Import</h4>", "<li>Load collars", "<table>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestHTMLTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"title tag", "<html><head><title> Workflow   Graph </title></head><body><h1>Other</h1></body></html>", "Workflow Graph"},
		{"h1 fallback", "<html><body><h1>Knowledge <em>base</em></h1></body></html>", "Knowledge base"},
		{"none", "<p>no headings</p>", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HTMLTitle(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
