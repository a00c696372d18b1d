package content

import (
	"strings"
	"testing"
)

func TestRenderMarkdownHardWraps(t *testing.T) {
	out, err := RenderMarkdown([]byte("first line\nsecond line"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<br />") {
		t.Fatalf("single newlines should become line breaks, got %q", out)
	}
}

func TestRenderMarkdownHighlightsFencedCode(t *testing.T) {
	out, err := RenderMarkdown([]byte("```go\nfmt.Println(\"hi\")\n```\n"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `<div class="highlight">`) {
		t.Fatalf("fenced code should be wrapped in a highlight container, got %q", out)
	}
	if !strings.Contains(out, "Println") {
		t.Fatalf("code content missing from output: %q", out)
	}
}

func TestRenderMarkdownPlainFence(t *testing.T) {
	out, err := RenderMarkdown([]byte("```\nplain text\n```\n"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "plain text") {
		t.Fatalf("plain fences should still render their content, got %q", out)
	}
}

func TestRenderMarkdownTables(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	out, err := RenderMarkdown([]byte(src))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Fatalf("pipe tables should render as tables, got %q", out)
	}
}

func TestRenderMarkdownKeepsRawHTML(t *testing.T) {
	out, err := RenderMarkdown([]byte("before\n\n<figure>inline</figure>\n\nafter"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<figure>inline</figure>") {
		t.Fatalf("raw HTML should pass through, got %q", out)
	}
}

func TestRenderMarkdownDeterministic(t *testing.T) {
	src := []byte("# Title\n\nsome *body* text\n\n```go\nx := 1\n```\n")
	first, err := RenderMarkdown(src)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := RenderMarkdown(src)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if again != first {
			t.Fatalf("rendering is not deterministic:\nfirst: %q\nagain: %q", first, again)
		}
	}
}
