package render

import (
	"strings"
	"testing"
)

func TestMarkdown_Paragraphs(t *testing.T) {
	got := Markdown("First paragraph.\n\nSecond paragraph.")
	if !strings.Contains(got, "<p>First paragraph.</p>") {
		t.Fatalf("missing first paragraph: %s", got)
	}
	if !strings.Contains(got, "<p>Second paragraph.</p>") {
		t.Fatalf("missing second paragraph: %s", got)
	}
}

func TestMarkdown_List(t *testing.T) {
	got := Markdown("* alpha\n* beta")
	if !strings.Contains(got, "<ul>") || !strings.Contains(got, "<li>alpha</li>") {
		t.Fatalf("expected list markup: %s", got)
	}
}

func TestMarkdown_Deterministic(t *testing.T) {
	input := "This text is too long for this application's current configuration.\n\nPlease use a shorter text."
	first := Markdown(input)
	second := Markdown(input)
	if first != second {
		t.Fatalf("conversion not stable:\nfirst:  %s\nsecond: %s", first, second)
	}
	if !strings.Contains(first, "Please use a shorter text.") {
		t.Fatalf("expected message text preserved: %s", first)
	}
}
