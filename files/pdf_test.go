package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractPages_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := ExtractPages(path); err == nil {
		t.Fatal("expected an error for a non-PDF file")
	}
}

func TestExtractPages_MissingFile(t *testing.T) {
	if _, err := ExtractPages(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestCombinePages(t *testing.T) {
	got := CombinePages([]string{"one", "two", "three"})
	if got != "one\n\ntwo\n\nthree" {
		t.Fatalf("unexpected join: %q", got)
	}
	if CombinePages(nil) != "" {
		t.Fatal("expected empty string for no pages")
	}
	if CombinePages([]string{"solo"}) != "solo" {
		t.Fatal("expected single page unchanged")
	}
}
