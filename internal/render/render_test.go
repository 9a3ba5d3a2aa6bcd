package render

import (
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("Width = %d, want 80", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("Style = %q, want dark", opts.Style)
	}
	if !opts.EnableEmoji {
		t.Error("EnableEmoji = false, want true")
	}
	if !opts.PreserveNewLines {
		t.Error("PreserveNewLines = false, want true")
	}
}

func TestOptions_Chaining(t *testing.T) {
	opts := DefaultOptions().WithWidth(120).WithStyle("notty")

	if opts.Width != 120 {
		t.Errorf("Width = %d, want 120", opts.Width)
	}
	if opts.Style != "notty" {
		t.Errorf("Style = %q, want notty", opts.Style)
	}
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Title\n\nSome *text*.", DefaultOptions().WithStyle("notty"))
	if err != nil {
		t.Fatalf("Markdown() returned error: %v", err)
	}

	if !strings.Contains(out, "Title") {
		t.Errorf("rendered output missing heading text: %q", out)
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	out, err := MarkdownWithWidth("plain text", 40)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() returned error: %v", err)
	}
	if out == "" {
		t.Error("rendered output is empty")
	}
}

func TestIsValidStyle(t *testing.T) {
	for _, s := range AvailableStyles() {
		if !IsValidStyle(s) {
			t.Errorf("IsValidStyle(%q) = false", s)
		}
	}
	if IsValidStyle("neon-unicorn") {
		t.Error("IsValidStyle accepted unknown style")
	}
}

func TestPoolReuse(t *testing.T) {
	ClearCache()

	opts := DefaultOptions().WithStyle("notty")
	if _, err := Markdown("one", opts); err != nil {
		t.Fatalf("Markdown() returned error: %v", err)
	}
	if _, err := Markdown("two", opts); err != nil {
		t.Fatalf("Markdown() returned error: %v", err)
	}

	if CacheSize() != 1 {
		t.Errorf("CacheSize() = %d, want 1 for identical options", CacheSize())
	}

	if _, err := Markdown("three", opts.WithWidth(40)); err != nil {
		t.Fatalf("Markdown() returned error: %v", err)
	}
	if CacheSize() != 2 {
		t.Errorf("CacheSize() = %d, want 2 after differing options", CacheSize())
	}
}

func TestMarkdown_Concurrent(t *testing.T) {
	ClearCache()

	opts := DefaultOptions().WithStyle("notty")
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := Markdown("concurrent *render*", opts)
			done <- err
		}()
	}

	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent Markdown() returned error: %v", err)
		}
	}
}
