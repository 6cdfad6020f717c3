package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	out, err := ToHTML("# Başlık\n\nParagraf **kalın** metin.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<h1 id=\"başlık\">Başlık</h1>") {
		t.Errorf("heading missing or without anchor id: %s", out)
	}
	if !strings.Contains(out, "<strong>kalın</strong>") {
		t.Errorf("bold missing: %s", out)
	}
}

func TestToHTML_RawHTMLPassesThrough(t *testing.T) {
	out, err := ToHTML(`<div class="legacy">eski içerik</div>`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, `<div class="legacy">eski içerik</div>`) {
		t.Errorf("raw HTML was escaped: %s", out)
	}
}

func TestToHTML_GFMTable(t *testing.T) {
	out, err := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("GFM table not rendered: %s", out)
	}
}
