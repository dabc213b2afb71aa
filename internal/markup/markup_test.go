package markup

import (
	"strings"
	"testing"
)

func TestExtractLinksMarkdown(t *testing.T) {
	got := ExtractLinks("[A](http://x) [B](http://y)")
	want := []Link{{Label: "A", URL: "http://x"}, {Label: "B", URL: "http://y"}}
	if len(got) != len(want) {
		t.Fatalf("got %d links, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("link %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExtractLinksMarkdownWinsOverBare(t *testing.T) {
	got := ExtractLinks("see [Docs](http://docs.example) and also http://bare.example")
	if len(got) != 1 {
		t.Fatalf("got %d links, want 1", len(got))
	}
	if got[0].Label != "Docs" || got[0].URL != "http://docs.example" {
		t.Errorf("got %+v", got[0])
	}
}

func TestExtractLinksBareURLs(t *testing.T) {
	got := ExtractLinks("http://x http://y https://z")
	if len(got) != 3 {
		t.Fatalf("got %d links, want 3", len(got))
	}
	// Historical labeling: first unnumbered, then numbered from 2.
	wantLabels := []string{"Repository", "Repository 2", "Repository 3"}
	wantURLs := []string{"http://x", "http://y", "https://z"}
	for i := range got {
		if got[i].Label != wantLabels[i] || got[i].URL != wantURLs[i] {
			t.Errorf("link %d = %+v, want {%s %s}", i, got[i], wantLabels[i], wantURLs[i])
		}
	}
}

func TestExtractLinksEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "no links here"} {
		if got := ExtractLinks(in); len(got) != 0 {
			t.Errorf("ExtractLinks(%q) = %v, want empty", in, got)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	if got := EscapeHTML(""); got != "" {
		t.Errorf("EscapeHTML(\"\") = %q, want empty", got)
	}
	got := EscapeHTML("<script>alert('x')</script>")
	if strings.Contains(got, "<script>") || strings.Contains(got, "</script>") {
		t.Errorf("EscapeHTML left executable markup: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("EscapeHTML output = %q, want entity-escaped tags", got)
	}
}

func TestFormatInlineBoldItalic(t *testing.T) {
	got := string(FormatInline("**bold** and _italic_"))
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("missing strong: %q", got)
	}
	if !strings.Contains(got, "<em>italic</em>") {
		t.Errorf("missing em: %q", got)
	}
	if !strings.HasPrefix(got, "<p>") || !strings.HasSuffix(got, "</p>") {
		t.Errorf("not wrapped in paragraph: %q", got)
	}
}

func TestFormatInlineEscapesFirst(t *testing.T) {
	got := string(FormatInline("use <b>tags</b> & **bold**"))
	if strings.Contains(got, "<b>") {
		t.Errorf("raw tag survived: %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;") {
		t.Errorf("tag not escaped: %q", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("markdown not applied after escaping: %q", got)
	}
}

func TestFormatInlineLinks(t *testing.T) {
	got := string(FormatInline("[Project](https://example.org/repo)"))
	if !strings.Contains(got, `href="https://example.org/repo"`) {
		t.Errorf("missing href: %q", got)
	}
	if !strings.Contains(got, `target="_blank"`) || !strings.Contains(got, `rel="noopener noreferrer"`) {
		t.Errorf("link missing new-tab/referrer attributes: %q", got)
	}
}

func TestFormatInlineParagraphsAndBreaks(t *testing.T) {
	got := string(FormatInline("first\n\nsecond\nthird"))
	if !strings.Contains(got, "</p><p>") {
		t.Errorf("blank line did not become paragraph break: %q", got)
	}
	if !strings.Contains(got, "second<br>third") {
		t.Errorf("single newline did not become <br>: %q", got)
	}
}

func TestFormatInlineAbsent(t *testing.T) {
	if got := FormatInline(""); got != "" {
		t.Errorf("FormatInline(\"\") = %q, want empty", got)
	}
	if got := FormatInline("   "); got != "" {
		t.Errorf("FormatInline(whitespace) = %q, want empty", got)
	}
}

func TestFormatInlineUnderscoreBold(t *testing.T) {
	got := string(FormatInline("__strong__ and *em*"))
	if !strings.Contains(got, "<strong>strong</strong>") {
		t.Errorf("missing strong from __: %q", got)
	}
	if !strings.Contains(got, "<em>em</em>") {
		t.Errorf("missing em from *: %q", got)
	}
}
