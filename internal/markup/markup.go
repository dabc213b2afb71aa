// Package markup holds the pure text and link helpers used by the card
// builder: link extraction from free-text fields and a small inline
// markdown-to-HTML converter for long-form answers.
//
// The converter is deliberately not a full markdown renderer (the site's
// info pages use goldmark for that). Submission answers only ever use bold,
// italic, links and paragraphs, and the output of a single-pass substitution
// over escaped text is much easier to reason about as an injection boundary.
package markup

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

// Link is one extracted link: a display label and its URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

var (
	mdLinkRe  = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	bareURLRe = regexp.MustCompile(`https?://[^\s]+`)

	boldStarRe  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderRe = regexp.MustCompile(`__(.+?)__`)
	italStarRe  = regexp.MustCompile(`\*(.+?)\*`)
	italUnderRe = regexp.MustCompile(`_(.+?)_`)
	paragraphRe = regexp.MustCompile(`\n[ \t]*\n`)
)

// ExtractLinks pulls every link out of a free-text field. Markdown-style
// [label](url) links take precedence: if any are present, exactly those are
// returned in order of appearance and bare URLs in the same text are
// ignored. Otherwise each bare http(s) token becomes a link labeled
// "Repository" for the first and "Repository N" for the rest. The numbering
// of bare URLs (first unnumbered, then "Repository 2") matches the site's
// historical behavior and is kept as-is.
func ExtractLinks(text string) []Link {
	links := []Link{}
	if strings.TrimSpace(text) == "" {
		return links
	}

	if matches := mdLinkRe.FindAllStringSubmatch(text, -1); len(matches) > 0 {
		for _, m := range matches {
			links = append(links, Link{Label: m[1], URL: m[2]})
		}
		return links
	}

	for i, url := range bareURLRe.FindAllString(text, -1) {
		label := "Repository"
		if i > 0 {
			label = fmt.Sprintf("Repository %d", i+1)
		}
		links = append(links, Link{Label: label, URL: url})
	}
	return links
}

// EscapeHTML converts HTML metacharacters in text to entities. Absent input
// yields the empty string. All card content passes through here (directly or
// via FormatInline) before it reaches a template.HTML value.
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	return template.HTMLEscapeString(text)
}

// FormatInline renders a long-form submission answer as HTML. The text is
// entity-escaped first, then a fixed sequence of single-pass substitutions
// is applied: **bold**/__bold__, *italic*/_italic_, [label](url) links
// (opened in a new tab without a referrer), blank lines as paragraph breaks,
// remaining newlines as <br>. The result is wrapped in <p> if needed.
//
// The substitutions are non-recursive; nested or overlapping markdown is not
// guaranteed to come out well-formed. That matches the original page and is
// an accepted limitation.
func FormatInline(text string) template.HTML {
	s := EscapeHTML(strings.TrimSpace(text))
	if s == "" {
		return ""
	}

	s = boldStarRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = boldUnderRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italStarRe.ReplaceAllString(s, "<em>$1</em>")
	s = italUnderRe.ReplaceAllString(s, "<em>$1</em>")
	s = mdLinkRe.ReplaceAllString(s, `<a href="$2" target="_blank" rel="noopener noreferrer">$1</a>`)
	s = paragraphRe.ReplaceAllString(s, "</p><p>")
	s = strings.ReplaceAll(s, "\n", "<br>")

	if !strings.HasPrefix(s, "<p>") {
		s = "<p>" + s + "</p>"
	}
	return template.HTML(s)
}
