// Package render builds the HTML fragments for project cards: a compact
// preview card and a full-width details panel per project record.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/brainhack-marseille/brainhack-site/internal/markup"
	"github.com/brainhack-marseille/brainhack-site/internal/projects"
)

// CardPair is the rendering unit for one project: the always-visible
// preview card and the expandable details panel, keyed by the card id.
type CardPair struct {
	ID      string
	Preview template.HTML
	Details template.HTML
}

// notSpecified is rendered for metadata the submitter left blank.
const notSpecified = "Not specified"

// BuildCard renders one project record into its card pair. Construction is
// pure: absent fields degrade to omitted sections or "Not specified",
// never errors. index is the record's position in the data file and is
// only used when the record carries no id of its own.
func BuildCard(p projects.Project, index int) CardPair {
	return buildCard(p, index, false)
}

// buildCard renders the pair with an explicit open state. The open variant
// is only reachable through RenderGrid, which consults the panel controller.
func buildCard(p projects.Project, index int, open bool) CardPair {
	id := p.CardID(index)
	return CardPair{
		ID:      id,
		Preview: buildPreview(p, id, open),
		Details: buildDetails(p, id, open),
	}
}

func displayTitle(p projects.Project) string {
	if projects.HasContent(p.Title) {
		return strings.TrimSpace(p.Title)
	}
	return "Untitled project"
}

func buildPreview(p projects.Project, id string, open bool) template.HTML {
	var b strings.Builder

	cardClass := "project-card"
	expanded := "false"
	if open {
		cardClass = "project-card expanded"
		expanded = "true"
	}

	fmt.Fprintf(&b, `<div class="%s" id="card-%s" data-project-id="%s">`+"\n",
		cardClass, markup.EscapeHTML(id), markup.EscapeHTML(id))
	fmt.Fprintf(&b, `<img class="project-image" src="%s" alt="%s" loading="lazy">`+"\n",
		markup.EscapeHTML(p.DisplayImage()), markup.EscapeHTML(displayTitle(p)))
	fmt.Fprintf(&b, `<h3 class="project-title">%s</h3>`+"\n", markup.EscapeHTML(displayTitle(p)))

	if projects.HasContent(p.Leaders) {
		fmt.Fprintf(&b, `<p class="project-leaders"><strong>Leaders:</strong> %s</p>`+"\n",
			markup.EscapeHTML(strings.TrimSpace(p.Leaders)))
	}
	if projects.HasContent(p.Collaborators) {
		fmt.Fprintf(&b, `<p class="project-collaborators"><strong>Collaborators:</strong> %s</p>`+"\n",
			markup.EscapeHTML(strings.TrimSpace(p.Collaborators)))
	}

	fmt.Fprintf(&b, `<button class="toggle-details" data-project-id="%s" aria-expanded="%s">View details</button>`+"\n",
		markup.EscapeHTML(id), expanded)
	b.WriteString(`</div>`)

	return template.HTML(b.String())
}

func buildDetails(p projects.Project, id string, open bool) template.HTML {
	var b strings.Builder

	if open {
		fmt.Fprintf(&b, `<div class="project-details open" id="details-%s" data-project-id="%s">`+"\n",
			markup.EscapeHTML(id), markup.EscapeHTML(id))
	} else {
		fmt.Fprintf(&b, `<div class="project-details" id="details-%s" data-project-id="%s" hidden>`+"\n",
			markup.EscapeHTML(id), markup.EscapeHTML(id))
	}
	fmt.Fprintf(&b, `<button class="close-details" data-project-id="%s" aria-label="Close details">&times;</button>`+"\n",
		markup.EscapeHTML(id))
	fmt.Fprintf(&b, `<h3 class="details-title">%s</h3>`+"\n", markup.EscapeHTML(displayTitle(p)))

	writeMetadata(&b, p)
	writeLinkGroups(&b, p)

	writeSection(&b, "Description", p.Description)
	writeSection(&b, "Goals", p.Goals)
	writeSection(&b, "Skills", p.Skills)
	writeSection(&b, "What will participants learn?", p.Learning)
	writeSection(&b, "Good first issues", p.GoodFirstIssues)
	writeSection(&b, "Data", p.Data)

	// Type and development status are always shown, placeholder included.
	writeAlwaysSection(&b, "Project type", p.Type)
	writeAlwaysSection(&b, "Development status", p.DevelopmentStatus)

	if projects.HasContent(p.IssueURL) {
		fmt.Fprintf(&b, `<p class="details-issue"><a href="%s" target="_blank" rel="noopener noreferrer">View submission on GitHub</a></p>`+"\n",
			markup.EscapeHTML(strings.TrimSpace(p.IssueURL)))
	}

	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// metadataValue resolves a list-style metadata field for display.
func metadataValue(raw string) string {
	if !projects.HasContent(raw) {
		return notSpecified
	}
	return projects.CleanList(raw)
}

func writeMetadata(b *strings.Builder, p projects.Project) {
	b.WriteString(`<dl class="details-meta">` + "\n")

	rows := []struct {
		label, value string
	}{
		{"Git skills", metadataValue(p.GitSkills)},
		{"Programming languages", metadataValue(p.ProgrammingLanguages)},
		{"Tools", metadataValue(p.Tools)},
		{"Modalities", metadataValue(p.Modalities)},
	}
	for _, row := range rows {
		fmt.Fprintf(b, `<dt>%s</dt><dd>%s</dd>`+"\n",
			markup.EscapeHTML(row.label), markup.EscapeHTML(row.value))
	}

	// Topics have no placeholder: the row is omitted entirely when absent.
	if projects.HasContent(p.Topics) {
		fmt.Fprintf(b, `<dt>Topics</dt><dd>%s</dd>`+"\n",
			markup.EscapeHTML(projects.CleanList(p.Topics)))
	}

	b.WriteString(`</dl>` + "\n")
}

// linkGroups maps a source field to the heading its buttons render under.
func writeLinkGroups(b *strings.Builder, p projects.Project) {
	groups := []struct {
		heading string
		text    string
	}{
		{"Project links", p.Repository},
		{"Communication", p.Communication},
		{"Onboarding", p.Onboarding},
	}

	for _, g := range groups {
		links := markup.ExtractLinks(g.text)
		if len(links) == 0 {
			continue
		}
		fmt.Fprintf(b, `<div class="details-links"><h4>%s</h4>`+"\n", markup.EscapeHTML(g.heading))
		for _, l := range links {
			fmt.Fprintf(b, `<a class="link-button" href="%s" target="_blank" rel="noopener noreferrer">%s</a>`+"\n",
				markup.EscapeHTML(l.URL), markup.EscapeHTML(l.Label))
		}
		b.WriteString(`</div>` + "\n")
	}
}

// writeSection renders a long-form answer through the inline markdown
// converter. Absent answers omit the whole section.
func writeSection(b *strings.Builder, heading, text string) {
	if !projects.HasContent(text) {
		return
	}
	fmt.Fprintf(b, `<div class="details-section"><h4>%s</h4>%s</div>`+"\n",
		markup.EscapeHTML(heading), markup.FormatInline(text))
}

// writeAlwaysSection is like writeSection but renders a literal
// "Not specified" body instead of disappearing.
func writeAlwaysSection(b *strings.Builder, heading, text string) {
	if !projects.HasContent(text) {
		fmt.Fprintf(b, `<div class="details-section"><h4>%s</h4><p>%s</p></div>`+"\n",
			markup.EscapeHTML(heading), notSpecified)
		return
	}
	fmt.Fprintf(b, `<div class="details-section"><h4>%s</h4><p>%s</p></div>`+"\n",
		markup.EscapeHTML(heading), markup.EscapeHTML(projects.CleanList(text)))
}
