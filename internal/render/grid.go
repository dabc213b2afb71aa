package render

import (
	"html/template"
	"strings"

	"github.com/brainhack-marseille/brainhack-site/internal/panel"
	"github.com/brainhack-marseille/brainhack-site/internal/projects"
)

// RenderGrid renders the full card grid for the projects container. Each
// record contributes its preview card followed by its details panel; the
// controller decides which single panel, if any, renders open. A nil
// controller renders everything closed. An empty record list renders the
// empty-state block instead of cards.
func RenderGrid(list []projects.Project, ctrl *panel.Controller) template.HTML {
	if len(list) == 0 {
		return EmptyBlock()
	}

	var b strings.Builder
	for i, p := range list {
		open := ctrl != nil && ctrl.StateOf(p.CardID(i)) == panel.Open
		pair := buildCard(p, i, open)
		b.WriteString(string(pair.Preview))
		b.WriteString("\n")
		b.WriteString(string(pair.Details))
		b.WriteString("\n")
	}
	return template.HTML(b.String())
}

// EmptyBlock is the styled informational block shown when the data file
// holds no approved projects yet.
func EmptyBlock() template.HTML {
	return template.HTML(`<div class="info-block empty-state">
<h3>No projects yet</h3>
<p>Approved projects will appear here. Check back soon, or submit your own!</p>
</div>`)
}

// ErrorBlock is the styled informational block shown when the projects data
// could not be fetched or parsed. Transport and parse failures render the
// same block; the distinction only goes to the log.
func ErrorBlock() template.HTML {
	return template.HTML(`<div class="info-block error-state">
<h3>Unable to load projects</h3>
<p>Something went wrong while loading the project list. Please try again later.</p>
</div>`)
}
