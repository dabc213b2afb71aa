package intake

import (
	"regexp"
	"strings"

	"github.com/brainhack-marseille/brainhack-site/internal/projects"
)

var (
	imgSrcRe = regexp.MustCompile(`src=["'](https?://[^"']+)["']`)
	mdImgRe  = regexp.MustCompile(`!\[.*?\]\((https?://[^)]+)\)`)
	urlRe    = regexp.MustCompile(`https?://[^\s]+`)
)

// placeholderMarker flags instruction text participants were asked to
// delete from the form but often leave in.
const placeholderMarker = "PLEASE DELETE THESE INSTRUCTIONS"

// imagePlaceholder matches the form's "no image yet" instruction.
const imagePlaceholder = "Leave this text if you don't have an image yet"

// ParseIssueBody splits an issue-form body into its "### Heading" sections.
// Content before the first heading is discarded. Section values are
// trimmed; missing sections are simply absent from the map.
func ParseIssueBody(body string) map[string]string {
	sections := make(map[string]string)
	if body == "" {
		return sections
	}

	var current string
	var content []string
	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
		}
	}

	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "### ") {
			flush()
			current = strings.TrimSpace(strings.TrimPrefix(line, "### "))
			content = nil
			continue
		}
		if current != "" {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

// CleanText normalizes a section value: sentinel "No response" answers
// become empty, leftover form instructions are stripped line by line, and
// the image placeholder empties the whole value.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	switch strings.ToLower(strings.TrimSpace(text)) {
	case "no response", "*no response*", "_no response_":
		return ""
	}

	if strings.Contains(text, placeholderMarker) {
		var kept []string
		for _, line := range strings.Split(text, "\n") {
			if strings.Contains(line, "PLEASE DELETE") || strings.HasPrefix(strings.TrimSpace(line), "- (") {
				continue
			}
			kept = append(kept, line)
		}
		text = strings.Join(kept, "\n")
	}

	if strings.Contains(text, imagePlaceholder) {
		return ""
	}

	return strings.TrimSpace(text)
}

// ExtractImageURL pulls a usable image URL out of a section value, which
// may hold an HTML <img> tag, a markdown image, or a bare URL.
func ExtractImageURL(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || strings.Contains(text, imagePlaceholder) {
		return ""
	}

	if m := imgSrcRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := mdImgRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		if m := urlRe.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// sectionHeadings maps issue-form headings to project fields. The headings
// must match the issue template exactly.
const (
	headingTitle         = "Title"
	headingLeaders       = "Leaders"
	headingCollaborators = "Collaborators"
	headingNumCollab     = "Number of collaborators"
	headingDescription   = "Project Description"
	headingGoalsPrefix   = "Goals for" // full heading carries the event year
	headingLearning      = "What will participants learn?"
	headingRepository    = "Link to project repository/sources"
	headingCommunication = "Communication channels"
	headingOnboarding    = "Onboarding documentation"
	headingData          = "Data to use"
	headingSkills        = "Skills"
	headingFirstIssues   = "Good first issues"
	headingImage         = "Image"
	headingType          = "Type"
	headingDevStatus     = "Development status"
	headingTopic         = "Topic"
	headingTools         = "Tools"
	headingLanguages     = "Programming language"
	headingModalities    = "Modalities"
	headingGitSkills     = "Git skills"
)

// BuildProject converts one approved issue into a project record. The
// issue's own title backs up a missing Title section; the issue number is
// the record id.
func BuildProject(issue Issue) projects.Project {
	sections := ParseIssueBody(issue.Body)
	get := func(heading string) string { return CleanText(sections[heading]) }

	title := get(headingTitle)
	if title == "" {
		title = CleanText(issue.Title)
	}

	goals := ""
	for heading, value := range sections {
		if strings.HasPrefix(heading, headingGoalsPrefix) {
			goals = CleanText(value)
			break
		}
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.Name)
	}

	return projects.Project{
		ID:                   issue.Number,
		Title:                title,
		Leaders:              get(headingLeaders),
		Collaborators:        get(headingCollaborators),
		NumCollaborators:     get(headingNumCollab),
		Description:          get(headingDescription),
		Goals:                goals,
		Learning:             get(headingLearning),
		Repository:           get(headingRepository),
		Communication:        get(headingCommunication),
		Onboarding:           get(headingOnboarding),
		Data:                 get(headingData),
		Skills:               get(headingSkills),
		GoodFirstIssues:      get(headingFirstIssues),
		Image:                ExtractImageURL(sections[headingImage]),
		Type:                 get(headingType),
		DevelopmentStatus:    get(headingDevStatus),
		Topics:               get(headingTopic),
		Tools:                get(headingTools),
		ProgrammingLanguages: get(headingLanguages),
		Modalities:           get(headingModalities),
		GitSkills:            get(headingGitSkills),
		IssueURL:             issue.HTMLURL,
		CreatedAt:            issue.CreatedAt,
		UpdatedAt:            issue.UpdatedAt,
		Labels:               labels,
	}
}
