package projects

import (
	"strconv"
	"strings"
)

// Project is one submitted project, as one element of the projects JSON
// array. Every field is optional: submissions come from a GitHub issue form
// and participants skip fields freely, so the zero value means "absent".
type Project struct {
	ID                   any      `json:"id,omitempty"`
	Title                string   `json:"title,omitempty"`
	Leaders              string   `json:"leaders,omitempty"`
	Collaborators        string   `json:"collaborators,omitempty"`
	NumCollaborators     string   `json:"num_collaborators,omitempty"`
	Image                string   `json:"image,omitempty"`
	Repository           string   `json:"repository,omitempty"`
	Communication        string   `json:"communication,omitempty"`
	Onboarding           string   `json:"onboarding,omitempty"`
	Description          string   `json:"description,omitempty"`
	Goals                string   `json:"goals,omitempty"`
	Skills               string   `json:"skills,omitempty"`
	Learning             string   `json:"learning,omitempty"`
	GoodFirstIssues      string   `json:"good_first_issues,omitempty"`
	Data                 string   `json:"data,omitempty"`
	Type                 string   `json:"type,omitempty"`
	DevelopmentStatus    string   `json:"development_status,omitempty"`
	GitSkills            string   `json:"git_skills,omitempty"`
	ProgrammingLanguages string   `json:"programming_languages,omitempty"`
	Tools                string   `json:"tools,omitempty"`
	Modalities           string   `json:"modalities,omitempty"`
	Topics               string   `json:"topics,omitempty"`
	IssueURL             string   `json:"issue_url,omitempty"`
	CreatedAt            string   `json:"created_at,omitempty"`
	UpdatedAt            string   `json:"updated_at,omitempty"`
	Labels               []string `json:"labels,omitempty"`
}

// DefaultImage is used when a submission has no usable image.
const DefaultImage = "assets/images/default_project.png"

// imagePlaceholder is the instruction text left in the issue form when the
// submitter has no image yet.
const imagePlaceholder = "Leave this text if you don't have an image yet"

// sentinels are placeholder answers treated as absent. GitHub issue forms
// insert "No response" (sometimes italicized) for skipped fields; the rest
// are common manual placeholders seen in past submissions.
var sentinels = map[string]bool{
	"no response":    true,
	"*no response*":  true,
	"_no response_":  true,
	"not_applicable": true,
	"not applicable": true,
	"n/a":            true,
	"none":           true,
	"tbd":            true,
	"-":              true,
}

// HasContent reports whether a field value carries a real answer: non-empty
// after trimming and not one of the sentinel placeholder strings
// (case-insensitive).
func HasContent(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	return !sentinels[strings.ToLower(t)]
}

// CardID returns a stable identifier for the project's card. The record's
// own id wins; records without one fall back to their position in the array.
func (p Project) CardID(index int) string {
	switch id := p.ID.(type) {
	case string:
		if strings.TrimSpace(id) != "" {
			return id
		}
	case float64:
		// JSON numbers decode as float64; issue numbers are integral.
		return strconv.FormatInt(int64(id), 10)
	case int:
		return strconv.Itoa(id)
	}
	return strconv.Itoa(index)
}

// DisplayImage resolves the image to show on the card: the submitted image
// unless it is absent or still the form's placeholder instruction, in which
// case the fixed default is used.
func (p Project) DisplayImage() string {
	img := strings.TrimSpace(p.Image)
	if img == "" || strings.Contains(img, imagePlaceholder) {
		return DefaultImage
	}
	return img
}

// CleanList normalizes a list-style metadata value for display: underscores
// become spaces and backticks are stripped. Dropdown values arrive as
// machine-ish tokens like "MRI_fMRI" or "`Python`".
func CleanList(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "`", "")
	return strings.TrimSpace(s)
}
