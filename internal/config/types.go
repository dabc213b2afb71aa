package config

// Config is the top-level brainhack-site configuration, corresponding to
// .brainhack.yml.
type Config struct {
	Site   SiteConfig   `yaml:"site" koanf:"site"`
	Data   DataConfig   `yaml:"data" koanf:"data"`
	Assets AssetsConfig `yaml:"assets" koanf:"assets"`
	GitHub GitHubConfig `yaml:"github" koanf:"github"`
	Serve  ServeConfig  `yaml:"serve" koanf:"serve"`

	// OutputDir receives the generated static site.
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	// PagesDir holds optional markdown info pages rendered into the site.
	PagesDir string `yaml:"pages_dir" koanf:"pages_dir"`
}

// SiteConfig describes the event itself.
type SiteConfig struct {
	Title       string `yaml:"title" koanf:"title"`
	Year        int    `yaml:"year" koanf:"year"`
	Description string `yaml:"description" koanf:"description"`
}

// DataConfig locates the projects data file.
type DataConfig struct {
	// Path is the projects JSON file written by fetch and read by build.
	Path string `yaml:"path" koanf:"path"`
}

// AssetsConfig controls which static files are copied into the site output.
type AssetsConfig struct {
	Dir     string   `yaml:"dir" koanf:"dir"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// GitHubConfig points the intake pipeline at the submission repository.
type GitHubConfig struct {
	// Repo is the owner/name of the repository receiving project issues.
	Repo string `yaml:"repo" koanf:"repo"`
	// ProjectLabel marks an issue as a project submission.
	ProjectLabel string `yaml:"project_label" koanf:"project_label"`
	// ApprovalLabels are the labels that make a submission appear on the
	// site. Any one of them is sufficient.
	ApprovalLabels []string `yaml:"approval_labels" koanf:"approval_labels"`
	// APIURL overrides the GitHub API base URL (tests, GitHub Enterprise).
	APIURL string `yaml:"api_url" koanf:"api_url"`
}

// ServeConfig holds dev-server settings.
type ServeConfig struct {
	Port int `yaml:"port" koanf:"port"`
}
