package config

// DefaultConfig returns the configuration used when .brainhack.yml is
// missing or leaves fields unset.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title: "Brainhack",
			Year:  2026,
		},
		Data: DataConfig{
			Path: "assets/data/projects_2026.json",
		},
		Assets: AssetsConfig{
			Dir:     "assets",
			Include: []string{"**"},
			Exclude: []string{"**/*.md"},
		},
		GitHub: GitHubConfig{
			ProjectLabel:   "project",
			ApprovalLabels: []string{"project:approved", "status:web_ready"},
			APIURL:         "https://api.github.com",
		},
		Serve: ServeConfig{
			Port: 8080,
		},
		OutputDir: "site",
		PagesDir:  "pages",
	}
}
