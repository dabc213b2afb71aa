package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .brainhack.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome! Let's configure your brainhack site.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Event title",
		Default: cfg.Site.Title,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title cannot be empty")
			}
			return nil
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}
	cfg.Site.Title = strings.TrimSpace(title)

	yearPrompt := promptui.Prompt{
		Label:   "Event year",
		Default: strconv.Itoa(cfg.Site.Year),
		Validate: func(s string) error {
			y, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || y < 2000 || y > 2100 {
				return fmt.Errorf("enter a four-digit year")
			}
			return nil
		},
	}
	yearStr, err := yearPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("year prompt: %w", err)
	}
	cfg.Site.Year, _ = strconv.Atoi(strings.TrimSpace(yearStr))

	repoPrompt := promptui.Prompt{
		Label:   "GitHub repository for submissions (owner/name, empty to skip)",
		Default: cfg.GitHub.Repo,
		Validate: func(s string) error {
			s = strings.TrimSpace(s)
			if s != "" && !strings.Contains(s, "/") {
				return fmt.Errorf("use owner/name form")
			}
			return nil
		},
	}
	repo, err := repoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("repository prompt: %w", err)
	}
	cfg.GitHub.Repo = strings.TrimSpace(repo)

	dataPrompt := promptui.Prompt{
		Label:   "Projects data file",
		Default: cfg.Data.Path,
	}
	dataPath, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data path prompt: %w", err)
	}
	if strings.TrimSpace(dataPath) != "" {
		cfg.Data.Path = strings.TrimSpace(dataPath)
	}

	outPrompt := promptui.Prompt{
		Label:   "Site output directory",
		Default: cfg.OutputDir,
	}
	outDir, err := outPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir prompt: %w", err)
	}
	if strings.TrimSpace(outDir) != "" {
		cfg.OutputDir = strings.TrimSpace(outDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(".brainhack.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .brainhack.yml")
	return cfg, nil
}
