package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brainhack-marseille/brainhack-site/internal/archive"
	"github.com/brainhack-marseille/brainhack-site/internal/config"
	"github.com/brainhack-marseille/brainhack-site/internal/intake"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch approved project submissions from GitHub",
	Long: `Fetches every issue carrying the project label from the configured
repository, keeps the ones with an approval label, records them in the
local archive, and writes the projects data file.

Closed issues are archived projects: they stay in the data file so
completed projects remain visible on the site.

Set GITHUB_TOKEN to raise the API rate limit.`,
	RunE: runFetch,
}

var (
	fetchDryRun  bool
	fetchArchive string
)

func init() {
	fetchCmd.Flags().BoolVar(&fetchDryRun, "dry-run", false, "report what would be written without writing")
	fetchCmd.Flags().StringVar(&fetchArchive, "archive", ".brainhack/archive.db", "path to the project archive database")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.GitHub.Repo == "" {
		return fmt.Errorf("github.repo is not configured; run `brainhack init` or edit %s", cfgFile)
	}

	token := config.TokenFromEnv()
	if token == "" {
		fmt.Println("Warning: GITHUB_TOKEN not set, using unauthenticated API limits")
	}

	var store *archive.Store
	if !fetchDryRun {
		db, err := archive.Open(fetchArchive)
		if err != nil {
			return err
		}
		defer db.Close()
		store = archive.NewStore(db)
	}

	syncer := &intake.Syncer{
		Client: &intake.Client{
			BaseURL: cfg.GitHub.APIURL,
			Repo:    cfg.GitHub.Repo,
			Token:   token,
		},
		Store:          store,
		ProjectLabel:   cfg.GitHub.ProjectLabel,
		ApprovalLabels: cfg.GitHub.ApprovalLabels,
		DataPath:       cfg.Data.Path,
		DryRun:         fetchDryRun,
	}

	res, err := syncer.Sync(context.Background())
	if err != nil {
		return err
	}

	if fetchDryRun {
		fmt.Printf("Dry run: %d issue(s) fetched, %d approved, nothing written\n", res.Fetched, res.Approved)
		return nil
	}

	fmt.Printf("Fetched %d issue(s), %d approved; wrote %d project(s) to %s\n",
		res.Fetched, res.Approved, res.Written, cfg.Data.Path)
	return nil
}
