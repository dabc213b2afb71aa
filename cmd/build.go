package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brainhack-marseille/brainhack-site/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static event website",
	Long: `Renders the projects data file into a static HTML site: the card
grid, the shared assets, a search index, and any markdown info pages.`,
	RunE: runBuild,
}

var buildOutput string

func init() {
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gen := site.NewGenerator(cfg, buildOutput)
	pages, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d page(s))\n", gen.OutputDir, pages)
	return nil
}
