package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brainhack-marseille/brainhack-site/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "brainhack",
	Short: "Brainhack event website toolkit",
	Long: `Brainhack builds the event website: it fetches approved project
submissions from GitHub issues, archives them, and renders a static
site of expandable project cards with a local dev server.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".brainhack.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
