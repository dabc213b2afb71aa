package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brainhack-marseille/brainhack-site/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a site configuration interactively",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(".brainhack.yml"); err == nil {
		return fmt.Errorf(".brainhack.yml already exists; edit it directly or remove it first")
	}

	if _, err := config.RunWizard(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  brainhack fetch   # pull approved submissions from GitHub")
	fmt.Println("  brainhack build   # generate the static site")
	fmt.Println("  brainhack serve   # preview locally")
	return nil
}
