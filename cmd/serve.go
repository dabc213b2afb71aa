package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/brainhack-marseille/brainhack-site/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site locally with live reload",
	Long: `Starts a local dev server: the projects page is rendered live from
the data file, connected pages reload when the data changes, and the
generated static assets are served alongside.`,
	RunE: runServe,
}

var (
	servePort int
	serveOpen bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (defaults to serve.port from config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Build first so assets and info pages exist.
	gen := site.NewGenerator(cfg, "")
	if _, err := gen.Generate(); err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	srv, err := site.NewServer(cfg, gen.OutputDir)
	if err != nil {
		return err
	}

	port := servePort
	if port == 0 {
		port = cfg.Serve.Port
	}

	if serveOpen {
		go openBrowser(fmt.Sprintf("http://localhost:%d", port))
	}

	return srv.ListenAndServe(port)
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
