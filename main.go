package main

import (
	"os"

	"github.com/brainhack-marseille/brainhack-site/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
