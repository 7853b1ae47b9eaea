package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/adamlewis-97/timestableworksheet/internal/cli"
	"github.com/adamlewis-97/timestableworksheet/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		a := app.NewWithID("com.timestableworksheet.gui")
		win := ui.BuildMainWindow(a)
		win.ShowAndRun()
		return
	}

	// CLI mode
	if err := runCLI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCLI(cfg *cli.RunnerConfig) error {
	_, err := cli.GenerateRunner(*cfg)
	return err
}
