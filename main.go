package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"

	"signupform/models"
	"signupform/tui"
)

func main() {
	logger.SetLogLevel("info")

	cfg, err := models.LoadConfig()
	if err != nil {
		logger.LogErr(err, "failed to load configuration")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		fmt.Fprintln(os.Stderr, "set SIGNUPFORM_BASE_URL to the signup service base URL, e.g. http://localhost:8087")
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.LogErr(err, "form exited with error")
		os.Exit(1)
	}
}
