package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/"+configFileName+")")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	m := initialModel(config, NewSettings(config))
	m.logger = logger
	logger.Info("starting", "pen_size", config.PenSize, "color", config.Color, "history_limit", config.HistoryLimit)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		os.Exit(fail(os.Stderr, closer, err))
	}
}

// fail closes the log file and reports err on w. The log package points at
// the log file once it is open, so it cannot be used here.
func fail(w io.Writer, closer io.Closer, err error) int {
	closer.Close()
	fmt.Fprintln(w, err)
	return 1
}
