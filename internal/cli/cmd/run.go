package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/cli/model"
	"github.com/bnema/remotenav/internal/infrastructure/config"
)

const logFilePerm = 0o644

var runFlags struct {
	layout  string
	logFile string
	noWatch bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a layout with a simulated remote",
	Long: `Open a layout in the terminal and drive it like a TV remote.

Arrow keys (or hjkl), enter and backspace are turned into the key codes of the
configured platform and go through the same throttle, key map, dispatcher and
back guard as on a device. Config file changes are applied live.

Examples:
  remotenav run                          # built-in demo layout
  remotenav run --layout home.toml       # your own layout
  remotenav run --log-file /tmp/nav.log  # keep the debug trail`,
	Args: cobra.NoArgs,
	RunE: runRemote,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runFlags.layout, "layout", "L", "", "layout file (TOML, YAML or JSON); default is the demo layout")
	runCmd.Flags().StringVar(&runFlags.logFile, "log-file", "", "append logs to this file instead of discarding them")
	runCmd.Flags().BoolVar(&runFlags.noWatch, "no-watch", false, "do not apply config file changes live")
}

func runRemote(cmd *cobra.Command, _ []string) error {
	// The terminal belongs to the TUI: logs go to a file or nowhere.
	var logOutput io.Writer = io.Discard
	if runFlags.logFile != "" {
		f, err := os.OpenFile(runFlags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOutput = f
	}

	app, err := startApp(cmd, runFlags.layout, logOutput, !runFlags.noWatch)
	if err != nil {
		return err
	}
	defer app.Close()

	program := tea.NewProgram(model.NewRemoteModel(app, theme),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	// Reloads are posted to the loop from the watcher goroutine; wake the
	// program so it drains them.
	app.Config.OnConfigChange(func(*config.Config) {
		program.Send(model.DrainMsg{})
	})

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("remote simulator: %w", err)
	}
	return nil
}
