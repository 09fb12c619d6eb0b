// Package cmd provides the Cobra CLI commands of remotenav.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/bootstrap"
	"github.com/bnema/remotenav/internal/cli/styles"
	"github.com/bnema/remotenav/internal/domain/build"
)

var (
	buildInfo = build.NewInfo("dev", "", "")
	theme     = styles.NewTheme()

	rootFlags struct {
		configFile string
		logLevel   string
	}

	rootCmd = &cobra.Command{
		Use:   "remotenav",
		Short: "Spatial focus navigation for TV and console remote UIs",
		Long: `remotenav drives focus across a screen the way a TV remote does.

A layout file describes the focusable rectangles of a screen grouped into a
top bar, a content area and a bottom bar. Direction keys move focus to the
geometrically nearest element, falling back across regions, while repeated
keys are throttled and host back navigation is trapped into back actions.

Use 'remotenav run' to drive a layout with the keyboard, or 'remotenav
inject' to replay an action sequence and print where focus ends up.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configFile, "config", "",
		"config file (default $XDG_CONFIG_HOME/remotenav/config.toml)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "",
		"override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// startApp loads config and layout and wires the navigation stack.
func startApp(cmd *cobra.Command, layoutFile string, logOutput io.Writer, watch bool) (*bootstrap.App, error) {
	if logOutput == nil {
		logOutput = cmd.ErrOrStderr()
	}
	return bootstrap.Start(cmd.Context(), bootstrap.Options{
		ConfigFile: rootFlags.configFile,
		LayoutFile: layoutFile,
		LogLevel:   rootFlags.logLevel,
		LogOutput:  logOutput,
		Watch:      watch,
	})
}
