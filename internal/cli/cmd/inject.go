package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/cli"
)

var injectFlags struct {
	layout string
	gap    time.Duration
	trace  bool
}

var injectCmd = &cobra.Command{
	Use:   "inject [flags] [--] STEP...",
	Short: "Replay an action sequence and print the resulting focus",
	Long: `Replay a sequence of input actions against a layout and print the focus
descriptor reached at the end, e.g. "content:poster-6".

A step is an action name (up, down, left, right, select, back, ...), an action
with a repeat count (right*3), a delay in milliseconds (500) or a duration
(1.5s). Put negative delays after "--" so they are not read as flags.

Actions are dispatched straight to the focus manager, so no throttling
applies. inject.default_delay_ms (or --gap) paces consecutive actions.

Examples:
  remotenav inject right right down          # content:poster-11
  remotenav inject --layout tv.yaml up 500 select
  remotenav inject --trace right*3 down`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInject,
}

func init() {
	rootCmd.AddCommand(injectCmd)
	injectCmd.Flags().StringVarP(&injectFlags.layout, "layout", "L", "", "layout file (TOML, YAML or JSON); default is the demo layout")
	injectCmd.Flags().DurationVar(&injectFlags.gap, "gap", 0, "pause between consecutive actions (default inject.default_delay_ms)")
	injectCmd.Flags().BoolVar(&injectFlags.trace, "trace", false, "print the focus after every step")
}

func runInject(cmd *cobra.Command, args []string) error {
	app, err := startApp(cmd, injectFlags.layout, nil, false)
	if err != nil {
		return err
	}
	defer app.Close()

	gap := app.Config.Get().Inject.DefaultDelay()
	if cmd.Flags().Changed("gap") {
		gap = injectFlags.gap
	}
	steps, err := cli.ParseSteps(args, gap)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	manager := app.Navigation.Manager
	if !injectFlags.trace {
		desc, err := manager.Inject(app.Context(), steps...)
		if err != nil {
			return fmt.Errorf("inject: %w", err)
		}
		fmt.Fprintln(out, desc)
		return nil
	}

	fmt.Fprintf(out, "%-8s %s\n", "start", manager.Describe())
	for _, step := range steps {
		desc, err := manager.Inject(app.Context(), step)
		if err != nil {
			return fmt.Errorf("inject: %w", err)
		}
		fmt.Fprintf(out, "%-8s %s\n", step, desc)
	}
	return nil
}
