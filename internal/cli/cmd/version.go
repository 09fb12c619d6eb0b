package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(theme).Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print a single line")
}
