package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/application/usecase"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/infrastructure/layout"
	"github.com/bnema/remotenav/internal/ui/focus"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect layout files",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show [FILE]",
	Short: "List the elements of a layout in navigation order",
	Long: `List every element of a layout, region by region, in the visual order the
navigator uses (top to bottom, then left to right). Without FILE the built-in
demo layout is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayoutShow,
}

var layoutCheckCmd = &cobra.Command{
	Use:   "check PATH...",
	Short: "Validate layout files or directories of layouts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLayoutCheck,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutCheckCmd)
}

func runLayoutShow(cmd *cobra.Command, args []string) error {
	l := layout.Demo()
	if len(args) == 1 {
		var err error
		if l, err = layout.Load(args[0]); err != nil {
			return err
		}
	}

	bold := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("REGION"), bold("#"), bold("NAME"), bold("X"), bold("Y"), bold("W"), bold("H"), bold("DEFAULT"))

	for _, region := range entity.Regions {
		def := l.Default(region)
		for i, f := range usecase.SortVisual(l.Grid(region), l) {
			addElementRow(tbl, region.String(), i+1, f.(*focus.Element), f == def)
		}
	}
	for _, el := range l.Elements() {
		if l.RegionName(el) == layout.RegionUntracked {
			addElementRow(tbl, layout.RegionUntracked, 0, el, false)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d elements)\n", bold(l.Name), len(l.Elements()))
	fmt.Fprintln(cmd.OutOrStdout(), tbl)
	return nil
}

func addElementRow(tbl *uitable.Table, region string, order int, el *focus.Element, isDefault bool) {
	index := "-"
	if order > 0 {
		index = fmt.Sprint(order)
	}
	mark := ""
	if isDefault {
		mark = "yes"
	}
	r := el.Rect
	tbl.AddRow(region, index, el.Name, r.Left, r.Top, r.Width, r.Height, mark)
}

func runLayoutCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ok := color.New(color.FgGreen).SprintFunc()

	var failed int
	for _, path := range args {
		layouts, err := loadLayouts(cmd, path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %v\n", color.RedString("FAIL"), err)
			continue
		}
		for _, l := range layouts {
			fmt.Fprintf(out, "%s %s (%d elements)\n", ok("ok"), l.Path, len(l.Elements()))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d paths have invalid layouts", failed, len(args))
	}
	return nil
}

func loadLayouts(cmd *cobra.Command, path string) ([]*layout.Layout, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return layout.LoadDir(cmd.Context(), path)
	}
	l, err := layout.Load(path)
	if err != nil {
		return nil, err
	}
	return []*layout.Layout{l}, nil
}
