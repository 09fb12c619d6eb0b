package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/remotenav/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the CLI command definitions.

By default, man pages are installed to ~/.local/share/man/man1/ so they
are immediately available via 'man remotenav'. You may need to run 'mandb'
to update the man page index.

Examples:
  remotenav gen-docs                        # Install man pages
  remotenav gen-docs --format markdown      # Generate markdown docs in ./docs
  remotenav gen-docs --output ./man         # Generate to local directory`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	var (
		ext      string
		generate func(dir string) error
	)
	switch genDocsFormat {
	case "man":
		ext = ".1"
		generate = generateManPages
	case "markdown":
		ext = ".md"
		generate = func(dir string) error { return doc.GenMarkdownTree(rootCmd, dir) }
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// No generation timestamp in the footer, for reproducible output.
	rootCmd.DisableAutoGenTag = true
	if err := generate(outputDir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s docs in %s\n", genDocsFormat, outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}

func generateManPages(outputDir string) error {
	now := time.Now()
	header := &doc.GenManHeader{
		Title:   "REMOTENAV",
		Section: "1",
		Source:  "remotenav " + buildInfo.Version,
		Manual:  "remotenav Manual",
		Date:    &now,
	}
	return doc.GenManTree(rootCmd, header, outputDir)
}
