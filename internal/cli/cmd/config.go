package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/bootstrap"
	"github.com/bnema/remotenav/internal/cli/styles"
	"github.com/bnema/remotenav/internal/infrastructure/config"
)

var configFlags struct {
	force     bool
	schemaDir string
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the effective configuration, write the defaults or export the JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the config file path and effective settings",
	Long: `Show the config file in use and the effective settings after defaults and
REMOTENAV_* environment overrides are applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration and its schema",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration",
	Long: `Print the JSON schema of the configuration, or write it as
config.schema.json into --output for editor completion.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configFlags.force, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configFlags.schemaDir, "output", "o", "", "directory to write config.schema.json into")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(theme)

	m, err := bootstrap.LoadConfig(rootFlags.configFile)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return err
	}
	content, err := config.MarshalTOML(m.Get())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConfigInfo(m.GetConfigFile(), content))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(theme)
	out := cmd.OutOrStdout()

	path := rootFlags.configFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !configFlags.force {
		fmt.Fprint(out, renderer.RenderExists(path))
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprint(out, renderer.RenderWritten("Config", path))

	schemaPath, err := config.WriteSchemaFile(filepath.Dir(path))
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderer.RenderWritten("Schema", schemaPath))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configFlags.schemaDir != "" {
		path, err := config.WriteSchemaFile(configFlags.schemaDir)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(theme).RenderWritten("Schema", path))
		return nil
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}
