package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/visitor-register/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the resolved configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadSettings()
				if err != nil {
					return err
				}
				if isJSON() {
					return printJSON(cmd.OutOrStdout(), cfg)
				}
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("marshaling config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a value in the config file",
			Long: `Set a value in the config file.

Keys: data_file, log_file, driver, sqlite_path, backup, server_url, dev_mode`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigSet(cmd, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := configFile()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
	)

	return cmd
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	path, err := configFile()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if cfg.Driver != "" && cfg.Driver != config.DriverJSON && cfg.Driver != config.DriverSQLite {
		return fmt.Errorf("unknown driver %q (use %s or %s)", cfg.Driver, config.DriverJSON, config.DriverSQLite)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", key, path)
	return nil
}
