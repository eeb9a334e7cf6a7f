package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/evcraddock/visitor-register/internal/client"
	"github.com/evcraddock/visitor-register/internal/config"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where records are kept",
		Long:  "Print the resolved store and audit log locations, and check the server when one is configured.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.OutOrStdout())
		},
	}
}

func runStatus(w io.Writer) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Driver:  %s\n", cfg.Driver)
	if cfg.Driver == config.DriverSQLite {
		fmt.Fprintf(w, "Store:   %s\n", cfg.SQLitePath)
	} else {
		fmt.Fprintf(w, "Store:   %s\n", cfg.DataFile)
		fmt.Fprintf(w, "Backup:  %t\n", cfg.BackupEnabled())
	}
	fmt.Fprintf(w, "Log:     %s\n", cfg.LogFile)

	if cfg.ServerURL == "" {
		fmt.Fprintln(w, "Server:  none (local mode)")
		return nil
	}

	fmt.Fprintf(w, "Server:  %s\n", cfg.ServerURL)
	if err := client.New(cfg.ServerURL).Health(); err != nil {
		fmt.Fprintf(w, "Health:  unreachable (%v)\n", err)
		return nil
	}
	fmt.Fprintln(w, "Health:  ok")
	return nil
}
