// Package cli defines the cobra command tree for the visitor register.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/visitor-register/internal/audit"
	"github.com/evcraddock/visitor-register/internal/client"
	"github.com/evcraddock/visitor-register/internal/config"
	"github.com/evcraddock/visitor-register/internal/db"
	"github.com/evcraddock/visitor-register/internal/register"
	"github.com/evcraddock/visitor-register/internal/store"
	"github.com/evcraddock/visitor-register/internal/visitor"
)

var (
	flagFormat string
	flagConfig string
	flagData   string
	flagLog    string
	flagDriver string
	flagServer string
)

// desk is the pair of commands a front desk can issue, served either by a
// local register or by a remote server.
type desk interface {
	SignIn(f visitor.Fields) error
	SignOut(firstName, lastName string) error
}

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vr",
		Short:         "Front desk visitor register",
		Long:          "Sign visitors in on arrival and out on departure. Every sign-out is appended to an audit log.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default: ~/.config/vr/config.yaml)")
	root.PersistentFlags().StringVar(&flagData, "data", "", "visitors JSON file (default: ~/.visitor-register/visitors.json)")
	root.PersistentFlags().StringVar(&flagLog, "log", "", "sign-out audit log (default: ~/.visitor-register/signout_log.txt)")
	root.PersistentFlags().StringVar(&flagDriver, "driver", "", "record store driver (json|sqlite)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "send commands to a running vr server instead of local files")

	root.AddCommand(
		newSignInCmd(),
		newSignOutCmd(),
		newServeCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// configFile returns the --config flag or the default config path.
func configFile() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	return config.Path()
}

// loadSettings resolves config from defaults, file, env and flags, and
// validates the result.
func loadSettings() (config.Config, error) {
	path, err := configFile()
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Resolve(path)
	if err != nil {
		return config.Config{}, err
	}

	if flagData != "" {
		cfg.DataFile = flagData
	}
	if flagLog != "" {
		cfg.LogFile = flagLog
	}
	if flagDriver != "" {
		cfg.Driver = flagDriver
	}
	if flagServer != "" {
		cfg.ServerURL = flagServer
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens the configured record store. The returned func releases it.
func openStore(cfg config.Config) (store.Store, func(), error) {
	if cfg.Driver == config.DriverSQLite {
		database, err := db.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store.NewSQLite(database), func() { closeDB(database) }, nil
	}
	return store.NewJSONFile(cfg.DataFile, cfg.BackupEnabled()), func() {}, nil
}

// openRegister builds a local register from cfg.
func openRegister(cfg config.Config) (*register.Register, func(), error) {
	s, closeFn, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return register.New(s, audit.NewLogger(cfg.LogFile)), closeFn, nil
}

// openDesk returns a remote client when a server URL is configured,
// otherwise a local register.
func openDesk(cfg config.Config) (desk, func(), error) {
	if cfg.ServerURL != "" {
		return client.New(cfg.ServerURL), func() {}, nil
	}
	reg, closeFn, err := openRegister(cfg)
	if err != nil {
		return nil, nil, err
	}
	return reg, closeFn, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
