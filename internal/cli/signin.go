package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/visitor-register/internal/config"
	"github.com/evcraddock/visitor-register/internal/logging"
	"github.com/evcraddock/visitor-register/internal/visitor"
)

func newSignInCmd() *cobra.Command {
	var f visitor.Fields

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign a visitor in",
		Long: `Record a visitor's arrival. All five fields are required.

Examples:
  vr signin --first Jane --last Doe --email j@x.com --company Acme --purpose Meeting`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignIn(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.FirstName, "first", "", "first name")
	cmd.Flags().StringVar(&f.LastName, "last", "", "last name")
	cmd.Flags().StringVar(&f.Email, "email", "", "email address")
	cmd.Flags().StringVar(&f.Company, "company", "", "company")
	cmd.Flags().StringVar(&f.Purpose, "purpose", "", "purpose of visit")

	return cmd
}

func runSignIn(cmd *cobra.Command, f visitor.Fields) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	setupCLILogging(cfg)

	d, closeFn, err := openDesk(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	err = d.SignIn(f)
	if isJSON() {
		return printResult(cmd.OutOrStdout(), err)
	}
	if err != nil {
		return err
	}

	rec := f.Normalize()
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in: %s (%s)\n", rec.FullName(), rec.Company)
	return nil
}

// setupCLILogging sends slog output to stderr so it stays out of command output.
func setupCLILogging(cfg config.Config) {
	logging.SetupWriter(os.Stderr, cfg.DevMode)
}
