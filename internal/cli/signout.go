package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSignOutCmd() *cobra.Command {
	var first, last string

	cmd := &cobra.Command{
		Use:   "signout [<first> <last>]",
		Short: "Sign a visitor out",
		Long: `Sign out the first checked-in visitor with the given name.
Names are matched ignoring case.

Examples:
  vr signout jane doe
  vr signout --first Jane --last Doe`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts <first> <last> or --first/--last, received %d arg(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				first, last = args[0], args[1]
			}
			return runSignOut(cmd, first, last)
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "first name")
	cmd.Flags().StringVar(&last, "last", "", "last name")

	return cmd
}

func runSignOut(cmd *cobra.Command, first, last string) error {
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

	err = d.SignOut(first, last)
	if isJSON() {
		return printResult(cmd.OutOrStdout(), err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
	return nil
}
