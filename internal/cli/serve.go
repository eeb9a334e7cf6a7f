package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/visitor-register/internal/logging"
	"github.com/evcraddock/visitor-register/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the front desk web UI and API",
		Long:  "Start an HTTP server with the front desk page and the sign-in/sign-out JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")

	return cmd
}

func runServe(port int) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logging.Setup(cfg.DevMode)

	reg, closeFn, err := openRegister(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	srv, err := web.NewServer(reg)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(port)
}
