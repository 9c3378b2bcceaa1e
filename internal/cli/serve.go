package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tupyy/record-manager/internal/config"
	"github.com/tupyy/record-manager/internal/handlers"
	"github.com/tupyy/record-manager/internal/server"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	defaults := config.NewConfigurationWithOptionsAndDefaults()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the record view over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := openSession(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			h := handlers.New(s.mgr)
			srv, err := server.NewServer(opts.cfg, func(router *gin.RouterGroup) {
				handlers.RegisterHandlers(router, h)
			})
			if err != nil {
				return err
			}

			zap.S().Named("cli").Infow("serving records",
				"port", opts.cfg.Server.HTTPPort,
				"mode", opts.cfg.Server.ServerMode,
				"records", s.records.Len())

			return srv.Start(ctx)
		},
	}

	cmd.Flags().String("server-mode", defaults.Server.ServerMode, "server mode: dev or prod")
	cmd.Flags().Int("http-port", defaults.Server.HTTPPort, "HTTP listen port")

	return cmd
}
