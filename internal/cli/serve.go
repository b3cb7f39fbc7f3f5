package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/pdarules/pkg/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgServeShort,
		Long:    MsgServeLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			b, err := a.newBuilder(cmd.ErrOrStderr(), a.cfg.Builder.Autofill)
			if err != nil {
				return err
			}
			srv := server.New(server.Options{
				Builder:  b,
				FileName: filepath.Base(a.cfg.Export.FileName),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.feedback(cmd.ErrOrStderr()).info(MsgServing, addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", MsgFlagAddr)
	return cmd
}
