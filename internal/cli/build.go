package cli

import (
	"github.com/arthur-debert/pdarules/pkg/tui"
	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		// The form owns the terminal, so logs only go to the log file
		Annotations: map[string]string{annotationLogging: loggingFileOnly},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.newBuilder(cmd.ErrOrStderr(), a.cfg.Builder.Autofill)
			if err != nil {
				return err
			}
			return tui.Run(tui.Options{
				Builder:    b,
				Fs:         a.fs,
				ExportPath: a.cfg.Export.FileName,
				ModeLevel:  a.cfg.ModeLevel(),
			})
		},
	}
}
