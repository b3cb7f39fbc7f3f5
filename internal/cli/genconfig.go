package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/pdarules/pkg/config"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(a *app) *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		// A broken config file must not prevent regenerating it
		Annotations: map[string]string{annotationConfig: configSkip},
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
				return err
			}

			path := a.configPath
			if path == "" {
				path = config.UserConfigPath()
			}
			exists, err := afero.Exists(a.fs, path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot check %s", path)
			}
			if exists && !force {
				return errors.Newf(errors.ErrFileExists, MsgErrConfigExists, path).WithDetail("path", path)
			}
			if err := a.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", filepath.Dir(path))
			}
			if err := afero.WriteFile(a.fs, path, []byte(content+"\n"), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
			}

			a.feedback(cmd.ErrOrStderr()).success(MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
