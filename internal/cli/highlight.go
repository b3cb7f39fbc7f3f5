package cli

import (
	"io"
	"strings"

	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/export"
	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/spf13/cobra"
)

func newHighlightCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "highlight [FILE|-]",
		Short:   MsgHighlightShort,
		Long:    MsgHighlightLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text string
				err  error
			)
			if len(args) == 0 || args[0] == "-" {
				text, err = readAll(cmd.InOrStdin())
			} else {
				text, err = export.ReadTranscript(a.fs, args[0])
			}
			if err != nil {
				return err
			}
			if text == "" {
				return nil
			}

			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderLines(highlight.Highlight(text))
		},
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileRead, "cannot read standard input")
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimSuffix(text, "\n"), nil
}
