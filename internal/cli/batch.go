package cli

import (
	"io"

	"github.com/arthur-debert/pdarules/pkg/batch"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var out deliverOptions

	cmd := &cobra.Command{
		Use:     "batch FILE",
		Short:   MsgBatchShort,
		Long:    MsgBatchLong,
		Example: MsgBatchExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeFn, err := a.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			drafts, err := batch.Load(in)
			if err != nil {
				return err
			}

			b, err := a.newBuilder(cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			report := batch.Apply(b, drafts)

			fb := a.feedback(cmd.ErrOrStderr())
			for _, f := range report.Failures {
				fb.warning(MsgBatchSkipped, f.Index+1, errorMessage(f.Err))
			}

			if b.Len() == 0 {
				fb.info(MsgNoRules)
			} else {
				r, err := a.renderer(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if err := r.RenderLines(highlight.Highlight(b.Text())); err != nil {
					return err
				}
				if err := deliver(cmd.Context(), b, a, out, fb); err != nil {
					return err
				}
			}

			if !report.OK() {
				return errors.Newf(errors.ErrIncompleteDraft, MsgErrBatchFailed, len(report.Failures), len(drafts)).
					WithDetail("skipped", len(report.Failures))
			}
			if len(drafts) > 1 {
				fb.info(MsgBatchSummary, len(report.Committed), len(drafts))
			}
			return nil
		},
	}

	addDeliverFlags(cmd, &out)
	return cmd
}

// open returns the named file, or standard input for "-"
func (a *app) open(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := a.fs.Open(name)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrFileRead, "cannot open %s", name).WithDetail("path", name)
	}
	return f, func() { _ = f.Close() }, nil
}
