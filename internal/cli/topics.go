package cli

import (
	"embed"
	"fmt"

	"github.com/arthur-debert/pdarules/pkg/cobrax/topics"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:         "topics [topic]",
		Short:       MsgTopicsShort,
		Long:        MsgTopicsLong,
		GroupID:     "misc",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationConfig: configSkip},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tm.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}
			rendered, ok := tm.Render(args[0])
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "no help topic named %q", args[0])
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
