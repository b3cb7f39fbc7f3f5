package cli

import (
	"github.com/arthur-debert/pdarules/pkg/catalog"
	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/arthur-debert/pdarules/pkg/logging"
	"github.com/arthur-debert/pdarules/pkg/rules"
	"github.com/spf13/cobra"
)

func newRuleCmd(a *app) *cobra.Command {
	var (
		values = make(map[rules.Field]*string, len(rules.Fields))
		out    deliverOptions
	)
	for _, f := range rules.Fields {
		values[f] = new(string)
	}

	cmd := &cobra.Command{
		Use:     "rule",
		Short:   MsgRuleShort,
		Long:    MsgRuleLong,
		Example: MsgRuleExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.rule")

			b, err := a.newBuilder(cmd.ErrOrStderr(), a.cfg.Builder.Autofill)
			if err != nil {
				return err
			}

			// rule_type first: setting it resets the other fields
			for _, f := range rules.Fields {
				if !cmd.Flags().Changed(flagName(f)) {
					continue
				}
				if err := b.UpdateDraftField(f, *values[f]); err != nil {
					return err
				}
			}

			fb := a.feedback(cmd.ErrOrStderr())
			draft := b.Draft()
			if _, ok := b.Catalog().Lookup(draft.RuleType); !ok && draft.RuleType != "" {
				fb.warning(MsgUnknownRuleType, draft.RuleType)
			}

			entry, err := b.Commit()
			if err != nil {
				return err
			}
			logger.Debug().Str("rule", entry.Rule).Msg("Rule formatted")

			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := r.RenderLines(highlight.Highlight(entry.Text())); err != nil {
				return err
			}

			return deliver(cmd.Context(), b, a, out, fb)
		},
	}

	cmd.Flags().StringVarP(values[rules.FieldRuleType], flagName(rules.FieldRuleType), "t", "", MsgFlagType)
	cmd.Flags().StringVarP(values[rules.FieldElement], flagName(rules.FieldElement), "e", "", MsgFlagElement)
	cmd.Flags().StringVarP(values[rules.FieldPresets], flagName(rules.FieldPresets), "p", "", MsgFlagPresets)
	cmd.Flags().StringVarP(values[rules.FieldMode], flagName(rules.FieldMode), "m", "", MsgFlagMode)
	addDeliverFlags(cmd, &out)

	_ = cmd.RegisterFlagCompletionFunc(flagName(rules.FieldRuleType), func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return catalog.Default().Keys(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc(flagName(rules.FieldMode), func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var codes []string
		for _, m := range rules.KnownModes {
			if m.Code != "" {
				codes = append(codes, m.Code+"\t"+m.Description)
			}
		}
		return codes, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// flagName is the command line spelling of a draft field
func flagName(f rules.Field) string {
	if f == rules.FieldRuleType {
		return "type"
	}
	return string(f)
}

func addDeliverFlags(cmd *cobra.Command, opts *deliverOptions) {
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, MsgFlagCopy)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&opts.force, "force", false, MsgFlagForce)
}
