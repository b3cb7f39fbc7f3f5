package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pdarules/pkg/catalog"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/rules"
	"github.com/arthur-debert/pdarules/pkg/ui"
	"github.com/goccy/go-json"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "types",
		Short:   MsgTypesShort,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			out := cmd.OutOrStdout()

			if a.outputFormat() == ui.FormatJSON {
				return writeJSON(out, cat.RuleTypes)
			}

			data := pterm.TableData{{"TYPE", "LABEL", "ELEMENT", "SAMPLE PRESETS"}}
			for _, key := range cat.Keys() {
				rt, _ := cat.Lookup(key)
				element := "e.g. " + cat.SampleElement(key)
				if cat.IsSelect(key) {
					element = fmt.Sprintf("one of %d values", len(cat.Values(key)))
				}
				data = append(data, []string{key, rt.Label, element, cat.SamplePresets(key, "")})
			}
			return a.writeTable(out, data)
		},
	}
}

func newModesCmd(a *app) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:     "modes",
		Short:   MsgModesShort,
		Long:    MsgModesLong,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl := a.cfg.ModeLevel()
			if level != "" {
				parsed, ok := rules.ParseLevel(level)
				if !ok {
					return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownLevel, level)
				}
				lvl = parsed
			}
			modes := rules.ModesFor(lvl)
			out := cmd.OutOrStdout()

			if a.outputFormat() == ui.FormatJSON {
				return writeJSON(out, modes)
			}

			data := pterm.TableData{{"CODE", "DESCRIPTION", "LEVEL"}}
			for _, m := range modes {
				code := m.Code
				if code == "" {
					code = "(empty)"
				}
				data = append(data, []string{code, m.Description, string(m.Level)})
			}
			return a.writeTable(out, data)
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", MsgFlagLevel)
	_ = cmd.RegisterFlagCompletionFunc("level", cobra.FixedCompletions(
		[]string{string(rules.LevelBasic), string(rules.LevelMedium), string(rules.LevelAdvanced)},
		cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// outputFormat resolves the configured format against stdout
func (a *app) outputFormat() ui.Format {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return ui.FormatText
	}
	return format
}

func (a *app) writeTable(w io.Writer, data pterm.TableData) error {
	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if !a.feedback(w).color {
		table = table.
			WithHeaderStyle(pterm.NewStyle()).
			WithSeparatorStyle(pterm.NewStyle()).
			WithStyle(pterm.NewStyle())
	}
	rendered, err := table.Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	_, err = fmt.Fprintln(w, rendered)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
