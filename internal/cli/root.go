// Package cli implements the pdarules command line.
package cli

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/arthur-debert/pdarules/internal/version"
	"github.com/arthur-debert/pdarules/pkg/builder"
	"github.com/arthur-debert/pdarules/pkg/catalog"
	"github.com/arthur-debert/pdarules/pkg/clipboard"
	"github.com/arthur-debert/pdarules/pkg/cobrax/topics"
	"github.com/arthur-debert/pdarules/pkg/config"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/logging"
	"github.com/arthur-debert/pdarules/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Command annotations read by the root pre-run hook
const (
	annotationLogging = "pdarules.logging"
	annotationConfig  = "pdarules.config"

	loggingFileOnly = "file"
	configSkip      = "skip"
)

// app is the state shared by the commands of one invocation
type app struct {
	verbosity  int
	configPath string
	noColor    bool
	format     string

	cfg    *config.Config
	fs     afero.Fs
	copier clipboard.Copier

	topicRenderer *topics.GlamourRenderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{fs: afero.NewOsFs()})
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "pdarules",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationLogging] == loggingFileOnly {
				logging.SetupFileLogger(a.verbosity)
			} else {
				logging.SetupLogger(a.verbosity)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if a.noColor || !stdoutIsTerminal() {
				a.topicRenderer.Style = "notty"
			}
			if cmd.Annotations[annotationConfig] == configSkip {
				return nil
			}
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "info",
		Title: "REFERENCE:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	a.topicRenderer = topics.NewGlamourRenderer()
	tm := topics.New(topicFS(), topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   a.topicRenderer,
	})
	if err := tm.Load(); err != nil {
		log.Warn().Err(err).Msg("Failed to load help topics")
	}

	rootCmd.AddCommand(newRuleCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newBuildCmd(a))
	rootCmd.AddCommand(newHighlightCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newTypesCmd(a))
	rootCmd.AddCommand(newModesCmd(a))
	rootCmd.AddCommand(newTopicsCmd(tm))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topics.Initialize(rootCmd, tm)
	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			c.Annotations = map[string]string{annotationConfig: configSkip}
		}
	}

	return rootCmd
}

func (a *app) loadConfig() error {
	overrides := map[string]interface{}{}
	if a.format != "" {
		overrides["output.format"] = a.format
	}
	cfg, err := config.LoadWith(a.configPath, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// renderer picks the output renderer for w from the configured format
func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	if a.noColor && (format == ui.FormatAuto || format == ui.FormatTerminal) {
		format = ui.FormatText
	}
	return ui.NewRenderer(format, w)
}

func (a *app) feedback(w io.Writer) feedback {
	return feedback{w: w, color: !a.noColor && ui.DetectFormat(w) == ui.FormatTerminal}
}

// newBuilder creates a Builder wired to the configured clipboard
// strategies. OSC 52 sequences go to osc.
func (a *app) newBuilder(osc io.Writer, autofill bool) (*builder.Builder, error) {
	copier := a.copier
	if copier == nil {
		strategies, err := clipboard.FromNames(a.cfg.Clipboard.Strategies, osc)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid clipboard configuration")
		}
		copier = clipboard.NewChain(strategies...)
	}
	return builder.New(builder.Options{
		Catalog:     catalog.Default(),
		Copier:      copier,
		Placeholder: a.cfg.Builder.Placeholder,
		Autofill:    autofill,
	}), nil
}

func topicFS() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return topicFiles
	}
	return sub
}
