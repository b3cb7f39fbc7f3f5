package clipboard

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/registry"
	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

// Strategy names accepted in configuration
const (
	StrategySystem = "system"
	StrategyOSC52  = "osc52"
)

// DefaultOrder is the strategy ranking used when none is configured
var DefaultOrder = []string{StrategySystem, StrategyOSC52}

// systemWriteAll is a package-level variable to allow mocking in tests.
var systemWriteAll = clipboard.WriteAll

// System uses the platform clipboard (pbcopy, xclip, xsel, wl-copy or the
// Windows API)
type System struct{}

func (System) Name() string { return StrategySystem }

func (System) Available() bool { return !clipboard.Unsupported }

func (System) Write(_ context.Context, text string) error {
	return systemWriteAll(text)
}

// OSC52 asks the terminal emulator to set the clipboard with an OSC 52
// escape sequence. It only runs when Out is a terminal.
type OSC52 struct {
	Out io.Writer
	// Force skips the terminal check
	Force bool
}

func (o OSC52) Name() string { return StrategyOSC52 }

func (o OSC52) Available() bool {
	if o.Out == nil {
		return false
	}
	if o.Force {
		return true
	}
	f, ok := o.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (o OSC52) Write(_ context.Context, text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(o.Out)
	return err
}

// Factory builds a strategy. OSC 52 sequences are written to out.
type Factory func(out io.Writer) Strategy

var factories = registry.New[Factory]()

func init() {
	registry.MustRegister(factories, StrategySystem, func(io.Writer) Strategy { return System{} })
	registry.MustRegister(factories, StrategyOSC52, func(out io.Writer) Strategy { return OSC52{Out: out} })
}

// Register makes a strategy available to configuration under name
func Register(name string, f Factory) error {
	return factories.Register(name, f)
}

// Names lists the registered strategy names in registration order
func Names() []string {
	return factories.Names()
}

// FromNames builds strategies from configured names, DefaultOrder when
// names is empty. OSC 52 sequences are written to out.
func FromNames(names []string, out io.Writer) ([]Strategy, error) {
	if len(names) == 0 {
		names = DefaultOrder
	}
	found, err := factories.Resolve(names...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "unknown clipboard strategy")
	}
	strategies := make([]Strategy, len(found))
	for i, factory := range found {
		strategies[i] = factory(out)
	}
	return strategies, nil
}
