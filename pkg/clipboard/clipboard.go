// Package clipboard copies text through a ranked list of strategies.
//
// The system clipboard is tried first. When no clipboard utility is present
// (headless hosts, SSH sessions) the OSC 52 strategy asks the terminal
// emulator to set the clipboard instead. Callers only see the aggregate
// Result.
package clipboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/logging"
	"github.com/rs/zerolog"
)

// Strategy is one way of putting text on the clipboard
type Strategy interface {
	Name() string
	// Available reports whether the strategy can run in this environment
	Available() bool
	Write(ctx context.Context, text string) error
}

// Copier copies text somewhere the user can paste it from
type Copier interface {
	Copy(ctx context.Context, text string) (Result, error)
}

// Attempt records what happened to one strategy
type Attempt struct {
	Strategy string `json:"strategy"`
	Skipped  bool   `json:"skipped"`
	Err      error  `json:"-"`
}

// Result is the outcome of a Copy call. Strategy is empty when every
// strategy failed or was skipped.
type Result struct {
	Strategy string    `json:"strategy"`
	Attempts []Attempt `json:"attempts"`
}

// Chain tries strategies in order until one succeeds
type Chain struct {
	strategies []Strategy
	logger     zerolog.Logger
}

// NewChain creates a chain with strategies in rank order
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{
		strategies: strategies,
		logger:     logging.GetLogger("clipboard"),
	}
}

// Strategies returns the strategy names in rank order
func (c *Chain) Strategies() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}

// Copy writes text with the first strategy that is available and succeeds.
// It returns ErrClipboardUnavailable when every strategy was skipped and
// ErrClipboardFailed when at least one ran and all of those failed.
func (c *Chain) Copy(ctx context.Context, text string) (Result, error) {
	var res Result
	var failures []string

	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrap(err, errors.ErrClipboardFailed, "copy cancelled")
		}

		if !s.Available() {
			c.logger.Debug().Str("strategy", s.Name()).Msg("Clipboard strategy unavailable, skipping")
			res.Attempts = append(res.Attempts, Attempt{Strategy: s.Name(), Skipped: true})
			continue
		}

		err := s.Write(ctx, text)
		res.Attempts = append(res.Attempts, Attempt{Strategy: s.Name(), Err: err})
		if err == nil {
			res.Strategy = s.Name()
			c.logger.Info().Str("strategy", s.Name()).Int("bytes", len(text)).Msg("Copied to clipboard")
			return res, nil
		}

		c.logger.Warn().Err(err).Str("strategy", s.Name()).Msg("Clipboard strategy failed, trying next")
		failures = append(failures, fmt.Sprintf("%s: %v", s.Name(), err))
	}

	if len(failures) == 0 {
		return res, errors.New(errors.ErrClipboardUnavailable, "no clipboard mechanism available").
			WithDetail("strategies", c.Strategies())
	}
	return res, errors.Newf(errors.ErrClipboardFailed, "copy failed (%s)", strings.Join(failures, "; ")).
		WithDetail("strategies", c.Strategies())
}
