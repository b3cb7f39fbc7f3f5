package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/pdarules/pkg/builder"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/export"
	"github.com/pterm/pterm"
)

const copyTimeout = 5 * time.Second

// feedback prints status lines with pterm prefixes. Without color the
// prefix text is printed as a plain word.
type feedback struct {
	w     io.Writer
	color bool
}

func (f feedback) success(format string, a ...interface{}) {
	f.print(pterm.Success, format, a...)
}

func (f feedback) warning(format string, a ...interface{}) {
	f.print(pterm.Warning, format, a...)
}

func (f feedback) info(format string, a ...interface{}) {
	f.print(pterm.Info, format, a...)
}

func (f feedback) print(p pterm.PrefixPrinter, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if !f.color {
		_, _ = fmt.Fprintf(f.w, "%s %s\n", p.Prefix.Text, msg)
		return
	}
	_, _ = fmt.Fprintf(f.w, "%s %s\n",
		p.Prefix.Style.Sprint(" "+p.Prefix.Text+" "),
		p.MessageStyle.Sprint(msg))
}

// errorMessage returns the message of a coded error without its code
func errorMessage(err error) string {
	var pe *errors.PdaError
	if stderrors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}

func ruleCount(n int) string {
	if n == 1 {
		return "1 rule"
	}
	return fmt.Sprintf("%d rules", n)
}

// deliverOptions are the shared --copy/--output/--force flags
type deliverOptions struct {
	copy   bool
	output string
	force  bool
}

// deliver copies and saves the committed rules of b as requested
func deliver(ctx context.Context, b *builder.Builder, a *app, opts deliverOptions, fb feedback) error {
	if opts.output != "" {
		if err := export.WriteTranscript(a.fs, opts.output, b.Text(), opts.force); err != nil {
			return err
		}
		fb.success(MsgSaved, ruleCount(b.Len()), opts.output)
	}

	if opts.copy {
		ctx, cancel := context.WithTimeout(ctx, copyTimeout)
		defer cancel()
		result, err := b.Copy(ctx)
		if err != nil {
			return err
		}
		fb.success(MsgCopied, ruleCount(b.Len()), result.Strategy)
	}
	return nil
}
