package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"primecount/internal/domain"
	"primecount/internal/engine"
	"primecount/internal/host"
	"primecount/internal/report"
	"primecount/internal/services/bench"
)

// runCompare counts primes in args[0] with the optional thread count args[1].
func (c *cli) runCompare(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(c.cfg.Format)
	if err != nil {
		return err
	}

	fallback := c.appCtx.Host.DefaultThreads()
	if c.cfg.Threads != 0 {
		fallback = host.ResolveThreads(strconv.Itoa(c.cfg.Threads), fallback)
	}
	threads := fallback
	if len(args) > 1 {
		threads = host.ResolveThreads(args[1], fallback)
	}

	out := cmd.OutOrStdout()
	var (
		text *report.Text
		obs  bench.Observer
	)
	if format == report.FormatText {
		text = report.NewText(out)
		obs = text
	}

	req := bench.Request{Path: args[0], Threads: threads}
	cmp, err := c.appCtx.Bench.Compare(cmd.Context(), req, obs)
	switch {
	case errors.Is(err, bench.ErrNoNumbers):
		fmt.Fprintf(out, "No numbers found in file: %s\n", req.Path)
		return nil
	case errors.Is(err, engine.ErrInterrupted):
		return fmt.Errorf("interrupted: %w", err)
	case err != nil:
		return err
	}

	if text != nil {
		text.Finish(cmp)
		err = text.Err()
	} else {
		err = report.Render(out, format, cmp)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	c.record(cmd.Context(), cmp)
	return nil
}

// record stores and publishes cmp. Failures are logged and never fail the
// command.
func (c *cli) record(ctx context.Context, cmp domain.Comparison) {
	log := c.appCtx.Log
	if hs := c.appCtx.History; hs != nil {
		if err := hs.SaveRun(cmp); err != nil {
			log.WithError(err).Warn("could not save run history")
		}
	}
	if pub := c.appCtx.Publisher; pub != nil {
		if err := pub.PublishRun(ctx, cmp); err != nil {
			log.WithError(err).Warn("could not publish run")
		}
	}
}
