package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/joltage/internal/aggregate"
	"github.com/vk/joltage/internal/ctxlog"
)

// Run executes the main application logic: it resolves the configured
// source for the mode, aggregates every line and reports the totals.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.cfg.Mode, "strategy", a.cfg.Strategy)

	src, err := a.model.Source(a.cfg.Mode)
	if err != nil {
		return err
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return fmt.Errorf("unable to open file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing file: %w", cerr)
		}
	}()
	a.logger.Info("Reading banks.", "source", src.Name, "path", src.Path)

	parts := make([]aggregate.Part, len(a.model.Parts))
	for i, p := range a.model.Parts {
		parts[i] = aggregate.Part{Name: p.Name, Digits: p.Digits}
	}

	res, err := aggregate.New(a.selector, parts...).Run(ctx, f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src.Path, err)
	}
	a.logger.Info("Banks aggregated.", "lines", res.Lines)

	if err := a.reporter.Report(a.outW, res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
