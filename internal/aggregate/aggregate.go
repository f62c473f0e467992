// Package aggregate folds bank lines into one running total per configured
// part. Lines are processed strictly in order on the caller's goroutine.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/vk/joltage/internal/bank"
	"github.com/vk/joltage/internal/ctxlog"
	"github.com/vk/joltage/internal/input"
	"github.com/vk/joltage/internal/joltage"
)

// ErrOverflow is returned when a running total no longer fits in a uint64.
var ErrOverflow = errors.New("running total overflows uint64")

// Part is a named selection length whose per-line maxima are summed.
type Part struct {
	Name   string `json:"name"`
	Digits int    `json:"digits"`
}

// PartTotal is the sum of one part's per-line maxima.
type PartTotal struct {
	Part
	Total uint64 `json:"total"`
}

// Result holds the totals of a finished run.
type Result struct {
	Parts []PartTotal `json:"parts"`
	Lines int         `json:"lines"`
}

// LineError ties a failure to the 1-based input line that caused it.
type LineError struct {
	Line int
	Err  error
}

// Error implements the error interface for LineError.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error { return e.Err }

// Aggregator runs a selector over every line for each of its parts.
type Aggregator struct {
	selector joltage.Selector
	parts    []Part
}

// New creates an Aggregator. It panics if no parts are given.
func New(selector joltage.Selector, parts ...Part) *Aggregator {
	if len(parts) == 0 {
		panic("aggregate: at least one part is required")
	}
	return &Aggregator{selector: selector, parts: append([]Part(nil), parts...)}
}

// Run consumes r line by line. The first malformed line aborts the run;
// totals gathered so far are discarded.
func (a *Aggregator) Run(ctx context.Context, r io.Reader) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Aggregation started.", "parts", len(a.parts))

	res := Result{Parts: make([]PartTotal, len(a.parts))}
	for i, p := range a.parts {
		res.Parts[i].Part = p
	}

	lines := input.NewReader(r, bank.Capacity)
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		raw, err := lines.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, &LineError{Line: lines.Line(), Err: err}
		}
		if len(raw) == 0 {
			logger.Debug("Skipping blank line.", "line", lines.Line())
			continue
		}

		if err := a.fold(ctxlog.With(ctx, "line", lines.Line()), raw, &res); err != nil {
			return Result{}, &LineError{Line: lines.Line(), Err: err}
		}
		res.Lines++
	}

	logger.Debug("Aggregation finished.", "lines", res.Lines)
	return res, nil
}

// fold adds one line's maxima to res.
func (a *Aggregator) fold(ctx context.Context, raw []byte, res *Result) error {
	logger := ctxlog.FromContext(ctx)

	b, err := bank.Parse(raw)
	if err != nil {
		return err
	}

	view, err := bank.Slice(&b, 0, b.Len())
	if err != nil {
		// An invalid view degrades to the empty view, which selects to 0.
		logger.Warn("Invalid bank view.", "error", err)
	}

	for i := range res.Parts {
		value := a.selector.Select(view, res.Parts[i].Digits)
		sum, carry := bits.Add64(res.Parts[i].Total, value, 0)
		if carry != 0 {
			return fmt.Errorf("%w: part %s adding %d to %d", ErrOverflow, res.Parts[i].Name, value, res.Parts[i].Total)
		}
		res.Parts[i].Total = sum
		logger.Debug("Line selected.", "part", res.Parts[i].Name, "digits", res.Parts[i].Digits, "value", value)
	}
	return nil
}
