package aggregate

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/joltage/internal/bank"
	"github.com/vk/joltage/internal/ctxlog"
	"github.com/vk/joltage/internal/input"
	"github.com/vk/joltage/internal/joltage"
)

const exampleInput = `987654321111111
811111111111119
234234234234278
818181911112111
`

var defaultParts = []Part{{Name: "1", Digits: 2}, {Name: "2", Digits: 12}}

func totals(res Result) []uint64 {
	out := make([]uint64, len(res.Parts))
	for i, p := range res.Parts {
		out[i] = p.Total
	}
	return out
}

func TestRun_ExampleInput(t *testing.T) {
	t.Parallel()

	selectors := map[string]joltage.Selector{
		"recursive": joltage.SelectorFunc(joltage.Largest),
		"greedy":    joltage.SelectorFunc(joltage.Greedy),
	}
	for name, sel := range selectors {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := New(sel, defaultParts...).Run(context.Background(), strings.NewReader(exampleInput))
			require.NoError(t, err)
			assert.Equal(t, []uint64{357, 3121910778619}, totals(res))
			assert.Equal(t, 4, res.Lines)
			assert.Equal(t, defaultParts[1], res.Parts[1].Part)
		})
	}
}

func TestRun_SumsPerLineMaxima(t *testing.T) {
	t.Parallel()

	lines := []string{"123456789", "3741992", "000"}
	sel := joltage.SelectorFunc(joltage.Largest)

	var want uint64
	for _, l := range lines {
		b, err := bank.Parse([]byte(l))
		require.NoError(t, err)
		v, err := b.Full()
		require.NoError(t, err)
		want += joltage.Largest(v, 2)
	}

	res, err := New(sel, Part{Name: "only", Digits: 2}).Run(context.Background(), strings.NewReader(strings.Join(lines, "\r\n")))
	require.NoError(t, err)
	assert.Equal(t, []uint64{want}, totals(res))
	assert.Equal(t, uint64(89+99+0), want)
}

func TestRun_EmptyInputAndBlankLines(t *testing.T) {
	t.Parallel()

	sel := joltage.SelectorFunc(joltage.Greedy)

	res, err := New(sel, defaultParts...).Run(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 0}, totals(res))

	res, err = New(sel, defaultParts...).Run(context.Background(), strings.NewReader("\n91\n\n19\n"))
	require.NoError(t, err)
	assert.Equal(t, []uint64{91 + 19, 0}, totals(res))
	assert.Equal(t, 2, res.Lines)
}

func TestRun_LineTooLongAbortsRun(t *testing.T) {
	t.Parallel()

	in := exampleInput + strings.Repeat("9", bank.Capacity+1) + "\n" + exampleInput
	_, err := New(joltage.SelectorFunc(joltage.Largest), defaultParts...).Run(context.Background(), strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrLineTooLong)

	var lerr *LineError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 5, lerr.Line)
}

func TestRun_InvalidDigitAbortsRun(t *testing.T) {
	t.Parallel()

	_, err := New(joltage.SelectorFunc(joltage.Largest), defaultParts...).Run(context.Background(), strings.NewReader("12\n1x3\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, bank.ErrInvalidDigit)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(joltage.SelectorFunc(joltage.Largest), defaultParts...).Run(ctx, strings.NewReader(exampleInput))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsPerLineValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, err := New(joltage.SelectorFunc(joltage.Largest), defaultParts...).Run(ctx, strings.NewReader("818181911112111\n"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "line=1")
	assert.Contains(t, out, "value=92")
	assert.Contains(t, out, "value=888911112111")
}

func TestNew_RequiresParts(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New(joltage.SelectorFunc(joltage.Largest)) })
}

func TestRun_TotalOverflowAbortsRun(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// One 19-digit maximum fits in a uint64; the sum of two does not.
	nines := strings.Repeat("9", 19)
	in := nines + "\n" + nines + "\n"

	// --- Act ---
	_, err := New(joltage.SelectorFunc(joltage.Largest), Part{Name: "1", Digits: 19}).Run(context.Background(), strings.NewReader(in))

	// --- Assert ---
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)

	var lerr *LineError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 2, lerr.Line)
}

func TestRun_LargestSumStillFits(t *testing.T) {
	t.Parallel()

	// 18446744073709551615 is the uint64 maximum; splitting it over two
	// lines must not trip the overflow check.
	in := "9999999999999999999\n8446744073709551616\n"
	res, err := New(joltage.SelectorFunc(joltage.Greedy), Part{Name: "1", Digits: 19}).Run(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []uint64{18446744073709551615}, totals(res))
}

func TestFold_EmptyBankDegradesToZero(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	a := New(joltage.SelectorFunc(joltage.Largest), defaultParts...)
	res := Result{Parts: []PartTotal{{Part: defaultParts[0], Total: 5}, {Part: defaultParts[1], Total: 7}}}

	// --- Act ---
	err := a.fold(ctx, nil, &res)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 7}, totals(res))
	assert.Contains(t, buf.String(), "Invalid bank view.")
	assert.Contains(t, buf.String(), "slice must be within bounds")
}
