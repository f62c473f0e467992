package bank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBank(t *testing.T, s string) *Bank {
	t.Helper()
	b, err := Parse([]byte(s))
	require.NoError(t, err)
	return &b
}

func TestSlice_Valid(t *testing.T) {
	t.Parallel()

	b := mustBank(t, "0123456789")
	v, err := Slice(b, 2, 5)
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2, v.Start())
	assert.Equal(t, []uint8{2, 3, 4}, v.Digits())
	assert.Equal(t, uint8(4), v.At(2))
}

func TestSlice_FullRange(t *testing.T) {
	t.Parallel()

	b := mustBank(t, "3741992")
	v, err := b.Full()
	require.NoError(t, err)
	assert.Equal(t, b.Digits(), v.Digits())
}

func TestSlice_InvalidBounds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		start, end int
		rule       Rule
	}{
		{name: "start after end", start: 5, end: 3, rule: RuleInverted},
		{name: "end past bank", start: 0, end: 11, rule: RuleOutOfBounds},
		{name: "start at length", start: 10, end: 10, rule: RuleOutOfBounds},
		{name: "negative start", start: -1, end: 3, rule: RuleOutOfBounds},
	}

	b := mustBank(t, "0123456789")
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v, err := Slice(b, tc.start, tc.end)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBounds))
			assert.Equal(t, 0, v.Len())
			assert.Nil(t, v.Digits())

			var berr *BoundsError
			require.True(t, errors.As(err, &berr))
			assert.Equal(t, tc.rule, berr.Rule)
			assert.Contains(t, err.Error(), tc.rule.String())
		})
	}
}

func TestView_Tail(t *testing.T) {
	t.Parallel()

	b := mustBank(t, "12345")
	v, err := Slice(b, 1, 5)
	require.NoError(t, err)

	tail := v.Tail(1)
	assert.Equal(t, []uint8{4, 5}, tail.Digits())
	assert.Equal(t, 3, tail.Start())

	empty := v.Tail(3)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 5, empty.Start())
}

func TestView_AtPanicsOutOfRange(t *testing.T) {
	t.Parallel()

	b := mustBank(t, "12")
	v, err := b.Full()
	require.NoError(t, err)
	assert.Panics(t, func() { v.At(2) })
}
