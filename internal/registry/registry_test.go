package registry

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/joltage/internal/aggregate"
	"github.com/vk/joltage/internal/joltage"
)

func noopReporter(io.Writer, aggregate.Result) error { return nil }

func TestRegistry_Lookup(t *testing.T) {
	r := New()
	r.RegisterSelector("greedy", joltage.SelectorFunc(joltage.Greedy))
	r.RegisterReporter("none", ReporterFunc(noopReporter))

	s, err := r.Selector("greedy")
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = r.Selector("magic")
	require.ErrorIs(t, err, ErrNotRegistered)
	assert.Contains(t, err.Error(), "[greedy]")

	_, err = r.Reporter("none")
	require.NoError(t, err)

	_, err = r.Reporter("yaml")
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := New()
	r.RegisterSelector("greedy", joltage.SelectorFunc(joltage.Greedy))

	assert.Panics(t, func() { r.RegisterSelector("greedy", joltage.SelectorFunc(joltage.Largest)) })
}

func TestValidateRegistry(t *testing.T) {
	r := New()
	err := r.ValidateRegistry(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no selector registered")
	assert.Contains(t, err.Error(), "no reporter registered")

	r.RegisterSelector("greedy", joltage.SelectorFunc(joltage.Greedy))
	r.RegisterReporter("nil", nil)
	err = r.ValidateRegistry(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reporter 'nil' has no implementation")

	delete(r.Reporters, "nil")
	r.RegisterReporter("none", ReporterFunc(noopReporter))
	assert.NoError(t, r.ValidateRegistry(context.Background()))
}
