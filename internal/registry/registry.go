package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/vk/joltage/internal/aggregate"
	"github.com/vk/joltage/internal/joltage"
)

// ErrNotRegistered is returned when a name has no registered implementation.
var ErrNotRegistered = errors.New("not registered")

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Reporter writes the totals of a finished run.
type Reporter interface {
	Report(w io.Writer, res aggregate.Result) error
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(w io.Writer, res aggregate.Result) error

// Report calls f(w, res).
func (f ReporterFunc) Report(w io.Writer, res aggregate.Result) error { return f(w, res) }

// Registry holds the selectors and reporters available to a single
// application instance.
type Registry struct {
	Selectors map[string]joltage.Selector
	Reporters map[string]Reporter
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		Selectors: make(map[string]joltage.Selector),
		Reporters: make(map[string]Reporter),
	}
}

// RegisterSelector adds a selector under name. Registering the same name
// twice is a programming error and panics.
func (r *Registry) RegisterSelector(name string, s joltage.Selector) {
	if _, exists := r.Selectors[name]; exists {
		panic(fmt.Sprintf("registry: selector %q registered twice", name))
	}
	r.Selectors[name] = s
}

// RegisterReporter adds a reporter under name. Registering the same name
// twice is a programming error and panics.
func (r *Registry) RegisterReporter(name string, rep Reporter) {
	if _, exists := r.Reporters[name]; exists {
		panic(fmt.Sprintf("registry: reporter %q registered twice", name))
	}
	r.Reporters[name] = rep
}

// Selector returns the selector registered under name.
func (r *Registry) Selector(name string) (joltage.Selector, error) {
	s, ok := r.Selectors[name]
	if !ok {
		return nil, fmt.Errorf("selector %q %w (available: %v)", name, ErrNotRegistered, sortedKeys(r.Selectors))
	}
	return s, nil
}

// Reporter returns the reporter registered under name.
func (r *Registry) Reporter(name string) (Reporter, error) {
	rep, ok := r.Reporters[name]
	if !ok {
		return nil, fmt.Errorf("reporter %q %w (available: %v)", name, ErrNotRegistered, sortedKeys(r.Reporters))
	}
	return rep, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
