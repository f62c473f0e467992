package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// MaxDigits bounds a part's selection length so totals stay within uint64.
const MaxDigits = 19

// ErrUnknownSource is returned when a run asks for a source that is not configured.
var ErrUnknownSource = errors.New("unknown source")

// Model is the unified, format-agnostic representation of a run's configuration.
type Model struct {
	Sources map[string]*Source
	Parts   []*Part
}

// Source is a named input file, e.g. "examples" or "input".
type Source struct {
	Name string
	Path string
}

// Part is one running total: the sum over all lines of the largest
// Digits-long selection.
type Part struct {
	Name   string
	Digits int
}

// NewModel returns an empty model ready to be populated by a loader.
func NewModel() *Model {
	return &Model{Sources: make(map[string]*Source)}
}

// Source returns the source registered under name.
func (m *Model) Source(name string) (*Source, error) {
	src, ok := m.Sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownSource, name, m.SourceNames())
	}
	return src, nil
}

// SourceNames returns the configured source names in sorted order.
func (m *Model) SourceNames() []string {
	names := make([]string, 0, len(m.Sources))
	for name := range m.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetPart adds p, replacing any part with the same name, and keeps the parts
// ordered by name. Numeric names compare as numbers, so "2" sorts before "10".
func (m *Model) SetPart(p *Part) {
	for i, existing := range m.Parts {
		if existing.Name == p.Name {
			m.Parts[i] = p
			return
		}
	}
	m.Parts = append(m.Parts, p)
	sort.SliceStable(m.Parts, func(i, j int) bool { return partLess(m.Parts[i].Name, m.Parts[j].Name) })
}

// partLess orders numeric names numerically, numeric names before other
// names, and other names lexically.
func partLess(a, b string) bool {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// Validate checks the model is runnable.
func (m *Model) Validate() error {
	if len(m.Sources) == 0 {
		return errors.New("no source configured")
	}
	for name, src := range m.Sources {
		if src.Path == "" {
			return fmt.Errorf("source %q: path must not be empty", name)
		}
	}
	if len(m.Parts) == 0 {
		return errors.New("no part configured")
	}
	for _, p := range m.Parts {
		if p.Digits < 1 || p.Digits > MaxDigits {
			return fmt.Errorf("part %q: digits must be between 1 and %d, got %d", p.Name, MaxDigits, p.Digits)
		}
	}
	return nil
}
