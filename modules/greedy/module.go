// Package greedy registers the single-pass selector. It returns the same
// values as the recursive one.
package greedy

import (
	"github.com/vk/joltage/internal/joltage"
	"github.com/vk/joltage/internal/registry"
)

// Name is the -strategy value that selects this module.
const Name = "greedy"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the selector with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSelector(Name, joltage.SelectorFunc(joltage.Greedy))
}
