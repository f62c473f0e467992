// Package print registers the reporters that write a run's totals.
package print

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/joltage/internal/aggregate"
	"github.com/vk/joltage/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Text writes one "part <name>: <total>" line per part, in part order.
func Text(w io.Writer, res aggregate.Result) error {
	for _, p := range res.Parts {
		if _, err := fmt.Fprintf(w, "part %s: %d\n", p.Name, p.Total); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the whole result as a single JSON document.
func JSON(w io.Writer, res aggregate.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// Register registers the reporters with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterReporter("text", registry.ReporterFunc(Text))
	r.RegisterReporter("json", registry.ReporterFunc(JSON))
}
