package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/joltage/internal/ctxlog"
)

// ValidateRegistry checks that every registered name has an implementation
// and that at least one selector and one reporter exist.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	if len(r.Selectors) == 0 {
		errs = append(errs, "no selector registered")
	}
	if len(r.Reporters) == 0 {
		errs = append(errs, "no reporter registered")
	}
	for name, s := range r.Selectors {
		if s == nil {
			errs = append(errs, fmt.Sprintf("selector '%s' has no implementation", name))
		}
	}
	for name, rep := range r.Reporters {
		if rep == nil {
			errs = append(errs, fmt.Sprintf("reporter '%s' has no implementation", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validated.", "selectors", sortedKeys(r.Selectors), "reporters", sortedKeys(r.Reporters))
	return nil
}
