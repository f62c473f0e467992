package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, evaluates it against
	// vars and translates it into the format-agnostic model. With no paths
	// the loader returns its built-in defaults.
	Load(ctx context.Context, vars Variables, paths ...string) (*Model, error)
}

// Variables are the values configuration expressions may refer to.
type Variables struct {
	DataDir  string
	Day      int
	Capacity int
}
