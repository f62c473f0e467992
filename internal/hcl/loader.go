package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/joltage/internal/config"
	"github.com/vk/joltage/internal/ctxlog"
	"github.com/vk/joltage/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load evaluates DefaultConfig and then every .hcl file found under paths,
// in order. A later block replaces an earlier one with the same label.
func (l *Loader) Load(ctx context.Context, vars config.Variables, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	evalCtx, err := newEvalContext(vars)
	if err != nil {
		return nil, err
	}

	model := config.NewModel()
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL([]byte(DefaultConfig), defaultFilename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse built-in configuration: %w", diags)
	}
	if err := l.decodeInto(model, file.Body, evalCtx, defaultFilename); err != nil {
		return nil, err
	}

	hclFiles, err := fsutil.FindFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(paths) > 0 && len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	for _, name := range hclFiles {
		file, diags := parser.ParseHCLFile(name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
		}
		if err := l.decodeInto(model, file.Body, evalCtx, name); err != nil {
			return nil, err
		}
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("HCL loading complete.", "sources", model.SourceNames(), "parts", len(model.Parts))
	return model, nil
}

// decodeInto decodes one file body and merges its blocks into model.
func (l *Loader) decodeInto(model *config.Model, body hcl.Body, evalCtx *hcl.EvalContext, name string) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, evalCtx, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	for _, s := range root.Sources {
		src := translateSource(s)
		model.Sources[src.Name] = src
	}
	for _, p := range root.Parts {
		model.SetPart(translatePart(p))
	}
	return nil
}
