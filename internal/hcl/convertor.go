package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/joltage/internal/config"
)

// functions are the helpers available inside configuration expressions.
var functions = map[string]function.Function{
	"format": stdlib.FormatFunc,
	"join":   stdlib.JoinFunc,
	"lower":  stdlib.LowerFunc,
	"upper":  stdlib.UpperFunc,
	"min":    stdlib.MinFunc,
	"max":    stdlib.MaxFunc,
}

// ToCtyValue converts a native Go value into its corresponding cty.Value.
func ToCtyValue(v any) (cty.Value, error) {
	if v == nil {
		return cty.NilVal, nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// newEvalContext exposes vars as `var.*` together with the helper functions.
func newEvalContext(vars config.Variables) (*hcl.EvalContext, error) {
	val, err := ToCtyValue(evalVars{
		DataDir:  vars.DataDir,
		Day:      vars.Day,
		Capacity: vars.Capacity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build evaluation variables: %w", err)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": val},
		Functions: functions,
	}, nil
}
