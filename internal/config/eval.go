package config

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// envFunc returns the value of an environment variable, or "" when unset.
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

func evalContext(configDir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(configDir),
		},
		Functions: map[string]function.Function{
			"env":    envFunc,
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
		},
	}
}
