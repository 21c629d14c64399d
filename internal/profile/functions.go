package profile

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// featureFunc builds the feature() guard function: a membership probe that
// is true when the named feature is enabled in the active profile. Probing a
// feature no profile mentions is not an error, it is simply false, matching
// how feature gates behave in build systems.
func featureFunc(enabled map[string]bool) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.BoolVal(enabled[args[0].AsString()]), nil
		},
	})
}
