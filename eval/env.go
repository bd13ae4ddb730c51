package eval

import (
	"github.com/dandelion-json/dandelion/ir"
)

type Env map[string]any

// DocName is the name under which the evaluated tree is visible to
// expressions.
const DocName = "doc"

// NewEnv returns an environment binding doc to DocName.
func NewEnv(doc *ir.Node) Env {
	return Env{DocName: ir.ToAny(doc)}
}

// With returns a copy of env with the bindings in other added.
func (env Env) With(other Env) Env {
	res := make(Env, len(env)+len(other))
	for k, v := range env {
		res[k] = v
	}
	for k, v := range other {
		res[k] = v
	}
	return res
}
