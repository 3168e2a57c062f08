package interp

import (
	"github.com/petomalina/IFJ15/internal/ast"
	"github.com/petomalina/IFJ15/internal/errors"
	"github.com/petomalina/IFJ15/internal/types"
)

// callFunction implements the call protocol. Built-in names dispatch to
// the runtime built-ins; user calls bind arguments into a fresh frame
// and interpret the body behind a function barrier.
//
// The frame is pushed as a block first and promoted to a function frame
// only after the arguments are bound: argument expressions must still
// see the caller's scope, while the body must not.
func (i *Interpreter) callFunction(call *ast.CallExpression) (*Variable, error) {
	if i.funcs.IsBuiltin(call.Function) {
		return i.callBuiltin(call)
	}

	fn := i.funcs.Find(call.Function)
	if fn == nil {
		return nil, errors.Newf(errors.CodeSemantic, "calling function %q that was not defined", call.Function)
	}
	if len(call.Arguments) != len(fn.Parameters) {
		return nil, errors.Newf(errors.CodeSemantic,
			"function %q expects %d arguments, got %d", call.Function, len(fn.Parameters), len(call.Arguments))
	}

	i.pushScope(BlockScope)

	for idx, arg := range call.Arguments {
		symbol, err := i.evalExpression(arg)
		if err != nil {
			i.popScope()
			return nil, err
		}
		// Pass by value: the parameter gets its own slot.
		param := fn.Parameters[idx]
		i.env.Define(param.Name.Value, &Variable{
			Type:        symbol.Type,
			Value:       symbol.Value,
			Initialized: true,
		})
	}

	i.env.MarkFunction()

	ret := newReturnSlot()
	if err := i.execStatements(fn.Body.Statements, ret); err != nil {
		i.popScope()
		return nil, err
	}

	if err := i.popScope(); err != nil {
		return nil, err
	}

	if !types.Compatible(ret.Type, fn.ReturnType) {
		return nil, errors.Newf(errors.CodeCompatibility,
			"function %q cannot return %s as %s", call.Function, ret.Type, fn.ReturnType)
	}

	return ret, nil
}
