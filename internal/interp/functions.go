package interp

import (
	"github.com/petomalina/IFJ15/internal/ast"
	"github.com/petomalina/IFJ15/internal/errors"
)

// builtinNames are the reserved runtime function names. No user function
// may shadow them.
var builtinNames = [...]string{"concat", "length", "substr", "find", "sort"}

// FunctionRegistry is the global lookup from function name to its AST
// definition. It is populated once at program start and read-only
// afterwards.
type FunctionRegistry struct {
	funcs    map[string]*ast.FunctionDecl
	builtins map[string]bool
}

// NewFunctionRegistry creates a registry with the built-in names
// reserved.
func NewFunctionRegistry() *FunctionRegistry {
	builtins := make(map[string]bool, len(builtinNames))
	for _, name := range builtinNames {
		builtins[name] = true
	}
	return &FunctionRegistry{
		funcs:    make(map[string]*ast.FunctionDecl),
		builtins: builtins,
	}
}

// Register adds a user function. Redefining a user function or shadowing
// a built-in is a semantic error.
func (r *FunctionRegistry) Register(fn *ast.FunctionDecl) error {
	if r.IsBuiltin(fn.Name) {
		return errors.Newf(errors.CodeSemantic, "function %q shadows a builtin", fn.Name)
	}
	if _, exists := r.funcs[fn.Name]; exists {
		return errors.Newf(errors.CodeSemantic, "function %q redefined", fn.Name)
	}
	r.funcs[fn.Name] = fn
	return nil
}

// Find returns the definition of a user function, or nil.
func (r *FunctionRegistry) Find(name string) *ast.FunctionDecl {
	return r.funcs[name]
}

// IsBuiltin reports whether the name is one of the reserved built-ins.
func (r *FunctionRegistry) IsBuiltin(name string) bool {
	return r.builtins[name]
}
