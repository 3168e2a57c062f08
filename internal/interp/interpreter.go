package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/petomalina/IFJ15/internal/ast"
	"github.com/petomalina/IFJ15/internal/errors"
	"github.com/petomalina/IFJ15/internal/types"
)

// Interpreter executes an IFJ15 program AST. All state is held on the
// struct, so multiple interpreters can run independently in one process.
type Interpreter struct {
	funcs *FunctionRegistry
	env   *Environment
	out   io.Writer
	in    *bufio.Reader
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithInput sets the reader cin extracts from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(i *Interpreter) {
		i.in = bufio.NewReader(r)
	}
}

// New creates an interpreter writing program output to out.
func New(out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		funcs: NewFunctionRegistry(),
		out:   out,
		in:    bufio.NewReader(os.Stdin),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run executes a program: registers every function definition, locates
// main and interprets its body in a fresh function scope. The returned
// error carries a taxonomy code suitable for the process exit status.
func (i *Interpreter) Run(program *ast.Program) error {
	if len(program.Functions) == 0 {
		return errors.New(errors.CodeSemantic, "no function was defined")
	}
	for _, fn := range program.Functions {
		if err := i.funcs.Register(fn); err != nil {
			return err
		}
	}

	main := i.funcs.Find("main")
	if main == nil {
		return errors.New(errors.CodeSemantic, "main function could not be found")
	}

	i.env = NewEnvironment(FunctionScope)
	ret := newReturnSlot()
	err := i.execStatements(main.Body.Statements, ret)
	i.env = nil
	return err
}

// pushScope enters a new innermost frame.
func (i *Interpreter) pushScope(kind ScopeKind) {
	i.env = NewEnclosedEnvironment(i.env, kind)
}

// popScope leaves the innermost frame.
func (i *Interpreter) popScope() error {
	if i.env == nil {
		return errors.New(errors.CodeInternal, "scope stack underflow")
	}
	i.env = i.env.Outer()
	return nil
}

// lookup resolves a variable through the scope stack.
func (i *Interpreter) lookup(name string) (*Variable, bool) {
	return i.env.Get(name)
}

// declare creates a variable in the innermost frame.
func (i *Interpreter) declare(name string, t types.Type) error {
	v := &Variable{Type: t, Value: zeroValue(t)}
	if !i.env.Declare(name, v) {
		return errors.Newf(errors.CodeSemantic, "variable %q redefined", name)
	}
	return nil
}
