package interp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/petomalina/IFJ15/internal/ast"
	"github.com/petomalina/IFJ15/internal/errors"
	"github.com/petomalina/IFJ15/internal/types"
)

// execStatements interprets a statement list. The return slot's type
// starts at null and acts as a sentinel: the walk stops as soon as a
// return statement fills the slot, which propagates the early exit up
// through nested blocks, branches and loop iterations.
func (i *Interpreter) execStatements(stmts []ast.Statement, ret *Variable) error {
	ret.Type = types.Null

	for _, stmt := range stmts {
		if r, ok := stmt.(*ast.ReturnStatement); ok {
			if err := i.execReturn(r, ret); err != nil {
				return err
			}
		} else if err := i.execStatement(stmt, ret); err != nil {
			return err
		}
		if ret.Type != types.Null {
			return nil
		}
	}

	return nil
}

// execStatement dispatches a single statement.
func (i *Interpreter) execStatement(stmt ast.Statement, ret *Variable) error {
	switch node := stmt.(type) {
	case *ast.VarDecl:
		return i.execVarDecl(node)
	case *ast.AssignStatement:
		return i.execAssign(node)
	case *ast.ExpressionStatement:
		_, err := i.evalExpression(node.Expression)
		return err
	case *ast.IfStatement:
		return i.execIf(node, ret)
	case *ast.ForStatement:
		return i.execFor(node, ret)
	case *ast.BlockStatement:
		i.pushScope(BlockScope)
		err := i.execStatements(node.Statements, ret)
		if perr := i.popScope(); err == nil {
			err = perr
		}
		return err
	case *ast.CoutStatement:
		return i.execCout(node)
	case *ast.CinStatement:
		return i.execCin(node)
	case *ast.EmptyStatement:
		return nil
	}

	return errors.Newf(errors.CodeRuntimeOther, "statement node %T not recognized", stmt)
}

func (i *Interpreter) execVarDecl(decl *ast.VarDecl) error {
	if !i.env.IsCreatable(decl.Name.Value) {
		return errors.Newf(errors.CodeSemantic, "variable %q redefined", decl.Name.Value)
	}
	return i.declare(decl.Name.Value, decl.Type)
}

// execAssign evaluates the right-hand side, resolves the target slot
// (declaring it first for `type name = expr;` forms), adopts the value
// type for auto slots and writes the payload.
func (i *Interpreter) execAssign(node *ast.AssignStatement) error {
	result, err := i.evalExpression(node.Value)
	if err != nil {
		return err
	}

	if node.Decl != nil {
		if err := i.execVarDecl(node.Decl); err != nil {
			return err
		}
	}

	current, ok := i.lookup(node.Name.Value)
	if !ok {
		return errors.Newf(errors.CodeSemantic, "assignment to missing variable %q", node.Name.Value)
	}

	if current.Type == types.Auto {
		current.Type = result.Type
	}
	if !types.Compatible(current.Type, result.Type) {
		return errors.Newf(errors.CodeCompatibility,
			"cannot assign %s value to %s variable %q", result.Type, current.Type, node.Name.Value)
	}

	current.Value = convertForSlot(current.Type, result.Value)
	current.Initialized = true
	return nil
}

func (i *Interpreter) execReturn(node *ast.ReturnStatement, ret *Variable) error {
	if node.Value == nil {
		ret.Type = types.Null
		ret.Value = &NullValue{}
		ret.Initialized = false
		return nil
	}

	result, err := i.evalExpression(node.Value)
	if err != nil {
		return err
	}
	ret.Type = result.Type
	ret.Value = result.Value
	ret.Initialized = result.Initialized
	return nil
}

func (i *Interpreter) execIf(node *ast.IfStatement, ret *Variable) error {
	i.pushScope(BlockScope)
	defer i.popScope()

	cond, err := i.evalExpression(node.Condition)
	if err != nil {
		return err
	}
	if !types.Compatible(cond.Type, types.Bool) {
		return errors.New(errors.CodeCompatibility, "if condition is not bool")
	}

	block := node.Consequence
	if !truthy(cond.Value) {
		block = node.Alternative
	}
	if block == nil {
		return nil
	}
	return i.execStatements(block.Statements, ret)
}

// execFor interprets the three-clause loop. The init clause runs in an
// outer block frame; every iteration gets its own inner frame in which
// the body, the post clause and the condition re-evaluation run.
func (i *Interpreter) execFor(node *ast.ForStatement, ret *Variable) error {
	i.pushScope(BlockScope)
	defer i.popScope()

	if err := i.execStatement(node.Init, ret); err != nil {
		return err
	}

	cond, err := i.evalForCondition(node.Condition)
	if err != nil {
		return err
	}

	for truthy(cond.Value) && ret.Type == types.Null {
		i.pushScope(BlockScope)
		err := i.execStatements(node.Body.Statements, ret)
		if err == nil && ret.Type == types.Null {
			err = i.execStatement(node.Post, ret)
			if err == nil {
				cond, err = i.evalForCondition(node.Condition)
			}
		}
		if perr := i.popScope(); err == nil {
			err = perr
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) evalForCondition(expr ast.Expression) (*Variable, error) {
	cond, err := i.evalExpression(expr)
	if err != nil {
		return nil, err
	}
	if cond.Type != types.Bool {
		return nil, errors.New(errors.CodeSemantic, "for condition expects a boolean result")
	}
	return cond, nil
}

// execCout evaluates each inserted expression and writes its formatted
// form: ints in decimal, doubles in shortest round-trip form, strings
// verbatim, bools as true/false and null as NULL.
func (i *Interpreter) execCout(node *ast.CoutStatement) error {
	for _, expr := range node.Values {
		result, err := i.evalExpression(expr)
		if err != nil {
			return err
		}
		if !result.Initialized {
			return errors.New(errors.CodeUninitialized, "uninitialized variable used in cout")
		}

		switch result.Type {
		case types.Int, types.Double, types.String, types.Bool, types.Null:
			if _, err := io.WriteString(i.out, result.Value.String()); err != nil {
				return errors.Newf(errors.CodeInternal, "writing output: %v", err)
			}
		default:
			return errors.Newf(errors.CodeRuntimeOther, "value of type %s not supported in cout", result.Type)
		}
	}
	return nil
}

// execCin reads one input per target variable, parsed according to the
// target's declared type. Bool and null targets are rejected.
func (i *Interpreter) execCin(node *ast.CinStatement) error {
	for _, target := range node.Targets {
		variable, ok := i.lookup(target.Value)
		if !ok {
			return errors.Newf(errors.CodeSemantic, "cannot assign input to missing variable %q", target.Value)
		}

		switch variable.Type {
		case types.Int:
			word, err := i.readWord()
			if err != nil {
				return errors.New(errors.CodeNumberInput, "reading int from input")
			}
			n, err := strconv.ParseInt(word, 10, 64)
			if err != nil {
				return errors.Newf(errors.CodeNumberInput, "invalid int input %q", word)
			}
			variable.Value = &IntegerValue{Value: n}

		case types.Double:
			word, err := i.readWord()
			if err != nil {
				return errors.New(errors.CodeNumberInput, "reading double from input")
			}
			f, err := strconv.ParseFloat(word, 64)
			if err != nil {
				return errors.Newf(errors.CodeNumberInput, "invalid double input %q", word)
			}
			variable.Value = &FloatValue{Value: f}

		case types.String:
			rest, err := io.ReadAll(i.in)
			if err != nil {
				return errors.Newf(errors.CodeInternal, "reading string input: %v", err)
			}
			// Line-by-line reads in the reference drop the newlines.
			s := strings.NewReplacer("\r", "", "\n", "").Replace(string(rest))
			variable.Value = &StringValue{Value: s}

		default:
			return errors.Newf(errors.CodeRuntimeOther, "variable of type %s not supported in cin", variable.Type)
		}

		variable.Initialized = true
	}
	return nil
}

// readWord skips leading whitespace and reads one whitespace-delimited
// token from the input.
func (i *Interpreter) readWord() (string, error) {
	var sb strings.Builder

	for {
		b, err := i.in.ReadByte()
		if err != nil {
			return "", err
		}
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			sb.WriteByte(b)
			break
		}
	}

	for {
		b, err := i.in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			break
		}
		sb.WriteByte(b)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no input")
	}
	return sb.String(), nil
}
