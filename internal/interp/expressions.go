package interp

import (
	"github.com/petomalina/IFJ15/internal/ast"
	"github.com/petomalina/IFJ15/internal/errors"
	"github.com/petomalina/IFJ15/internal/types"
)

// evalExpression evaluates an expression to a Variable. Fresh results
// are always initialized; a bare variable reference returns the live
// slot so the caller sees its true initialization state.
func (i *Interpreter) evalExpression(expr ast.Expression) (*Variable, error) {
	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		return newResult(&IntegerValue{Value: node.Value}), nil
	case *ast.FloatLiteral:
		return newResult(&FloatValue{Value: node.Value}), nil
	case *ast.StringLiteral:
		return newResult(&StringValue{Value: node.Value}), nil
	case *ast.BooleanLiteral:
		return newResult(&BooleanValue{Value: node.Value}), nil
	case *ast.NullLiteral:
		return newResult(&NullValue{}), nil

	case *ast.Identifier:
		v, ok := i.lookup(node.Value)
		if !ok {
			return nil, errors.Newf(errors.CodeSemantic, "variable %q was not found", node.Value)
		}
		return v, nil

	case *ast.CallExpression:
		return i.callFunction(node)

	case *ast.BinaryExpression:
		return i.evalBinaryExpression(node)
	}

	return nil, errors.Newf(errors.CodeRuntimeOther, "expression node %T not recognized", expr)
}

func (i *Interpreter) evalBinaryExpression(node *ast.BinaryExpression) (*Variable, error) {
	left, err := i.evalExpression(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpression(node.Right)
	if err != nil {
		return nil, err
	}

	if !types.Compatible(left.Type, right.Type) {
		return nil, errors.Newf(errors.CodeCompatibility,
			"operands of %q have incompatible types %s and %s", node.Operator, left.Type, right.Type)
	}
	if !left.Initialized || !right.Initialized {
		return nil, errors.Newf(errors.CodeUninitialized,
			"uninitialized variable used in %q expression", node.Operator)
	}

	// A null operand propagates: the result is null and no computation
	// happens. The compatibility gate already restricts this to
	// null-null pairings.
	if left.Type == types.Null || right.Type == types.Null {
		return newResult(&NullValue{}), nil
	}

	switch node.Operator {
	case "+", "-", "*", "/":
		return i.evalArithmetic(node.Operator, left, right)
	case "<", ">", "<=", ">=":
		return i.evalOrdering(node.Operator, left, right)
	case "==", "!=":
		return i.evalEquality(node.Operator, left, right)
	}

	return nil, errors.Newf(errors.CodeRuntimeOther, "binary operator %q not recognized", node.Operator)
}

// evalArithmetic handles + - * /. Operands are numeric, except + which
// also concatenates two strings. A double on either side makes the
// result a double; otherwise the result is an int.
func (i *Interpreter) evalArithmetic(op string, left, right *Variable) (*Variable, error) {
	if left.Type == types.String {
		if op != "+" {
			return nil, errors.Newf(errors.CodeSemantic, "cannot perform binary %q operation on string", op)
		}
		ls := left.Value.(*StringValue)
		rs := right.Value.(*StringValue)
		return newResult(&StringValue{Value: ls.Value + rs.Value}), nil
	}
	if left.Type == types.Bool || right.Type == types.Bool {
		return nil, errors.Newf(errors.CodeSemantic, "cannot perform binary %q operation on bool", op)
	}

	if left.Type == types.Double || right.Type == types.Double {
		lf, rf := asFloat(left.Value), asFloat(right.Value)
		if op == "/" && rf == 0 {
			return nil, errors.New(errors.CodeDivByZero, "can't divide by zero")
		}
		var result float64
		switch op {
		case "+":
			result = lf + rf
		case "-":
			result = lf - rf
		case "*":
			result = lf * rf
		case "/":
			result = lf / rf
		}
		return newResult(&FloatValue{Value: result}), nil
	}

	li, ri := asInt(left.Value), asInt(right.Value)
	if op == "/" && ri == 0 {
		return nil, errors.New(errors.CodeDivByZero, "can't divide by zero")
	}
	var result int64
	switch op {
	case "+":
		result = li + ri
	case "-":
		result = li - ri
	case "*":
		result = li * ri
	case "/":
		result = li / ri
	}
	return newResult(&IntegerValue{Value: result}), nil
}

// evalOrdering handles < > <= >=. Numeric operands only.
func (i *Interpreter) evalOrdering(op string, left, right *Variable) (*Variable, error) {
	if left.Type == types.String || right.Type == types.String {
		return nil, errors.Newf(errors.CodeSemantic, "cannot perform binary %q operation on string", op)
	}
	if left.Type == types.Bool || right.Type == types.Bool {
		return nil, errors.Newf(errors.CodeSemantic, "cannot perform binary %q operation on bool", op)
	}

	var result bool
	if left.Type == types.Double || right.Type == types.Double {
		lf, rf := asFloat(left.Value), asFloat(right.Value)
		switch op {
		case "<":
			result = lf < rf
		case ">":
			result = lf > rf
		case "<=":
			result = lf <= rf
		case ">=":
			result = lf >= rf
		}
	} else {
		li, ri := asInt(left.Value), asInt(right.Value)
		switch op {
		case "<":
			result = li < ri
		case ">":
			result = li > ri
		case "<=":
			result = li <= ri
		case ">=":
			result = li >= ri
		}
	}
	return newResult(&BooleanValue{Value: result}), nil
}

// evalEquality handles == and !=. String equality is structural and its
// result is typed int, a quirk kept from the reference implementation.
func (i *Interpreter) evalEquality(op string, left, right *Variable) (*Variable, error) {
	var equal bool
	switch {
	case left.Type == types.String:
		ls := left.Value.(*StringValue)
		rs := right.Value.(*StringValue)
		equal = ls.Value == rs.Value
		if op == "!=" {
			equal = !equal
		}
		var n int64
		if equal {
			n = 1
		}
		return newResult(&IntegerValue{Value: n}), nil

	case left.Type == types.Bool && right.Type == types.Bool:
		lb := left.Value.(*BooleanValue)
		rb := right.Value.(*BooleanValue)
		equal = lb.Value == rb.Value

	case left.Type == types.Double || right.Type == types.Double:
		equal = asFloat(left.Value) == asFloat(right.Value)

	default:
		equal = asInt(left.Value) == asInt(right.Value)
	}

	if op == "!=" {
		equal = !equal
	}
	return newResult(&BooleanValue{Value: equal}), nil
}

// asFloat reads a numeric payload as a double. Bools count as 0/1 for
// the int-bool interchange.
func asFloat(v Value) float64 {
	switch val := v.(type) {
	case *IntegerValue:
		return float64(val.Value)
	case *FloatValue:
		return val.Value
	case *BooleanValue:
		if val.Value {
			return 1
		}
	}
	return 0
}

// asInt reads a numeric payload as an int.
func asInt(v Value) int64 {
	switch val := v.(type) {
	case *IntegerValue:
		return val.Value
	case *FloatValue:
		return int64(val.Value)
	case *BooleanValue:
		if val.Value {
			return 1
		}
	}
	return 0
}

// truthy reads a condition result as a bool. The compatibility gate
// guarantees the value is bool or int.
func truthy(v Value) bool {
	switch val := v.(type) {
	case *BooleanValue:
		return val.Value
	case *IntegerValue:
		return val.Value != 0
	}
	return false
}
