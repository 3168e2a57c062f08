package interp

import (
	"sort"
	"strings"

	"github.com/petomalina/IFJ15/internal/ast"
	"github.com/petomalina/IFJ15/internal/errors"
	"github.com/petomalina/IFJ15/internal/types"
)

// callBuiltin dispatches one of the five reserved string built-ins.
// Arity is checked before any argument is evaluated; arguments then
// evaluate left-to-right and are type-checked against the builtin's
// signature. Any mismatch is a compatibility error.
func (i *Interpreter) callBuiltin(call *ast.CallExpression) (*Variable, error) {
	var arity int
	switch call.Function {
	case "length", "sort":
		arity = 1
	case "concat", "find":
		arity = 2
	case "substr":
		arity = 3
	default:
		return nil, errors.Newf(errors.CodeInternal, "unknown builtin %q", call.Function)
	}

	if len(call.Arguments) != arity {
		return nil, errors.Newf(errors.CodeCompatibility,
			"%s() expects %d arguments, got %d", call.Function, arity, len(call.Arguments))
	}

	args := make([]*Variable, 0, arity)
	for _, expr := range call.Arguments {
		arg, err := i.evalExpression(expr)
		if err != nil {
			return nil, err
		}
		if !arg.Initialized {
			return nil, errors.Newf(errors.CodeUninitialized,
				"uninitialized variable passed to %s()", call.Function)
		}
		args = append(args, arg)
	}

	switch call.Function {
	case "concat":
		return builtinConcat(args)
	case "length":
		return builtinLength(args)
	case "substr":
		return builtinSubstr(args)
	case "sort":
		return builtinSort(args)
	case "find":
		return builtinFind(args)
	}
	return nil, errors.Newf(errors.CodeInternal, "unknown builtin %q", call.Function)
}

func builtinString(name string, arg *Variable) (string, error) {
	if arg.Type != types.String {
		return "", errors.Newf(errors.CodeCompatibility, "%s() expects a string parameter, got %s", name, arg.Type)
	}
	return arg.Value.(*StringValue).Value, nil
}

func builtinInt(name string, arg *Variable) (int64, error) {
	if arg.Type != types.Int {
		return 0, errors.Newf(errors.CodeCompatibility, "%s() expects an int parameter, got %s", name, arg.Type)
	}
	return asInt(arg.Value), nil
}

// builtinConcat joins two strings byte by byte.
func builtinConcat(args []*Variable) (*Variable, error) {
	s1, err := builtinString("concat", args[0])
	if err != nil {
		return nil, err
	}
	s2, err := builtinString("concat", args[1])
	if err != nil {
		return nil, err
	}
	return newResult(&StringValue{Value: s1 + s2}), nil
}

// builtinLength returns the byte length of a string.
func builtinLength(args []*Variable) (*Variable, error) {
	s, err := builtinString("length", args[0])
	if err != nil {
		return nil, err
	}
	return newResult(&IntegerValue{Value: int64(len(s))}), nil
}

// builtinSubstr returns the substring at the given offset and length.
// Out-of-range offsets and lengths clamp into the string.
func builtinSubstr(args []*Variable) (*Variable, error) {
	s, err := builtinString("substr", args[0])
	if err != nil {
		return nil, err
	}
	offset, err := builtinInt("substr", args[1])
	if err != nil {
		return nil, err
	}
	count, err := builtinInt("substr", args[2])
	if err != nil {
		return nil, err
	}

	start := int(offset)
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		start = len(s)
	}
	end := start + int(count)
	if count < 0 {
		end = start
	}
	if end > len(s) {
		end = len(s)
	}

	return newResult(&StringValue{Value: s[start:end]}), nil
}

// builtinSort returns the string's bytes in non-decreasing order.
func builtinSort(args []*Variable) (*Variable, error) {
	s, err := builtinString("sort", args[0])
	if err != nil {
		return nil, err
	}

	bytes := []byte(s)
	sort.Slice(bytes, func(a, b int) bool { return bytes[a] < bytes[b] })
	return newResult(&StringValue{Value: string(bytes)}), nil
}

// builtinFind returns the first byte offset of the second string in the
// first, or -1 when absent. An empty needle is found at offset 0.
func builtinFind(args []*Variable) (*Variable, error) {
	s, err := builtinString("find", args[0])
	if err != nil {
		return nil, err
	}
	search, err := builtinString("find", args[1])
	if err != nil {
		return nil, err
	}
	return newResult(&IntegerValue{Value: int64(strings.Index(s, search))}), nil
}
