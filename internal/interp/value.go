// Package interp provides the tree-walking interpreter and runtime for
// IFJ15 programs.
package interp

import (
	"strconv"

	"github.com/petomalina/IFJ15/internal/types"
)

// Value represents a runtime value. All runtime values implement this
// interface.
type Value interface {
	// Type returns the value's runtime type.
	Type() types.Type
	// String returns the cout representation of the value.
	String() string
}

// IntegerValue represents an int value.
type IntegerValue struct {
	Value int64
}

func (i *IntegerValue) Type() types.Type { return types.Int }

func (i *IntegerValue) String() string {
	return strconv.FormatInt(i.Value, 10)
}

// FloatValue represents a double value.
type FloatValue struct {
	Value float64
}

func (f *FloatValue) Type() types.Type { return types.Double }

// String returns the shortest representation that round-trips.
func (f *FloatValue) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// StringValue represents a string value.
type StringValue struct {
	Value string
}

func (s *StringValue) Type() types.Type { return types.String }

func (s *StringValue) String() string { return s.Value }

// BooleanValue represents a bool value.
type BooleanValue struct {
	Value bool
}

func (b *BooleanValue) Type() types.Type { return types.Bool }

func (b *BooleanValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NullValue represents the null marker.
type NullValue struct{}

func (n *NullValue) Type() types.Type { return types.Null }

func (n *NullValue) String() string { return "NULL" }

// Variable is a typed slot holding a Value. Expression evaluation also
// produces Variables so that a read of a live variable exposes its true
// initialization state to the caller.
type Variable struct {
	// Type is the declared (or pinned) type of the slot. Auto only until
	// the first assignment.
	Type        types.Type
	Value       Value
	Initialized bool
}

// newResult wraps a freshly computed Value in an initialized Variable.
func newResult(v Value) *Variable {
	return &Variable{Type: v.Type(), Value: v, Initialized: true}
}

// newReturnSlot creates the return vehicle for a statement list. Its
// Null type doubles as the "no return seen yet" sentinel.
func newReturnSlot() *Variable {
	return &Variable{Type: types.Null, Value: &NullValue{}}
}

// zeroValue returns the payload a declared-but-unassigned variable of
// the given type starts with.
func zeroValue(t types.Type) Value {
	switch t {
	case types.Int:
		return &IntegerValue{}
	case types.Double:
		return &FloatValue{}
	case types.String:
		return &StringValue{}
	case types.Bool:
		return &BooleanValue{}
	}
	return &NullValue{}
}

// convertForSlot adapts a value to a slot's type under the implicit
// coercions: int widens to double, int and bool interchange. Any other
// pairing has already passed the compatibility gate and is returned
// unchanged.
func convertForSlot(slot types.Type, v Value) Value {
	switch slot {
	case types.Double:
		if iv, ok := v.(*IntegerValue); ok {
			return &FloatValue{Value: float64(iv.Value)}
		}
	case types.Int:
		if bv, ok := v.(*BooleanValue); ok {
			if bv.Value {
				return &IntegerValue{Value: 1}
			}
			return &IntegerValue{Value: 0}
		}
	case types.Bool:
		if iv, ok := v.(*IntegerValue); ok {
			return &BooleanValue{Value: iv.Value != 0}
		}
	}
	return v
}
