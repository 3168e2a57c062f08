package interp

import (
	"testing"

	"github.com/petomalina/IFJ15/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestValueStrings(t *testing.T) {
	tests := []struct {
		value Value
		typ   types.Type
		want  string
	}{
		{&IntegerValue{Value: 42}, types.Int, "42"},
		{&IntegerValue{Value: -7}, types.Int, "-7"},
		{&FloatValue{Value: 3.5}, types.Double, "3.5"},
		{&FloatValue{Value: 2}, types.Double, "2"},
		{&FloatValue{Value: 0.0001}, types.Double, "0.0001"},
		{&StringValue{Value: "hi"}, types.String, "hi"},
		{&BooleanValue{Value: true}, types.Bool, "true"},
		{&BooleanValue{Value: false}, types.Bool, "false"},
		{&NullValue{}, types.Null, "NULL"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.typ, tt.value.Type())
		assert.Equal(t, tt.want, tt.value.String())
	}
}

func TestZeroValue(t *testing.T) {
	assert.Equal(t, "0", zeroValue(types.Int).String())
	assert.Equal(t, "0", zeroValue(types.Double).String())
	assert.Equal(t, "", zeroValue(types.String).String())
	assert.Equal(t, "false", zeroValue(types.Bool).String())
	assert.Equal(t, "NULL", zeroValue(types.Auto).String())
}

func TestConvertForSlot(t *testing.T) {
	v := convertForSlot(types.Double, &IntegerValue{Value: 3})
	fv, ok := v.(*FloatValue)
	assert.True(t, ok)
	assert.Equal(t, float64(3), fv.Value)

	v = convertForSlot(types.Int, &BooleanValue{Value: true})
	iv, ok := v.(*IntegerValue)
	assert.True(t, ok)
	assert.Equal(t, int64(1), iv.Value)

	v = convertForSlot(types.Bool, &IntegerValue{Value: 0})
	bv, ok := v.(*BooleanValue)
	assert.True(t, ok)
	assert.False(t, bv.Value)

	// Same-type values pass through untouched.
	s := &StringValue{Value: "x"}
	assert.Same(t, Value(s), convertForSlot(types.String, s))
}

func TestNewResultNeverAuto(t *testing.T) {
	for _, v := range []Value{
		&IntegerValue{}, &FloatValue{}, &StringValue{}, &BooleanValue{}, &NullValue{},
	} {
		r := newResult(v)
		assert.True(t, r.Initialized)
		assert.NotEqual(t, types.Auto, r.Type)
	}
}
