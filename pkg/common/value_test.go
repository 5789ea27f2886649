package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v5"
)

func TestValueAccessors(t *testing.T) {
	i, err := NewInt(42).AsInt()
	assert.Nil(t, err)
	assert.Equal(t, int64(42), i)

	i, err = NewNumber("3.0").AsInt()
	assert.Nil(t, err)
	assert.Equal(t, int64(3), i)

	_, err = NewNumber("3.5").AsInt()
	assert.NotNil(t, err)

	f, err := NewNumber("3.5").AsFloat()
	assert.Nil(t, err)
	assert.Equal(t, 3.5, f)

	s, err := NewString("hello").AsString()
	assert.Nil(t, err)
	assert.Equal(t, "hello", s)

	b, err := NewBool(true).AsBool()
	assert.Nil(t, err)
	assert.True(t, b)

	_, err = NewString("5").AsInt()
	assert.Equal(t, &ValueKindError{Want: Number, Got: String}, err)
	assert.Equal(t, "value is string, not number", err.Error())

	assert.True(t, NewNull().IsNull())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestValueJSON(t *testing.T) {
	v := NewMap(map[string]Value{
		"ids":   NewList(NewInt(1), NewNumber("2.50")),
		"force": NewBool(false),
		"name":  NewString("x"),
		"none":  NewNull(),
	})

	b, err := json.Marshal(v)
	assert.Nil(t, err)
	assert.JSONEq(t, `{"ids":[1,2.50],"force":false,"name":"x","none":null}`, string(b))

	var decoded Value

	assert.Nil(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, v, decoded)
	assert.Equal(t, `[1,"a"]`, NewList(NewInt(1), NewString("a")).String())
}

func TestValueMsgpack(t *testing.T) {
	v := NewList(NewInt(-7), NewInt(300), NewFloat(1.25), NewString("s"),
		NewMap(map[string]Value{"k": NewBool(true), "n": NewNull()}))

	b, err := msgpack.Marshal(v)
	assert.Nil(t, err)

	var decoded Value

	assert.Nil(t, msgpack.Unmarshal(b, &decoded))
	assert.Equal(t, v, decoded)
}

func TestValueInterface(t *testing.T) {
	args := Args{NewInt(1), NewNumber("1.5"), NewString("a")}

	assert.Equal(t, []interface{}{int64(1), 1.5, "a"}, args.Interface())

	kwargs := Kwargs{"b": NewBool(true), "a": NewNull()}

	assert.Equal(t, []string{"a", "b"}, kwargs.Keys())
	assert.Equal(t, map[string]interface{}{"a": nil, "b": true}, kwargs.Interface())

	_, ok := args.Get(3)
	assert.False(t, ok)

	v, ok := kwargs.Get("b")
	assert.True(t, ok)
	assert.Equal(t, NewBool(true), v)
}

func TestFromInterfaceUnsupported(t *testing.T) {
	_, err := FromInterface(struct{}{})

	assert.NotNil(t, err)
}
