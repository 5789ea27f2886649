package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

//Kind enumerates the variants a Value can hold
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	List
	Map
)

var kindNames = []string{"null", "bool", "number", "string", "list", "map"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

//Value is a decoded task argument. Numbers keep their literal text
type Value struct {
	kind Kind

	b bool
	n json.Number
	s string
	l []Value
	m map[string]Value
}

//ValueKindError is returned by Value accessors on kind mismatch
type ValueKindError struct {
	Want Kind
	Got  Kind
}

func (e *ValueKindError) Error() string {
	return fmt.Sprintf("value is %s, not %s", e.Got, e.Want)
}

func NewNull() Value {
	return Value{kind: Null}
}

func NewBool(b bool) Value {
	return Value{kind: Bool, b: b}
}

func NewNumber(n json.Number) Value {
	return Value{kind: Number, n: n}
}

func NewInt(i int64) Value {
	return NewNumber(json.Number(strconv.FormatInt(i, 10)))
}

func NewFloat(f float64) Value {
	return NewNumber(json.Number(strconv.FormatFloat(f, 'g', -1, 64)))
}

func NewString(s string) Value {
	return Value{kind: String, s: s}
}

func NewList(values ...Value) Value {
	if values == nil {
		values = []Value{}
	}

	return Value{kind: List, l: values}
}

func NewMap(values map[string]Value) Value {
	if values == nil {
		values = map[string]Value{}
	}

	return Value{kind: Map, m: values}
}

//FromInterface converts decoded JSON or MessagePack data into a Value
func FromInterface(i interface{}) (Value, error) {
	switch v := i.(type) {
	case nil:
		return NewNull(), nil
	case Value:
		return v, nil
	case bool:
		return NewBool(v), nil
	case json.Number:
		return NewNumber(v), nil
	case *numberLiteral:
		return NewNumber(json.Number(*v)), nil
	case string:
		return NewString(v), nil
	case float64:
		return NewFloat(v), nil
	case float32:
		return NewFloat(float64(v)), nil
	case int:
		return NewInt(int64(v)), nil
	case int8:
		return NewInt(int64(v)), nil
	case int16:
		return NewInt(int64(v)), nil
	case int32:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint:
		return NewNumber(json.Number(strconv.FormatUint(uint64(v), 10))), nil
	case uint8:
		return NewInt(int64(v)), nil
	case uint16:
		return NewInt(int64(v)), nil
	case uint32:
		return NewInt(int64(v)), nil
	case uint64:
		return NewNumber(json.Number(strconv.FormatUint(v, 10))), nil
	case []interface{}:
		l := make([]Value, 0, len(v))

		for _, e := range v {
			ev, err := FromInterface(e)

			if err != nil {
				return Value{}, err
			}

			l = append(l, ev)
		}

		return NewList(l...), nil
	case map[string]interface{}:
		m := make(map[string]Value, len(v))

		for k, e := range v {
			ev, err := FromInterface(e)

			if err != nil {
				return Value{}, err
			}

			m[k] = ev
		}

		return NewMap(m), nil
	case map[interface{}]interface{}:
		m := make(map[string]Value, len(v))

		for k, e := range v {
			ev, err := FromInterface(e)

			if err != nil {
				return Value{}, err
			}

			m[fmt.Sprint(k)] = ev
		}

		return NewMap(m), nil
	}

	return Value{}, errors.Errorf("unsupported value type %T", i)
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == Null
}

func (v Value) AsBool() (bool, error) {
	if v.kind != Bool {
		return false, &ValueKindError{Want: Bool, Got: v.kind}
	}

	return v.b, nil
}

//AsInt returns integral numbers. Numbers with a fraction are rejected
func (v Value) AsInt() (int64, error) {
	if v.kind != Number {
		return 0, &ValueKindError{Want: Number, Got: v.kind}
	}

	if i, err := v.n.Int64(); err == nil {
		return i, nil
	}

	f, err := v.n.Float64()

	if err != nil {
		return 0, errors.Wrapf(err, "number %s", v.n)
	}

	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.Errorf("number %s is not an integer", v.n)
	}

	return int64(f), nil
}

func (v Value) AsFloat() (float64, error) {
	if v.kind != Number {
		return 0, &ValueKindError{Want: Number, Got: v.kind}
	}

	f, err := v.n.Float64()

	return f, errors.Wrapf(err, "number %s", v.n)
}

func (v Value) AsNumber() (json.Number, error) {
	if v.kind != Number {
		return "", &ValueKindError{Want: Number, Got: v.kind}
	}

	return v.n, nil
}

func (v Value) AsString() (string, error) {
	if v.kind != String {
		return "", &ValueKindError{Want: String, Got: v.kind}
	}

	return v.s, nil
}

func (v Value) AsList() ([]Value, error) {
	if v.kind != List {
		return nil, &ValueKindError{Want: List, Got: v.kind}
	}

	return v.l, nil
}

func (v Value) AsMap() (map[string]Value, error) {
	if v.kind != Map {
		return nil, &ValueKindError{Want: Map, Got: v.kind}
	}

	return v.m, nil
}

//Interface converts Value into plain Go data. Integral numbers become int64, others float64
func (v Value) Interface() interface{} {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		if i, err := v.n.Int64(); err == nil {
			return i
		}

		f, _ := v.n.Float64()

		return f
	case String:
		return v.s
	case List:
		l := make([]interface{}, 0, len(v.l))

		for _, e := range v.l {
			l = append(l, e.Interface())
		}

		return l
	case Map:
		m := make(map[string]interface{}, len(v.m))

		for k, e := range v.m {
			m[k] = e.Interface()
		}

		return m
	}

	return nil
}

func (v Value) jsonInterface() interface{} {
	switch v.kind {
	case Number:
		return v.n
	case List:
		l := make([]interface{}, 0, len(v.l))

		for _, e := range v.l {
			l = append(l, e.jsonInterface())
		}

		return l
	case Map:
		m := make(map[string]interface{}, len(v.m))

		for k, e := range v.m {
			m[k] = e.jsonInterface()
		}

		return m
	}

	return v.Interface()
}

//String renders Value as JSON
func (v Value) String() string {
	b, err := json.Marshal(v)

	if err != nil {
		return fmt.Sprintf("%%!(%s)", err)
	}

	return string(b)
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.jsonInterface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var i interface{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&i); err != nil {
		return err
	}

	decoded, err := FromInterface(i)

	if err != nil {
		return err
	}

	*v = decoded

	return nil
}

//NumberExtId tags MessagePack ext values holding number literal text
const NumberExtId int8 = 1

//numberLiteral carries numbers MessagePack int and float types cannot hold exactly
type numberLiteral json.Number

func (n *numberLiteral) MarshalMsgpack() ([]byte, error) {
	return []byte(*n), nil
}

func (n *numberLiteral) UnmarshalMsgpack(b []byte) error {
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return errors.Errorf("invalid number literal %q", b)
		}
	}

	*n = numberLiteral(b)

	return nil
}

func init() {
	msgpack.RegisterExt(NumberExtId, (*numberLiteral)(nil))
}

//msgpackNumber keeps native ints and floats when they render back to the same literal
func msgpackNumber(n json.Number) interface{} {
	text := string(n)

	if i, err := strconv.ParseInt(text, 10, 64); err == nil && strconv.FormatInt(i, 10) == text {
		return i
	}

	if u, err := strconv.ParseUint(text, 10, 64); err == nil && strconv.FormatUint(u, 10) == text {
		return u
	}

	if f, err := strconv.ParseFloat(text, 64); err == nil && strconv.FormatFloat(f, 'g', -1, 64) == text {
		return f
	}

	literal := numberLiteral(n)

	return &literal
}

func (v Value) msgpackInterface() interface{} {
	switch v.kind {
	case Number:
		return msgpackNumber(v.n)
	case List:
		l := make([]interface{}, 0, len(v.l))

		for _, e := range v.l {
			l = append(l, e.msgpackInterface())
		}

		return l
	case Map:
		m := make(map[string]interface{}, len(v.m))

		for k, e := range v.m {
			m[k] = e.msgpackInterface()
		}

		return m
	}

	return v.Interface()
}

func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(v.msgpackInterface())
}

func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	i, err := dec.DecodeInterface()

	if err != nil {
		return err
	}

	decoded, err := FromInterface(i)

	if err != nil {
		return err
	}

	*v = decoded

	return nil
}

//Args holds positional task arguments
type Args []Value

//Get returns argument at position i
func (a Args) Get(i int) (Value, bool) {
	if i < 0 || i >= len(a) {
		return Value{}, false
	}

	return a[i], true
}

//Interface converts arguments into plain Go data
func (a Args) Interface() []interface{} {
	l := make([]interface{}, 0, len(a))

	for _, v := range a {
		l = append(l, v.Interface())
	}

	return l
}

//Kwargs holds named task arguments
type Kwargs map[string]Value

//Get returns named argument
func (k Kwargs) Get(name string) (Value, bool) {
	v, ok := k[name]

	return v, ok
}

//Keys returns argument names in sorted order
func (k Kwargs) Keys() []string {
	keys := make([]string, 0, len(k))

	for key := range k {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

//Interface converts arguments into plain Go data
func (k Kwargs) Interface() map[string]interface{} {
	m := make(map[string]interface{}, len(k))

	for key, v := range k {
		m[key] = v.Interface()
	}

	return m
}
