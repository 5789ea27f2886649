package common

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var errTrailingData = errors.New("unexpected data after top-level value")

func decodePayload(field string, raw string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var i interface{}

	if err := dec.Decode(&i); err != nil {
		return Value{}, &MalformedPayloadError{Field: field, Err: err}
	}

	var rest interface{}

	if err := dec.Decode(&rest); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}

		return Value{}, &MalformedPayloadError{Field: field, Err: err}
	}

	v, err := FromInterface(i)

	if err != nil {
		return Value{}, &MalformedPayloadError{Field: field, Err: err}
	}

	return v, nil
}

//ParsePositionalArgs decodes JSON list of positional arguments.
//Empty input yields empty Args
func ParsePositionalArgs(raw string) (Args, error) {
	if strings.TrimSpace(raw) == "" {
		return Args{}, nil
	}

	v, err := decodePayload(FieldArgs, raw)

	if err != nil {
		return nil, err
	}

	l, err := v.AsList()

	if err != nil {
		return nil, &InvalidArgumentShapeError{Field: FieldArgs, Want: List, Got: v.Kind()}
	}

	return Args(l), nil
}

//ParseNamedArgs decodes JSON object of named arguments.
//Empty input yields empty Kwargs
func ParseNamedArgs(raw string) (Kwargs, error) {
	if strings.TrimSpace(raw) == "" {
		return Kwargs{}, nil
	}

	v, err := decodePayload(FieldKwargs, raw)

	if err != nil {
		return nil, err
	}

	m, err := v.AsMap()

	if err != nil {
		return nil, &InvalidArgumentShapeError{Field: FieldKwargs, Want: Map, Got: v.Kind()}
	}

	return Kwargs(m), nil
}
