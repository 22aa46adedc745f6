/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canonical

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// Kind is the type tag of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// maxSafeInteger is the largest integer that survives a round trip through an IEEE 754 double.
const maxSafeInteger = 1 << 53

// Value is a JSON data value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String returns a string value. The string must be valid UTF-8.
func String(s string) (Value, error) {
	if !utf8.ValidString(s) {
		return Value{}, newError("", "string is not valid UTF-8")
	}

	return Value{kind: KindString, str: s}, nil
}

// Number returns a number value from its JSON text form.
func Number(n json.Number) (Value, error) {
	if err := checkNumber(n); err != nil {
		return Value{}, err
	}

	return Value{kind: KindNumber, num: n}, nil
}

// Array returns an array value.
func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: items}
}

// Object returns an object value.
func Object(members map[string]Value) Value {
	if members == nil {
		members = map[string]Value{}
	}

	return Value{kind: KindObject, obj: members}
}

// Kind returns the type tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Member returns the object member with the given key.
func (v Value) Member(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}

	m, ok := v.obj[key]

	return m, ok
}

// Without returns a copy of an object value with the given keys removed.
func (v Value) Without(keys ...string) Value {
	if v.kind != KindObject {
		return v
	}

	out := make(map[string]Value, len(v.obj))

	for k, m := range v.obj {
		out[k] = m
	}

	for _, k := range keys {
		delete(out, k)
	}

	return Object(out)
}

// Interface converts the value into plain Go data: nil, bool, json.Number, string,
// []interface{} and map[string]interface{}.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]interface{}, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}

		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.obj))
		for k, m := range v.obj {
			out[k] = m.Interface()
		}

		return out
	default:
		return nil
	}
}

// MarshalJSON renders the value in its canonical form.
func (v Value) MarshalJSON() ([]byte, error) {
	return Canonicalize(v, VersionCurrent)
}

// UnmarshalJSON parses JSON text into the value.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// Parse decodes JSON text into a Value. Duplicate object keys and trailing data are rejected.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec, "")
	if err != nil {
		return Value{}, err
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, newError("", "unexpected data after top-level value")
	}

	return v, nil
}

func parseValue(dec *json.Decoder, path string) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, wrapError(path, "invalid JSON", err)
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		v, numErr := Number(t)

		return v, withPath(numErr, path)
	case string:
		v, strErr := String(t)

		return v, withPath(strErr, path)
	case json.Delim:
		switch t {
		case '[':
			return parseArray(dec, path)
		case '{':
			return parseObject(dec, path)
		}
	}

	return Value{}, newError(path, fmt.Sprintf("unexpected token %v", tok))
}

func parseArray(dec *json.Decoder, path string) (Value, error) {
	items := make([]Value, 0)

	for dec.More() {
		item, err := parseValue(dec, fmt.Sprintf("%s[%d]", path, len(items)))
		if err != nil {
			return Value{}, err
		}

		items = append(items, item)
	}

	if _, err := dec.Token(); err != nil {
		return Value{}, wrapError(path, "invalid JSON", err)
	}

	return Array(items...), nil
}

func parseObject(dec *json.Decoder, path string) (Value, error) {
	members := map[string]Value{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, wrapError(path, "invalid JSON", err)
		}

		key, ok := tok.(string)
		if !ok {
			return Value{}, newError(path, "object key is not a string")
		}

		if !utf8.ValidString(key) {
			return Value{}, newError(path, "object key is not valid UTF-8")
		}

		if _, exists := members[key]; exists {
			return Value{}, newError(path, fmt.Sprintf("duplicate object key %q", key))
		}

		member, err := parseValue(dec, path+"."+key)
		if err != nil {
			return Value{}, err
		}

		members[key] = member
	}

	if _, err := dec.Token(); err != nil {
		return Value{}, wrapError(path, "invalid JSON", err)
	}

	return Object(members), nil
}

// FromGo converts plain Go data into a Value. Accepted inputs are nil, bool, string,
// json.Number, json.RawMessage, float64, the fixed-size integer types, Value, and slices
// and string-keyed maps of those. Anything else (structs, pointers, big numbers,
// float32, byte slices) is rejected because its JSON rendering is not plain data.
func FromGo(x interface{}) (Value, error) {
	return fromGo(x, "")
}

//nolint:gocyclo
func fromGo(x interface{}, path string) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		v, err := String(t)

		return v, withPath(err, path)
	case json.Number:
		v, err := Number(t)

		return v, withPath(err, path)
	case json.RawMessage:
		v, err := Parse(t)

		return v, withPath(err, path)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return Value{}, newError(path, "non-finite number")
		}

		return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(t, 'g', -1, 64))}, nil
	case float32:
		return Value{}, newError(path, "float32 has no unambiguous decimal rendering")
	case int:
		return fromInt(int64(t), path)
	case int8:
		return fromInt(int64(t), path)
	case int16:
		return fromInt(int64(t), path)
	case int32:
		return fromInt(int64(t), path)
	case int64:
		return fromInt(t, path)
	case uint:
		return fromUint(uint64(t), path)
	case uint8:
		return fromUint(uint64(t), path)
	case uint16:
		return fromUint(uint64(t), path)
	case uint32:
		return fromUint(uint64(t), path)
	case uint64:
		return fromUint(t, path)
	case *big.Int, big.Int, *big.Float, big.Float, *big.Rat, big.Rat:
		return Value{}, newError(path, fmt.Sprintf("arbitrary-precision number %T cannot round-trip", x))
	case []byte:
		return Value{}, newError(path, "byte slice has no plain JSON rendering")
	case []interface{}:
		items := make([]Value, len(t))

		for i, item := range t {
			v, err := fromGo(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}

			items[i] = v
		}

		return Array(items...), nil
	case map[string]interface{}:
		members := make(map[string]Value, len(t))

		for k, item := range t {
			if !utf8.ValidString(k) {
				return Value{}, newError(path, "object key is not valid UTF-8")
			}

			v, err := fromGo(item, path+"."+k)
			if err != nil {
				return Value{}, err
			}

			members[k] = v
		}

		return Object(members), nil
	}

	return fromReflect(reflect.ValueOf(x), path)
}

// fromReflect accepts typed slices and string-keyed maps (e.g. []string, map[string]string).
func fromReflect(rv reflect.Value, path string) (Value, error) {
	switch rv.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())

		for i := 0; i < rv.Len(); i++ {
			v, err := fromGo(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}

			items[i] = v
		}

		return Array(items...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, newError(path, fmt.Sprintf("map key type %s is not a string", rv.Type().Key()))
		}

		members := make(map[string]Value, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()

			v, err := fromGo(iter.Value().Interface(), path+"."+k)
			if err != nil {
				return Value{}, err
			}

			members[k] = v
		}

		return Object(members), nil
	default:
		return Value{}, newError(path, fmt.Sprintf("non-plain value of type %s", rv.Type()))
	}
}

func fromInt(i int64, path string) (Value, error) {
	if i > maxSafeInteger || i < -maxSafeInteger {
		return Value{}, newError(path, fmt.Sprintf("integer %d exceeds 2^53", i))
	}

	return Value{kind: KindNumber, num: json.Number(strconv.FormatInt(i, 10))}, nil
}

func fromUint(u uint64, path string) (Value, error) {
	if u > maxSafeInteger {
		return Value{}, newError(path, fmt.Sprintf("integer %d exceeds 2^53", u))
	}

	return Value{kind: KindNumber, num: json.Number(strconv.FormatUint(u, 10))}, nil
}

func checkNumber(n json.Number) error {
	s := string(n)

	if !isJSONNumber(s) {
		return newError("", fmt.Sprintf("invalid number %q", s))
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return newError("", fmt.Sprintf("non-finite number %q", s))
	}

	if isIntegerLiteral(s) {
		bi, ok := new(big.Int).SetString(s, 10)
		if !ok || bi.CmpAbs(big.NewInt(maxSafeInteger)) > 0 {
			return newError("", fmt.Sprintf("integer %s exceeds 2^53", s))
		}
	}

	return nil
}

func isIntegerLiteral(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E':
			return false
		}
	}

	return true
}

// isJSONNumber reports whether s matches the JSON number grammar (RFC 8259 section 6).
func isJSONNumber(s string) bool {
	i := 0

	if i < len(s) && s[i] == '-' {
		i++
	}

	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}

	if i < len(s) && s[i] == '.' {
		i++

		if i >= len(s) || !isDigit(s[i]) {
			return false
		}

		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++

		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}

		if i >= len(s) || !isDigit(s[i]) {
			return false
		}

		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}

	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
