// Package jsonvalue holds an ordered JSON tree for admin-authored payloads
// (fees, important dates, schema markup) that the service stores verbatim
// without interpreting their structure.
package jsonvalue

import (
	"encoding/json"
	"sort"
)

// Kind identifies the JSON type held by a Value.
type Kind uint8

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

// Member is one key/value pair of an object. Members keep insertion order.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON tree node. The zero Value is JSON null.
type Value struct {
	kind    Kind
	boolean bool
	text    string // number literal or string contents
	items   []Value
	members []Member
}

func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

func Number(n json.Number) Value { return Value{kind: KindNumber, text: string(n)} }

func String(s string) Value { return Value{kind: KindString, text: s} }

// Array builds an array value. An empty array is still an array, not null.
func Array(items ...Value) Value {
	if len(items) == 0 {
		items = nil
	}
	return Value{kind: KindArray, items: items}
}

// Object builds an object value. A repeated key replaces the earlier member
// in place, matching encoding/json's last-wins behaviour.
func Object(members ...Member) Value {
	v := Value{kind: KindObject}
	for _, m := range members {
		v.members = setMember(v.members, m)
	}
	return v
}

func setMember(members []Member, m Member) []Member {
	for i := range members {
		if members[i].Key == m.Key {
			members[i].Value = m.Value
			return members
		}
	}
	return append(members, m)
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) BoolValue() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

func (v Value) NumberValue() (json.Number, bool) {
	return json.Number(v.text), v.kind == KindNumber
}

func (v Value) StringValue() (string, bool) {
	return v.text, v.kind == KindString
}

// Items returns the elements of an array, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Members returns the members of an object in order, or nil for any other kind.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.members
}

// Keys returns object keys in order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Get looks up an object member by key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Len reports the number of array elements or object members.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Interface converts the tree into the shapes produced by encoding/json
// with UseNumber: map[string]any, []any, json.Number, string, bool, nil.
// Object key order is lost.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return json.Number(v.text)
	case KindString:
		return v.text
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.members))
		for _, m := range v.members {
			out[m.Key] = m.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports structural equality. Objects compare as key sets, so member
// order does not matter; array order does.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == o.boolean
	case KindNumber:
		return numbersEqual(v.text, o.text)
	case KindString:
		return v.text == o.text
	case KindArray:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(o.members) {
			return false
		}
		for _, m := range v.members {
			other, ok := o.Get(m.Key)
			if !ok || !m.Value.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

func numbersEqual(a, b string) bool {
	if a == b {
		return true
	}
	fa, errA := json.Number(a).Float64()
	fb, errB := json.Number(b).Float64()
	return errA == nil && errB == nil && fa == fb
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
