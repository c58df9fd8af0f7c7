package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
)

// ErrUnsupported is returned by FromAny for Go values with no JSON form.
var ErrUnsupported = errors.New("value has no JSON representation")

// Decode reads exactly one JSON document from r, keeping object key order.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("decode json: unexpected data after top-level value")
	}
	return v, nil
}

// Parse is Decode over a byte slice.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("decode json: %w", err)
			}
			return Array(items...), nil
		case '{':
			obj := Value{kind: KindObject}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, fmt.Errorf("decode json: %w", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("decode json: object key is %T", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				obj.members = setMember(obj.members, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("decode json: %w", err)
			}
			return obj, nil
		}
	}
	return Value{}, fmt.Errorf("decode json: unexpected token %v", tok)
}

// MarshalJSON writes the tree with object members in their stored order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case KindNumber:
		buf.WriteString(v.text)
	case KindString:
		b, err := json.Marshal(v.text)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("encode json: unknown kind %d", v.kind)
	}
	return nil
}

// FromAny converts a native Go value into a tree. Maps are emitted with keys
// in sorted order since Go maps carry none; a Value passes through untouched.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Value:
		if t == nil {
			return Null(), nil
		}
		return *t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		if _, err := t.Float64(); err != nil {
			return Value{}, fmt.Errorf("%w: malformed number %q", ErrUnsupported, t)
		}
		return Number(t), nil
	case float64:
		return fromFloat(t, 64)
	case float32:
		return fromFloat(float64(t), 32)
	case int:
		return Number(json.Number(strconv.FormatInt(int64(t), 10))), nil
	case int64:
		return Number(json.Number(strconv.FormatInt(t, 10))), nil
	case int32:
		return Number(json.Number(strconv.FormatInt(int64(t), 10))), nil
	case uint:
		return Number(json.Number(strconv.FormatUint(uint64(t), 10))), nil
	case uint64:
		return Number(json.Number(strconv.FormatUint(t, 10))), nil
	case []any:
		items := make([]Value, 0, len(t))
		for i, e := range t {
			item, err := FromAny(e)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, item)
		}
		return Array(items...), nil
	case map[string]any:
		members := make([]Member, 0, len(t))
		for _, k := range sortedKeys(t) {
			item, err := FromAny(t[k])
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			members = append(members, Member{Key: k, Value: item})
		}
		return Object(members...), nil
	case json.Marshaler:
		b, err := t.MarshalJSON()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
		return Parse(b)
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromFloat(f float64, bits int) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrUnsupported, f)
	}
	return Number(json.Number(strconv.FormatFloat(f, 'g', -1, bits))), nil
}

// fromReflect handles typed slices and string-keyed maps such as []string or
// map[string]string that the type switch does not enumerate.
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, item)
		}
		return Array(items...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		if rv.IsNil() {
			return Null(), nil
		}
		entries := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries[iter.Key().String()] = iter.Value().Interface()
		}
		members := make([]Member, 0, len(entries))
		for _, k := range sortedKeys(entries) {
			item, err := FromAny(entries[k])
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			members = append(members, Member{Key: k, Value: item})
		}
		return Object(members...), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Int8, reflect.Int16:
		return Number(json.Number(strconv.FormatInt(rv.Int(), 10))), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return Number(json.Number(strconv.FormatUint(rv.Uint(), 10))), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}
