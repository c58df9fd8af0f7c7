package validate

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/coerce"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
	"github.com/google/uuid"
)

// Mode selects create or update rules. Identifiers are optional on create
// and required on update.
type Mode uint8

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

type presence uint8

const (
	required presence = iota
	optional
	nullable
	requiredOnUpdate
)

// converter turns one present, non-null raw value into V, recording issues
// under p. It reports false when any issue was recorded.
type converter[V any] func(p Path, raw any, mode Mode, r *Report) (V, bool)

// fieldSpec is one declared key of an object shape.
type fieldSpec[T any] struct {
	key        string
	presence   presence
	apply      func(dst *T, p Path, raw any, mode Mode, r *Report)
	setNull    func(dst *T)
	setDefault func(dst *T)
}

func (f fieldSpec[T]) isRequired(mode Mode) bool {
	return f.presence == required || (f.presence == requiredOnUpdate && mode == ModeUpdate)
}

// shape is a strict object schema: undeclared keys are rejected.
type shape[T any] struct {
	name   string
	fields []fieldSpec[T]
	known  map[string]bool
	checks []func(dst *T, p Path, r *Report)
}

func newShape[T any](name string, fields ...fieldSpec[T]) *shape[T] {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		if known[f.key] {
			panic(fmt.Sprintf("validate: shape %s declares %q twice", name, f.key))
		}
		known[f.key] = true
	}
	return &shape[T]{name: name, fields: fields, known: known}
}

// withCheck adds a cross-field rule. Checks run after every field has been
// visited and must tolerate fields left unset by earlier failures.
func (s *shape[T]) withCheck(check func(dst *T, p Path, r *Report)) *shape[T] {
	s.checks = append(s.checks, check)
	return s
}

// decode visits every declared field, then reports undeclared keys. It never
// stops at the first failure.
func (s *shape[T]) decode(p Path, raw any, mode Mode, r *Report) (T, bool) {
	var dst T
	obj, ok := asObject(raw)
	if !ok {
		r.add(p, CodeInvalidType, fmt.Sprintf("expected %s object, got %s", s.name, coerce.TypeName(raw)))
		return dst, false
	}

	before := r.len()
	for _, f := range s.fields {
		fp := p.Key(f.key)
		v, present := obj.lookup(f.key)
		switch {
		case !present:
			if f.isRequired(mode) {
				r.add(fp, CodeMissingRequired, "is required")
			} else if f.setDefault != nil {
				f.setDefault(&dst)
			}
		case isNull(v):
			switch {
			case f.presence == nullable:
				f.setNull(&dst)
			case f.isRequired(mode):
				r.add(fp, CodeMissingRequired, "is required")
			default:
				r.add(fp, CodeInvalidType, "must not be null")
			}
		default:
			f.apply(&dst, fp, v, mode, r)
		}
	}

	for _, k := range obj.keys() {
		if !s.known[k] {
			r.add(p.Key(k), CodeUnknownField, fmt.Sprintf("unknown field %q", k))
		}
	}

	for _, check := range s.checks {
		check(&dst, p, r)
	}

	return dst, r.len() == before
}

func (s *shape[T]) converter() converter[T] {
	return s.decode
}

// --- field declarations ---

func requiredField[T, V any](key string, conv converter[V], set func(*T, V)) fieldSpec[T] {
	return fieldSpec[T]{key: key, presence: required, apply: applyWith(conv, set)}
}

func optionalField[T, V any](key string, conv converter[V], set func(*T, V)) fieldSpec[T] {
	return fieldSpec[T]{key: key, presence: optional, apply: applyWith(conv, set)}
}

// defaultField is optional; when the key is absent, def is stored. An
// explicit null is rejected rather than defaulted.
func defaultField[T, V any](key string, conv converter[V], set func(*T, V), def V) fieldSpec[T] {
	return fieldSpec[T]{
		key:        key,
		presence:   optional,
		apply:      applyWith(conv, set),
		setDefault: func(dst *T) { set(dst, def) },
	}
}

// nullableField is optional and accepts null; absent, null and a value stay
// distinguishable through models.Nullable.
func nullableField[T, V any](key string, conv converter[V], field func(*T) *models.Nullable[V]) fieldSpec[T] {
	return fieldSpec[T]{
		key:      key,
		presence: nullable,
		apply: applyWith(conv, func(dst *T, v V) {
			*field(dst) = models.Some(v)
		}),
		setNull: func(dst *T) { *field(dst) = models.Null[V]() },
	}
}

// identityField is the record's own UUID: optional on create, required on
// update.
func identityField[T any](key string, set func(*T, uuid.UUID)) fieldSpec[T] {
	return fieldSpec[T]{key: key, presence: requiredOnUpdate, apply: applyWith(uuidValue, set)}
}

func applyWith[T, V any](conv converter[V], set func(*T, V)) func(*T, Path, any, Mode, *Report) {
	return func(dst *T, p Path, raw any, mode Mode, r *Report) {
		if v, ok := conv(p, raw, mode, r); ok {
			set(dst, v)
		}
	}
}

// --- converters ---

func scalar[V any](fn func(any) (V, error)) converter[V] {
	return func(p Path, raw any, _ Mode, r *Report) (V, bool) {
		v, err := fn(raw)
		if err != nil {
			r.addErr(p, err)
			var zero V
			return zero, false
		}
		return v, true
	}
}

func boundedString(b coerce.Bounds) converter[string] {
	return scalar(func(v any) (string, error) { return coerce.BoundedString(v, b) })
}

func enum[E ~string](allowed []E) converter[E] {
	return scalar(func(v any) (E, error) { return coerce.Enum(v, allowed) })
}

// arrayOf validates every element, indexing issues by position. One bad
// element fails the array but does not stop its siblings being checked.
func arrayOf[V any](elem converter[V]) converter[[]V] {
	return func(p Path, raw any, mode Mode, r *Report) ([]V, bool) {
		items, ok := asArray(raw)
		if !ok {
			r.add(p, CodeInvalidType, "expected array, got "+coerce.TypeName(raw))
			return nil, false
		}
		out := make([]V, 0, len(items))
		valid := true
		for i, item := range items {
			v, ok := elem(p.Index(i), item, mode, r)
			if !ok {
				valid = false
				continue
			}
			out = append(out, v)
		}
		return out, valid
	}
}

// decodeOpaque keeps an arbitrary JSON payload without looking inside it.
func decodeOpaque(p Path, raw any, _ Mode, r *Report) (jsonvalue.Value, bool) {
	v, err := jsonvalue.FromAny(raw)
	if err != nil {
		r.add(p, CodeInvalidType, err.Error())
		return jsonvalue.Value{}, false
	}
	return v, true
}

var (
	uuidValue      = scalar(coerce.UUID)
	uuidArray      = arrayOf(uuidValue)
	dateValue      = scalar(coerce.Date)
	urlValue       = scalar(coerce.URL)
	countValue     = scalar(coerce.NonNegativeInt)
	boolValue      = scalar(coerce.Bool)
	slugValue      = scalar(coerce.Slug)
	titleValue     = boundedString(coerce.Bounds{Min: 1, Max: 255, Trim: true})
	richTextValue  = boundedString(coerce.Bounds{Max: 100000})
	keywordsValue  = arrayOf(boundedString(coerce.Bounds{Min: 1, Max: 100, Trim: true}))
	shortTextValue = boundedString(coerce.Bounds{Min: 1, Max: 100, Trim: true})
	opaqueValue    = converter[jsonvalue.Value](decodeOpaque)
)

// --- raw input views ---

// object abstracts the two record shapes accepted as input: plain decoded
// maps and ordered jsonvalue objects.
type object interface {
	// keys are sorted, so reports do not depend on the input form.
	keys() []string
	lookup(key string) (any, bool)
}

type mapObject map[string]any

func (m mapObject) keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m mapObject) lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

type treeObject struct{ v jsonvalue.Value }

func (t treeObject) keys() []string {
	keys := t.v.Keys()
	sort.Strings(keys)
	return keys
}

func (t treeObject) lookup(key string) (any, bool) {
	v, ok := t.v.Get(key)
	if !ok {
		return nil, false
	}
	return v, true
}

func asObject(raw any) (object, bool) {
	switch t := raw.(type) {
	case map[string]any:
		return mapObject(t), true
	case jsonvalue.Value:
		if t.Kind() == jsonvalue.KindObject {
			return treeObject{t}, true
		}
	case *jsonvalue.Value:
		if t != nil && t.Kind() == jsonvalue.KindObject {
			return treeObject{*t}, true
		}
	}
	return nil, false
}

func asArray(raw any) ([]any, bool) {
	switch t := raw.(type) {
	case []any:
		return t, true
	case jsonvalue.Value:
		if t.Kind() != jsonvalue.KindArray {
			return nil, false
		}
		items := t.Items()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = item
		}
		return out, true
	case nil, string:
		return nil, false
	}

	// Typed slices built by Go callers, e.g. []string or []map[string]any.
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func isNull(raw any) bool {
	switch t := raw.(type) {
	case nil:
		return true
	case jsonvalue.Value:
		return t.IsNull()
	case *jsonvalue.Value:
		return t == nil || t.IsNull()
	}
	return false
}
