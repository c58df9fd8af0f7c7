// Package models contains the normalized entity records shared by the
// validator, the store and the HTTP layer.
package models

import (
	"bytes"
	"encoding/json"
)

// Nullable tracks the three states of an optional, nullable field: absent,
// explicit null, and a value. The zero Nullable is absent, which the
// `omitzero` JSON option drops from output; null marshals as JSON null.
type Nullable[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns a present, non-null Nullable.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, set: true}
}

// Null returns a present Nullable holding explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true, null: true}
}

func (n Nullable[T]) IsZero() bool    { return !n.set }
func (n Nullable[T]) IsNull() bool    { return n.set && n.null }
func (n Nullable[T]) IsPresent() bool { return n.set }

// Get returns the value and whether one is held.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.set && !n.null
}

// Ptr returns a pointer to the value, or nil when absent or null.
// Storage collapses absent and null into SQL NULL.
func (n Nullable[T]) Ptr() *T {
	if !n.set || n.null {
		return nil
	}
	v := n.value
	return &v
}

// FromPtr is the inverse of Ptr: nil becomes explicit null.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}
	return Some(*p)
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.set || n.null {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Some(v)
	return nil
}
