package dto

import (
	"bytes"
	"encoding/json"
)

// PaginationMeta describes paging information attached to list responses.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

var jsonNull = []byte("null")

// Optional wraps a field of a partial update payload so that "field
// omitted" and "field explicitly set to null" stay distinguishable after
// decoding. A zero Optional means the field was absent.
type Optional[T any] struct {
	set   bool
	valid bool
	value T
}

// Some builds a present, non-null Optional. Used by tests and internal callers.
func Some[T any](value T) Optional[T] {
	return Optional[T]{set: true, valid: true, value: value}
}

// Null builds a present Optional carrying an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true}
}

// UnmarshalJSON records presence before decoding the value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(data, jsonNull) {
		o.valid = false
		var zero T
		o.value = zero
		return nil
	}

	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.valid = true
	return nil
}

// MarshalJSON encodes the wrapped value, or null when not valid.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// Present reports whether the field appeared in the payload at all.
func (o Optional[T]) Present() bool {
	return o.set
}

// Value returns the decoded value and whether it was non-null.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.valid
}

// Ptr returns the value as a pointer, nil when the field was null.
func (o Optional[T]) Ptr() *T {
	if !o.valid {
		return nil
	}
	value := o.value
	return &value
}
