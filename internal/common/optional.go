package common

import "gopkg.in/yaml.v3"

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// OrZero returns the held value or the zero value of T.
func (o Optional[T]) OrZero() T {
	return o.value
}

// UnmarshalYAML decodes a present value. Null nodes never reach this method,
// yaml.v3 leaves the zero (absent) value for them.
func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T

	if err := node.Decode(&v); err != nil {
		return err
	}

	*o = Some(v)

	return nil
}

// MarshalYAML encodes absent values as null.
func (o Optional[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}

	return o.value, nil
}
