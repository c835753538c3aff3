// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package vartype provides value wrappers that remember whether they were ever set, so an
// optional provider field that is absent can be told apart from one that is zero.
package vartype

import (
	"encoding/json"
	"fmt"
)

// Unset is the text representation of a Variable that holds no value.
const Unset = "n/a"

type (
	// VarFloat64 is a type alias for Variable[float64].
	VarFloat64 = Variable[float64]

	// VarInt is a type alias for Variable[int].
	VarInt = Variable[int]
)

// Variable holds an optional value of type T.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable returns a Variable that is set to value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// FromPointer returns a Variable set to *ptr, or an unset Variable if ptr is nil.
func FromPointer[T any](ptr *T) Variable[T] {
	if ptr == nil {
		return Variable[T]{}
	}
	return NewVariable(*ptr)
}

// Value returns the stored value, or the zero value of T if unset.
func (v Variable[T]) Value() T {
	return v.value
}

// IsSet reports whether the Variable holds a value.
func (v Variable[T]) IsSet() bool {
	return v.isset
}

func (v Variable[T]) String() string {
	if !v.isset {
		return Unset
	}
	return fmt.Sprint(v.value)
}

// MarshalJSON encodes the value, or null if unset.
func (v Variable[T]) MarshalJSON() ([]byte, error) {
	if !v.isset {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
