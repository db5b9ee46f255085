// Package option provides an immutable optional value with an element-wise
// mapping operation, the functor consumed by container-lifting optics.
package option

import "fmt"

// Option holds either one value of T or nothing.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.some }
func (o Option[T]) IsNone() bool { return !o.some }

// Unwrap returns the held value. Panics on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(fmt.Sprintf("option: unwrap of empty Option[%T]", o.value))
	}
	return o.value
}

// UnwrapOr returns the held value, or def when empty.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// Map applies fn to the held value, if any.
func Map[A, B any](o Option[A], fn func(A) B) Option[B] {
	if !o.some {
		return None[B]()
	}
	return Some(fn(o.value))
}
