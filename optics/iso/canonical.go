package iso

import (
	"github.com/on-the-ground/optic_ive_go/shared/option"
	"github.com/on-the-ground/optic_ive_go/shared/pair"
)

// Identity is the isomorphism between a type and itself. It is the two-sided
// unit of composition and a structural placeholder wherever an isomorphism
// is required but no conversion is needed.
func Identity[S any]() Simple[S, S] {
	id := func(s S) S { return s }
	return New(id, id)
}

// Ordinal constrains the integer kinds usable as enumeration ordinals.
type Ordinal interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum coerces between an int ordinal and a discretely enumerable value
// type. This is a pleasant fiction: an ordinal outside the type's documented
// range converts to a value with no defined meaning, and nothing here checks
// for it. Staying inside the range is the caller's obligation.
func Enum[E Ordinal]() Simple[int, E] {
	return New(
		func(i int) E { return E(i) },
		func(e E) int { return int(e) },
	)
}

// Non collapses an optional value onto a sentinel: absence reads as the
// sentinel, and writing the sentinel back restores absence. An occupied
// option holding the sentinel therefore never comes back from a round trip.
func Non[A comparable](sentinel A) Simple[option.Option[A], A] {
	return Anon(sentinel, func(v A) bool { return v == sentinel })
}

// Anon generalizes Non with an explicit absence predicate. Precondition,
// unchecked: isAbsent(sentinel) holds. A predicate that does not identify
// absent-equivalent values consistently breaks the bijection.
func Anon[A any](sentinel A, isAbsent func(A) bool) Simple[option.Option[A], A] {
	return New(
		func(o option.Option[A]) A { return o.UnwrapOr(sentinel) },
		func(v A) option.Option[A] {
			if isAbsent(v) {
				return option.None[A]()
			}
			return option.Some(v)
		},
	)
}

// Curried relates a function over a pair to its curried two-argument form.
func Curried[A, B, C any]() Simple[func(pair.Pair[A, B]) C, func(A) func(B) C] {
	return New(
		func(f func(pair.Pair[A, B]) C) func(A) func(B) C {
			return func(a A) func(B) C {
				return func(b B) C { return f(pair.New(a, b)) }
			}
		},
		func(f func(A) func(B) C) func(pair.Pair[A, B]) C {
			return func(p pair.Pair[A, B]) C { return f(p.Fst)(p.Snd) }
		},
	)
}

// Uncurried is Curried with the directions swapped.
func Uncurried[A, B, C any]() Simple[func(A) func(B) C, func(pair.Pair[A, B]) C] {
	return Curried[A, B, C]().Invert()
}

// Swapped exchanges the components of a pair.
func Swapped[A, B any]() Simple[pair.Pair[A, B], pair.Pair[B, A]] {
	return New(
		pair.Pair[A, B].Swap,
		pair.Pair[B, A].Swap,
	)
}

// Reversed relates a slice to its reversal. Both directions copy; neither
// side aliases the other.
func Reversed[T any]() Simple[[]T, []T] {
	return New(reverse[T], reverse[T])
}

func reverse[T any](xs []T) []T {
	if xs == nil {
		return nil
	}
	out := make([]T, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}
