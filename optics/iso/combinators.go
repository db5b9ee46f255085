package iso

import (
	"github.com/on-the-ground/optic_ive_go/pure"
	"github.com/on-the-ground/optic_ive_go/shared/option"
)

// Au runs an aggregation through the isomorphism: transform receives the
// forward direction as its probe and the backward direction is applied to
// the aggregated result. Typical use is summing values held in a wrapped
// numeric type without unwrapping them by hand.
func Au[S, T, A, B, E any](l Iso[S, T, A, B], transform func(func(S) A) func(E) B) func(E) T {
	forward, backward := l.Exchange().Split()
	probe := transform(forward)
	return func(e E) T { return backward(probe(e)) }
}

// Auf is Au with an extra projection pre-composed before the probe, for
// aggregations over values of which only a part needs the representation
// change.
func Auf[S, T, A, B, E, R any](
	l Iso[S, T, A, B],
	transform func(func(R) A) func(E) B,
	project func(R) S,
) func(E) T {
	forward, backward := l.Exchange().Split()
	probe := transform(func(r R) A { return forward(project(r)) })
	return func(e E) T { return backward(probe(e)) }
}

// Under applies a transformation written against the source shape to a value
// on the target side: forward ∘ fn ∘ backward. It is the dual of Over.
func Under[S, T, A, B any](l Iso[S, T, A, B], fn func(T) S, b B) A {
	forward, backward := l.Exchange().Split()
	return forward(fn(backward(b)))
}

// Mapping lifts an isomorphism into a container, given the container's
// element-wise mapping operation for each direction.
func Mapping[S, T, A, B, FS, FT, FA, FB any](
	l Iso[S, T, A, B],
	mapForward func(FS, func(S) A) FA,
	mapBackward func(FB, func(B) T) FT,
) Iso[FS, FT, FA, FB] {
	forward, backward := l.Exchange().Split()
	return New(
		func(fs FS) FA { return mapForward(fs, forward) },
		func(fb FB) FT { return mapBackward(fb, backward) },
	)
}

// MappingSlice lifts a simple isomorphism element-wise over slices.
func MappingSlice[S, A any](l Simple[S, A]) Simple[[]S, []A] {
	return Mapping(l, mapSlice[S, A], mapSlice[A, S])
}

// MappingOption lifts a simple isomorphism through option.Option.
func MappingOption[S, A any](l Simple[S, A]) Simple[option.Option[S], option.Option[A]] {
	return Mapping(l,
		func(o option.Option[S], fn func(S) A) option.Option[A] { return option.Map(o, fn) },
		func(o option.Option[A], fn func(A) S) option.Option[S] { return option.Map(o, fn) },
	)
}

// Cached memoizes both directions of a simple isomorphism over comparable
// values, bounded to maxTableSize entries per direction. Intended for
// expensive conversions applied repeatedly to recurring inputs, such as
// buffer materialization. The directions must be pure.
func Cached[S, A comparable](l Simple[S, A], maxTableSize uint32) Simple[S, A] {
	forward, backward := l.Exchange().Split()
	return New(
		pure.Memoize(forward, maxTableSize),
		pure.Memoize(backward, maxTableSize),
	)
}

func mapSlice[S, A any](xs []S, fn func(S) A) []A {
	if xs == nil {
		return nil
	}
	out := make([]A, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}
