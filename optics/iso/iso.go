package iso

import (
	"github.com/on-the-ground/optic_ive_go/optics"
	"github.com/on-the-ground/optic_ive_go/shared/helper"
)

// Iso is the generic, composable form of an isomorphism between a source
// pair (S, T) and a target pair (A, B). The type parameters are phantom:
// they pin the shapes at compile time while the underlying function re-aims
// untyped flows. In the common case S = T and A = B; the general form also
// supports type-changing updates.
type Iso[S, T, A, B any] optics.Optic

// Simple is an isomorphism that does not change types on update.
type Simple[S, A any] = Iso[S, S, A, A]

// New builds an isomorphism from a forward/backward pair.
//
// The pair is not validated: the caller guarantees that, where the domains
// coincide, backward(forward(x)) == x and forward(backward(y)) == y. A pair
// violating that contract yields an isomorphism whose laws silently do not
// hold.
func New[S, T, A, B any](forward func(S) A, backward func(B) T) Iso[S, T, A, B] {
	fwd := func(x any) any { return forward(x.(S)) }
	bwd := func(x any) any { return backward(x.(B)) }
	return func(f optics.Flow) optics.Flow {
		return f.Dimap(fwd, bwd)
	}
}

// Compose chains two isomorphisms, outer first. The result decodes to the
// composed directions: forward runs outer then inner, backward runs inner
// then outer.
func Compose[S, T, A, B, C, D any](outer Iso[S, T, A, B], inner Iso[A, B, C, D]) Iso[S, T, C, D] {
	return Iso[S, T, C, D](optics.Compose(optics.Optic(outer), optics.Optic(inner)))
}

// Clone decodes an isomorphism and rebuilds its generic form. Use it to
// reconstruct an isomorphism that has been stored or passed around
// concretely.
func Clone[S, T, A, B any](l Iso[S, T, A, B]) Iso[S, T, A, B] {
	return l.Exchange().Iso()
}

// Exchange concretizes the isomorphism by probing it with an identity
// exchanger, recovering the directions supplied at construction.
func (l Iso[S, T, A, B]) Exchange() Exchange[S, T, A, B] {
	ex := helper.MustGetTypedValue[optics.Exchanger](func() (any, error) {
		return l(optics.IdentityExchanger()), nil
	})
	fwd, bwd := ex.Split()
	return Exchange[S, T, A, B]{
		forward:  func(s S) A { return fwd(s).(A) },
		backward: func(b B) T { return bwd(b).(T) },
	}
}

// Forward returns the forward direction.
func (l Iso[S, T, A, B]) Forward() func(S) A {
	forward, _ := l.Exchange().Split()
	return forward
}

// Backward returns the backward direction.
func (l Iso[S, T, A, B]) Backward() func(B) T {
	_, backward := l.Exchange().Split()
	return backward
}

// Get applies the forward direction once.
func (l Iso[S, T, A, B]) Get(s S) A {
	return l.Forward()(s)
}

// ReverseGet applies the backward direction once.
func (l Iso[S, T, A, B]) ReverseGet(b B) T {
	return l.Backward()(b)
}

// Invert swaps the roles of the two directions. Inverting twice behaves as
// the original.
func (l Iso[S, T, A, B]) Invert() Iso[B, A, T, S] {
	forward, backward := l.Exchange().Split()
	return New(backward, forward)
}

// Over runs fn through the isomorphism, yielding the transformation on the
// source shape: backward ∘ fn ∘ forward.
func (l Iso[S, T, A, B]) Over(fn func(A) B) func(S) T {
	m := helper.MustGetTypedValue[optics.Mapper](func() (any, error) {
		return l(optics.NewMapper(func(x any) any { return fn(x.(A)) })), nil
	})
	return func(s S) T { return m.Run(s).(T) }
}

// Exchange is the concrete, decomposable form of an isomorphism: the stored
// function pair. Unlike the generic form it can be split, kept in a
// container, and rebuilt later.
type Exchange[S, T, A, B any] struct {
	forward  func(S) A
	backward func(B) T
}

func NewExchange[S, T, A, B any](forward func(S) A, backward func(B) T) Exchange[S, T, A, B] {
	return Exchange[S, T, A, B]{forward: forward, backward: backward}
}

// Split decodes the exchange into the two functions supplied at
// construction. Total; a well-formed exchange always splits.
func (e Exchange[S, T, A, B]) Split() (forward func(S) A, backward func(B) T) {
	return e.forward, e.backward
}

// Iso promotes the exchange into the generic composable form.
func (e Exchange[S, T, A, B]) Iso() Iso[S, T, A, B] {
	return New(e.forward, e.backward)
}
