// Package optics provides the composition substrate shared by every optic
// kind: isomorphisms, lenses, getters, setters, traversals.
//
// An optic is not a data structure here. An optic is a function:
//
//	→ "Give me a transformation aimed at the part, and I will re-aim it at the whole."
//
// That single shape — Optic, a func(Flow) Flow — is what lets heterogeneous
// optic kinds chain with ordinary function composition. Compose is literally
// function composition; it neither inspects nor rebuilds its operands.
//
// Flow is the abstract wrapper capability each optic kind is written
// against: a value carrying a transformation that can be re-aimed
// with a pre- and a post-function (Dimap), preserving no-op mappings. Two
// wrappers ship with the package:
//
//   - Mapper: carries one direction only. Feeding a Mapper through an optic
//     yields the whole-structure transformation. This is how optics are run.
//   - Exchanger: carries both directions separately. Feeding an identity
//     Exchanger through an optic built from an isomorphism recovers the
//     forward and backward functions exactly — optics built from bijections
//     stay decomposable.
//
// Go has neither higher-rank polymorphism nor generic interface methods, so
// the wrappers move untyped values internally. The generic constructors and
// accessors in the optic-kind packages (see optics/iso) restore type safety
// at the edges; user code never handles an `any`.
package optics
