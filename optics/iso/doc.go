// Package iso provides the isomorphism optic: a pair of mutually inverse
// conversions packaged as a first-class, composable value.
//
// An isomorphism is not just a pair of functions.
// It is a claim the caller makes:
//
//	→ "These two representations carry the same information."
//	→ "Converting there and back loses nothing."
//
// The package never checks that claim. Build an isomorphism from a pair that
// is not a true inverse pair and every law below silently stops holding; the
// round trip is a caller obligation, like purity is for memoization.
//
// One value, two forms:
//
//   - Generic form (Iso): a function over the optics.Flow wrapper capability.
//     It composes with any other optic by plain function composition and can
//     only be applied, never inspected.
//   - Concrete form (Exchange): the stored function pair. It can be split
//     back into forward and backward, stored in containers, inverted by
//     swapping roles.
//
// Conversion between the forms is lossless both ways: (Iso).Exchange probes
// the generic form with an identity exchanger, (Exchange).Iso re-promotes.
//
// Laws, for any true inverse pair f, g and l = New(f, g):
//
//	l.Backward()(l.Forward()(x)) == x
//	l.Invert().Invert() behaves as l
//	l.Exchange().Iso() behaves as l
//	Compose(a, b).Forward() behaves as b.Forward() ∘ a.Forward()
//
// Beside the core sit the canonical isomorphisms (Identity, Enum, Non, Anon,
// Curried, Swapped, Reversed, TimeSpans) and combinators that capture
// recurring decode-and-compose patterns (Au, Auf, Under, Mapping, Cached).
package iso
