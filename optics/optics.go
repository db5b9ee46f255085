package optics

// Flow is the wrapper capability threaded through every optic. A Flow carries
// a transformation aimed at some source/target pair and knows how to re-aim
// itself: pre runs before the carried transformation, post runs after.
// Implementations must preserve no-op mappings — Dimap with two identities
// yields a behaviorally identical Flow.
type Flow interface {
	Dimap(pre, post func(any) any) Flow
}

// Optic is the generic, composable form shared by every optic kind: a
// function that re-aims a Flow from the optic's focus to the whole structure.
// It cannot be inspected, only applied.
type Optic func(Flow) Flow

// Compose chains two optics, outer first. It is plain function composition:
// associative, with the identity optic as a two-sided unit.
func Compose(outer, inner Optic) Optic {
	return func(f Flow) Flow {
		return outer(inner(f))
	}
}

// Mapper is the one-way wrapper: it carries a single structure-to-structure
// transformation. Feeding a Mapper through an optic yields the transformation
// on the whole.
type Mapper struct {
	run func(any) any
}

func NewMapper(run func(any) any) Mapper {
	return Mapper{run: run}
}

// Run applies the carried transformation.
func (m Mapper) Run(x any) any { return m.run(x) }

func (m Mapper) Dimap(pre, post func(any) any) Flow {
	run := m.run
	return Mapper{run: func(x any) any {
		return post(run(pre(x)))
	}}
}

// Exchanger is the two-way wrapper: it carries both directions of a
// conversion separately, so an optic built from an isomorphism can be
// decomposed back into its forward and backward functions.
type Exchanger struct {
	forward  func(any) any
	backward func(any) any
}

func NewExchanger(forward, backward func(any) any) Exchanger {
	return Exchanger{forward: forward, backward: backward}
}

// IdentityExchanger is the decoding probe: feeding it through an optic built
// from an isomorphism accumulates exactly that isomorphism's two directions.
func IdentityExchanger() Exchanger {
	return Exchanger{forward: identity, backward: identity}
}

// Split returns the accumulated directions.
func (e Exchanger) Split() (forward, backward func(any) any) {
	return e.forward, e.backward
}

func (e Exchanger) Dimap(pre, post func(any) any) Flow {
	fwd, bwd := e.forward, e.backward
	return Exchanger{
		forward:  func(x any) any { return fwd(pre(x)) },
		backward: func(x any) any { return post(bwd(x)) },
	}
}

func identity(x any) any { return x }
