package pair

// Pair is an immutable two-component value.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

func New[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Swap returns the pair with its components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}
