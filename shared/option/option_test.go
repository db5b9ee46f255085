package option_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/optic_ive_go/shared/option"
)

func TestOption_SomeAndNone(t *testing.T) {
	s := option.Some(42)
	assert.True(t, s.IsSome())
	assert.False(t, s.IsNone())
	assert.Equal(t, 42, s.Unwrap())
	assert.Equal(t, 42, s.UnwrapOr(0))

	n := option.None[int]()
	assert.True(t, n.IsNone())
	assert.Equal(t, 7, n.UnwrapOr(7))
}

func TestOption_UnwrapNonePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on unwrap of None, but didn't panic")
		}
	}()
	option.None[string]().Unwrap()
}

func TestOption_Map(t *testing.T) {
	double := func(i int) int { return i * 2 }

	assert.Equal(t, option.Some(6), option.Map(option.Some(3), double))
	assert.True(t, option.Map(option.None[int](), double).IsNone())
}
