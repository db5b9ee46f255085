package helper_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/optic_ive_go/shared/helper"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 42, nil })
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = helper.GetTypedValueOf[int](func() (any, error) { return "nope", nil })
	assert.Error(t, err)

	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, fmt.Errorf("boom") })
	assert.Error(t, err)
}

func TestMustGetTypedValue_PanicsOnMismatch(t *testing.T) {
	assert.Equal(t, "ok", helper.MustGetTypedValue[string](func() (any, error) { return "ok", nil }))

	assert.Panics(t, func() {
		helper.MustGetTypedValue[string](func() (any, error) { return 1, nil })
	})
}
