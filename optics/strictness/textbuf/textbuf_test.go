package textbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/optic_ive_go/optics/strictness"
	"github.com/on-the-ground/optic_ive_go/optics/strictness/textbuf"
)

func TestChunked_MaterializeJoinsChunks(t *testing.T) {
	c := textbuf.New("hello", " ", "world")
	assert.Equal(t, "hello world", c.Materialize())
	assert.Equal(t, 11, c.Len())
}

func TestChunked_AppendIsPersistent(t *testing.T) {
	base := textbuf.New("a")
	grown := base.Append("b").Append("c")

	assert.Equal(t, "a", base.Materialize())
	assert.Equal(t, "abc", grown.Materialize())
}

func TestStrictIso_RoundTripsLogicalContent(t *testing.T) {
	l := textbuf.StrictIso()

	c := textbuf.New("foo", "bar")
	assert.Equal(t, "foobar", l.Get(c))
	assert.Equal(t, "foobar", l.ReverseGet(l.Get(c)).Materialize())
}

func TestStrictIso_IsPreRegistered(t *testing.T) {
	l, ok := strictness.LookupIso[textbuf.Chunked, string]()
	require.True(t, ok)

	sample := textbuf.New("lazy", " ", "buffer")
	assert.Equal(t, sample.Materialize(), l.Get(sample))
}
