// Package textbuf provides a chunked text buffer, the lazy counterpart of a
// plain string, and registers the strict/lazy pair relating the two.
package textbuf

import (
	"strings"

	"github.com/on-the-ground/optic_ive_go/optics/iso"
	"github.com/on-the-ground/optic_ive_go/optics/strictness"
)

// Chunked is a persistent, lazily concatenated text buffer. Appending copies
// the chunk list but shares the chunk contents; the cost of joining is paid
// only on Materialize.
type Chunked struct {
	chunks []string
}

func New(chunks ...string) Chunked {
	owned := make([]string, len(chunks))
	copy(owned, chunks)
	return Chunked{chunks: owned}
}

// FromString wraps an already materialized string as a single-chunk buffer.
func FromString(s string) Chunked {
	return Chunked{chunks: []string{s}}
}

// Append returns a new buffer with s as its last chunk. The receiver is
// unchanged.
func (c Chunked) Append(s string) Chunked {
	out := make([]string, len(c.chunks)+1)
	copy(out, c.chunks)
	out[len(c.chunks)] = s
	return Chunked{chunks: out}
}

// Len is the total text length across chunks.
func (c Chunked) Len() int {
	total := 0
	for _, chunk := range c.chunks {
		total += len(chunk)
	}
	return total
}

// Materialize joins the chunks into the strict representation.
func (c Chunked) Materialize() string {
	var b strings.Builder
	b.Grow(c.Len())
	for _, chunk := range c.chunks {
		b.WriteString(chunk)
	}
	return b.String()
}

// StrictIso converts between the chunked and the materialized
// representation. The bijection is on logical content: a round-tripped
// buffer holds the same text, not necessarily the same chunk boundaries.
func StrictIso() iso.Simple[Chunked, string] {
	return iso.New(Chunked.Materialize, FromString)
}

func init() {
	strictness.MustRegisterIso[Chunked, string](StrictIso())
}
