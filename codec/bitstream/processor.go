// Package bitstream implements the processor abstraction of spec.md §4.3:
// a capability, implemented by both a Reader and a Writer, that lets a
// single declarative traversal drive either parsing or serialization of
// H.264 syntax.
package bitstream

import (
	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/syntax"
)

// Processor is implemented by Reader (decode) and Writer (encode). Every
// H.264 syntax procedure takes a *syntax.Node and a Processor, so it
// serves as both parser and serializer without knowing which.
type Processor interface {
	// Field decodes (Reader) or consumes-and-encodes (Writer) one field,
	// appending/popping a syntax.Field named name on parent, and returns
	// its value.
	Field(parent *syntax.Node, name string, ft bitio.FieldType, n int) int32
	// Subnode creates (Reader) or pops (Writer) a child syntax.Node named
	// name and runs fn against it.
	Subnode(parent *syntax.Node, name string, fn func(*syntax.Node, Processor))
	// Payload reads (Reader) or pops-and-writes (Writer) the remaining
	// bytes of the current NALU as an opaque syntax.Payload named name.
	Payload(parent *syntax.Node, name string)
	// MoreData reports whether the traversal should continue reading (or
	// writing) more syntax under parent.
	MoreData(parent *syntax.Node) bool
}
