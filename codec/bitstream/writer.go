package bitstream

import (
	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/syntax"
	"github.com/bugVanisher/h264syntax/common/errs"
)

// Writer encodes a syntax tree into a bitstream. It implements Processor
// for the encode direction: every operation pops the next child off the
// node it is given and encodes it, strictly FIFO.
type Writer struct {
	bits *bitio.Writer
}

// NewWriter returns an empty Writer for encode-direction traversal.
func NewWriter() *Writer {
	return &Writer{bits: bitio.NewWriter()}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.bits.Bytes()
}

// Field pops the next child of parent, requires it to be a Field named
// name, encodes its value, and returns it. Mismatch or missing child is
// fatal.
func (w *Writer) Field(parent *syntax.Node, name string, ft bitio.FieldType, n int) int32 {
	child := parent.PopFront()
	field, ok := child.(*syntax.Field)
	if !ok || field.Name != name {
		panic(errs.TreeMismatch(name, describe(child)))
	}
	w.bits.Write(ft, n, field.Value)
	return field.Value
}

// Subnode pops the next child of parent, requires it to be a Node named
// name, and runs fn against it (which consumes its children in order).
func (w *Writer) Subnode(parent *syntax.Node, name string, fn func(*syntax.Node, Processor)) {
	child := parent.PopFront()
	node, ok := child.(*syntax.Node)
	if !ok || node.Name != name {
		panic(errs.TreeMismatch(name, describe(child)))
	}
	fn(node, w)
}

// Payload pops the next child of parent, requires it to be a Payload
// named name, and writes its bytes, aligning to the current bit cursor
// first if both the writer is mid-byte and the payload is non-empty.
func (w *Writer) Payload(parent *syntax.Node, name string) {
	child := parent.PopFront()
	payload, ok := child.(*syntax.Payload)
	if !ok || payload.Name != name {
		panic(errs.TreeMismatch(name, describe(child)))
	}
	start := 0
	if !w.bits.Aligned() && len(payload.Data) > 0 {
		alignBits := 8 - w.bits.BitIndex()%8
		mask := int32(1)<<uint(alignBits) - 1
		w.bits.Write(bitio.UnsignedInt, alignBits, int32(payload.Data[0])&mask)
		start = 1
	}
	for i := start; i < len(payload.Data); i++ {
		w.bits.Write(bitio.UnsignedInt, 8, int32(payload.Data[i]))
	}
}

// MoreData looks one child ahead: true iff the remaining queue is
// non-empty and not a single trailing Payload.
func (w *Writer) MoreData(parent *syntax.Node) bool {
	switch len(parent.Children) {
	case 0:
		return false
	case 1:
		_, isPayload := parent.Children[0].(*syntax.Payload)
		return !isPayload
	default:
		return true
	}
}

func describe(e syntax.Element) string {
	switch v := e.(type) {
	case *syntax.Field:
		return v.Name
	case *syntax.Node:
		return v.Name
	case *syntax.Payload:
		return v.Name
	default:
		return ""
	}
}
