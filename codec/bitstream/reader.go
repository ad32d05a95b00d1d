package bitstream

import (
	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/syntax"
	"github.com/bugVanisher/h264syntax/common/errs"
)

// Reader decodes a bitstream into a syntax tree. It implements Processor
// for the decode direction: every operation appends freshly-created
// elements to the node it is given.
type Reader struct {
	bits *bitio.Reader
}

// NewReader wraps buf (one NAL unit's RBSP bytes) for decode-direction
// traversal.
func NewReader(buf []byte) *Reader {
	return &Reader{bits: bitio.NewReader(buf)}
}

// Field decodes one field and appends it to parent. Premature end of
// bitstream panics with a fatal error naming the field, per spec.md §4.3.
func (r *Reader) Field(parent *syntax.Node, name string, ft bitio.FieldType, n int) int32 {
	v, ok := r.bits.Read(ft, n)
	if !ok {
		panic(errs.Truncation(name))
	}
	parent.Append(&syntax.Field{Name: name, Value: v})
	return v
}

// Subnode creates a fresh empty Node named name, runs fn against it, and
// appends it to parent.
func (r *Reader) Subnode(parent *syntax.Node, name string, fn func(*syntax.Node, Processor)) {
	child := syntax.NewNode(name)
	fn(child, r)
	parent.Append(child)
}

// Payload copies the remaining bytes of the current NALU (aligning to a
// byte boundary first if necessary) into a Payload named name, appended
// to parent.
func (r *Reader) Payload(parent *syntax.Node, name string) {
	var data []byte
	if !r.bits.Aligned() {
		alignBits := 8 - r.bits.BitIndex()%8
		v, ok := r.bits.Read(bitio.UnsignedInt, alignBits)
		if !ok {
			panic(errs.Truncation(name))
		}
		data = append(data, byte(v))
	}
	data = append(data, r.bits.Remaining()...)
	parent.Append(&syntax.Payload{Name: name, Data: data})
}

// MoreData reports whether syntax elements remain to be read before the
// RBSP trailing-bits pattern.
func (r *Reader) MoreData(parent *syntax.Node) bool {
	return r.bits.MoreRBSPData()
}
