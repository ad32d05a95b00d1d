package h264

import (
	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/bitstream"
	"github.com/bugVanisher/h264syntax/codec/syntax"
)

// Filler parses/serializes a NAL unit body this tree does not interpret:
// filler_nalu (type 12) and any unrecognized nal_unit_type. Both are kept
// as an opaque trailing payload so round-trip remains lossless.
func Filler(node *syntax.Node, p bitstream.Processor) {
	p.Payload(node, "filler_data")
}

// NALU parses/serializes a single nalu node: the 1-byte NAL header followed
// by a dispatch to the syntax appropriate for nal_unit_type.
func NALU(node *syntax.Node, p bitstream.Processor, state *State) {
	p.Field(node, "forbidden_zero_bit", bitio.Boolean, 1)
	nalRefIdc := p.Field(node, "nal_ref_idc", bitio.UnsignedInt, 2)
	naluType := p.Field(node, "nal_unit_type", bitio.UnsignedInt, 5)

	switch naluType {
	case 1, 2, 3, 4, 5:
		p.Subnode(node, "slice", func(n *syntax.Node, pp bitstream.Processor) {
			Slice(n, pp, state, naluType, nalRefIdc)
		})
	case 7:
		p.Subnode(node, "sps", func(n *syntax.Node, pp bitstream.Processor) {
			SPS(n, pp, state)
		})
	case 8:
		p.Subnode(node, "pps", func(n *syntax.Node, pp bitstream.Processor) {
			PPS(n, pp, state)
		})
	case 12:
		p.Subnode(node, "filler_nalu", func(n *syntax.Node, pp bitstream.Processor) {
			Filler(n, pp)
		})
	default:
		p.Subnode(node, "unparsed_nalu", func(n *syntax.Node, pp bitstream.Processor) {
			Filler(n, pp)
		})
	}
}
