package h264

import (
	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/bitstream"
	"github.com/bugVanisher/h264syntax/codec/syntax"
)

// ScalingList reads/writes a scaling_list of the given size (16 for
// scaling_list4x4, 64 for scaling_list8x8). Only delta_scale fields are
// written to the tree; last_scale/next_scale are computation-only and
// never appear as syntax elements.
func ScalingList(node *syntax.Node, p bitstream.Processor, size int) {
	lastScale := int32(8)
	nextScale := int32(8)
	for i := 0; i < size; i++ {
		if nextScale != 0 {
			deltaScale := p.Field(node, "delta_scale", bitio.SignedExpGolomb, 0)
			nextScale = (lastScale + deltaScale + 256) % 256
		}
		if nextScale != 0 {
			lastScale = nextScale
		}
	}
}
