package h264

import (
	"fmt"
	"math/bits"

	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/bitstream"
	"github.com/bugVanisher/h264syntax/codec/syntax"
)

// PPS parses/serializes a picture_parameter_set_rbsp, per spec.md §4.4.
func PPS(node *syntax.Node, p bitstream.Processor, state *State) {
	p.Field(node, "pic_parameter_set_id", bitio.UnsignedExpGolomb, 0)
	p.Field(node, "seq_parameter_set_id", bitio.UnsignedExpGolomb, 0)
	state.EntropyCodingModeFlag = p.Field(node, "entropy_coding_mode_flag", bitio.Boolean, 1) != 0
	state.BottomFieldPicOrderInFramePresentFlag = p.Field(node, "bottom_field_pic_order_in_frame_present_flag", bitio.Boolean, 1) != 0

	numSliceGroupsMinus1 := p.Field(node, "num_slice_groups_minus1", bitio.UnsignedExpGolomb, 0)
	state.NumSliceGroupsMinus1 = numSliceGroupsMinus1
	if numSliceGroupsMinus1 > 0 {
		sliceGroupMapType := p.Field(node, "slice_group_map_type", bitio.UnsignedExpGolomb, 0)
		state.SliceGroupMapType = sliceGroupMapType
		switch {
		case sliceGroupMapType == 0:
			for i := int32(0); i <= numSliceGroupsMinus1; i++ {
				p.Field(node, fmt.Sprintf("run_length_minus1[%d]", i), bitio.UnsignedExpGolomb, 0)
			}
		case sliceGroupMapType == 2:
			for i := int32(0); i < numSliceGroupsMinus1; i++ {
				p.Field(node, fmt.Sprintf("top_left[%d]", i), bitio.UnsignedExpGolomb, 0)
				p.Field(node, fmt.Sprintf("bottom_right[%d]", i), bitio.UnsignedExpGolomb, 0)
			}
		case sliceGroupMapType >= 3 && sliceGroupMapType <= 5:
			p.Field(node, "slice_group_change_direction_flag", bitio.Boolean, 1)
			state.SliceGroupChangeRateMinus1 = p.Field(node, "slice_group_change_rate_minus1", bitio.UnsignedExpGolomb, 0)
		case sliceGroupMapType == 6:
			picSizeInMapUnitsMinus1 := p.Field(node, "pic_size_in_map_units_minus1", bitio.UnsignedExpGolomb, 0)
			state.PicSizeInMapUnitsMinus1 = picSizeInMapUnitsMinus1
			width := ceilLog2(numSliceGroupsMinus1 + 1)
			for i := int32(0); i <= picSizeInMapUnitsMinus1; i++ {
				p.Field(node, fmt.Sprintf("slice_group_id[%d]", i), bitio.UnsignedInt, width)
			}
		}
	}

	p.Field(node, "num_ref_idx_l0_default_active_minus1", bitio.UnsignedExpGolomb, 0)
	p.Field(node, "num_ref_idx_l1_default_active_minus1", bitio.UnsignedExpGolomb, 0)
	state.WeightedPredFlag = p.Field(node, "weighted_pred_flag", bitio.Boolean, 1) != 0
	state.WeightedBipredIdc = p.Field(node, "weighted_bipred_idc", bitio.UnsignedInt, 2)
	p.Field(node, "pic_init_qp_minus26", bitio.SignedExpGolomb, 0)
	p.Field(node, "pic_init_qs_minus26", bitio.SignedExpGolomb, 0)
	p.Field(node, "chroma_qp_index_offset", bitio.SignedExpGolomb, 0)
	state.DeblockingFilterControlPresentFlag = p.Field(node, "deblocking_filter_control_present_flag", bitio.Boolean, 1) != 0
	p.Field(node, "constrained_intra_pred_flag", bitio.Boolean, 1)
	state.RedundantPicCntPresentFlag = p.Field(node, "redundant_pic_cnt_present_flag", bitio.Boolean, 1) != 0

	if p.MoreData(node) {
		transform8x8ModeFlag := p.Field(node, "transform_8x8_mode_flag", bitio.Boolean, 1)
		picScalingMatrixPresentFlag := p.Field(node, "pic_scaling_matrix_present_flag", bitio.Boolean, 1)
		if picScalingMatrixPresentFlag != 0 {
			extra := int32(2)
			if state.ChromaFormatIdc == 3 {
				extra = 6
			}
			count := 6 + transform8x8ModeFlag*extra
			for i := int32(0); i < count; i++ {
				present := p.Field(node, fmt.Sprintf("pic_scaling_list_present_flag[%d]", i), bitio.Boolean, 1)
				if present != 0 {
					if i < 6 {
						p.Subnode(node, "scaling_list4x4", func(n *syntax.Node, pp bitstream.Processor) {
							ScalingList(n, pp, 16)
						})
					} else {
						p.Subnode(node, "scaling_list8x8", func(n *syntax.Node, pp bitstream.Processor) {
							ScalingList(n, pp, 64)
						})
					}
				}
			}
		}
		p.Field(node, "second_chroma_qp_index_offset", bitio.SignedExpGolomb, 0)
	}
	p.Payload(node, "trailing_bits")
}

// ceilLog2 returns ceil(log2(v)) for v >= 1, matching the width H.264 uses
// for slice_group_id[i] (Ceil(Log2(num_slice_groups_minus1 + 1))).
func ceilLog2(v int32) int {
	if v <= 1 {
		return 0
	}
	return bits.Len32(uint32(v - 1))
}
