package h264

import (
	"fmt"

	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/bitstream"
	"github.com/bugVanisher/h264syntax/codec/syntax"
)

// highChromaProfiles are the profile_idc values that carry the extended
// chroma/bit-depth/scaling-matrix block, per H.264 §7.3.2.1.1. Follows the
// original source's exact constant set (spec.md §9 Open Question 3) rather
// than any documentation variant that lists 144 instead of 244.
var highChromaProfiles = map[int32]bool{
	44: true, 83: true, 86: true, 100: true, 110: true, 118: true, 122: true,
	128: true, 134: true, 135: true, 138: true, 139: true, 244: true,
}

// SPS parses/serializes a sequence_parameter_set_rbsp, per spec.md §4.4.
// It updates state for every flag/field that influences later NALUs.
func SPS(node *syntax.Node, p bitstream.Processor, state *State) {
	profileIdc := p.Field(node, "profile_idc", bitio.UnsignedInt, 8)
	p.Field(node, "constraint_set0_flag", bitio.Boolean, 1)
	p.Field(node, "constraint_set1_flag", bitio.Boolean, 1)
	p.Field(node, "constraint_set2_flag", bitio.Boolean, 1)
	p.Field(node, "constraint_set3_flag", bitio.Boolean, 1)
	p.Field(node, "constraint_set4_flag", bitio.Boolean, 1)
	p.Field(node, "constraint_set5_flag", bitio.Boolean, 1)
	p.Field(node, "reserved_zero_2bits", bitio.UnsignedInt, 2)
	p.Field(node, "level_idc", bitio.UnsignedInt, 8)
	p.Field(node, "seq_paramter_set_id", bitio.UnsignedExpGolomb, 0)

	if highChromaProfiles[profileIdc] {
		chromaFormatIdc := p.Field(node, "chroma_format_idc", bitio.UnsignedExpGolomb, 0)
		state.ChromaFormatIdc = chromaFormatIdc
		if chromaFormatIdc == 3 {
			state.SeparateColorPlaneFlag = p.Field(node, "separate_color_plane_flag", bitio.Boolean, 1) != 0
		}
		p.Field(node, "bit_depth_luma_minus8", bitio.UnsignedExpGolomb, 0)
		p.Field(node, "bit_depth_chroma_minus8", bitio.UnsignedExpGolomb, 0)
		p.Field(node, "qpprime_y_zero_transform_bypass_flag", bitio.Boolean, 1)
		seqScalingMatrixPresentFlag := p.Field(node, "seq_scaling_matrix_present_flag", bitio.Boolean, 1)
		if seqScalingMatrixPresentFlag != 0 {
			count := 8
			if chromaFormatIdc == 3 {
				count = 12
			}
			for i := 0; i < count; i++ {
				present := p.Field(node, fmt.Sprintf("seq_scaling_list_present_flag[%d]", i), bitio.Boolean, 1) != 0
				if present {
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
	}

	state.Log2MaxFrameNumMinus4 = p.Field(node, "log2_max_frame_num_minus4", bitio.UnsignedExpGolomb, 0)
	picOrderCntType := p.Field(node, "pic_order_cnt_type", bitio.UnsignedExpGolomb, 0)
	state.PicOrderCntType = picOrderCntType
	if picOrderCntType == 0 {
		state.Log2MaxPicOrderCntLsbMinus4 = p.Field(node, "log2_max_pic_order_cnt_lsb_minus4", bitio.UnsignedExpGolomb, 0)
	} else if picOrderCntType == 1 {
		state.DeltaPicOrderAlwaysZeroFlag = p.Field(node, "delta_pic_order_always_zero_flag", bitio.Boolean, 1) != 0
		p.Field(node, "offset_for_non_ref_pic", bitio.SignedExpGolomb, 0)
		p.Field(node, "offset_for_top_to_bottom_field", bitio.SignedExpGolomb, 0)
		numRefFramesInPicOrderCntCycle := p.Field(node, "num_ref_frames_in_pic_order_cnt_cycle", bitio.UnsignedExpGolomb, 0)
		for i := int32(0); i < numRefFramesInPicOrderCntCycle; i++ {
			p.Field(node, fmt.Sprintf("offset_for_ref_frame[%d]", i), bitio.SignedExpGolomb, 0)
		}
	}

	p.Field(node, "max_num_ref_frames", bitio.UnsignedExpGolomb, 0)
	p.Field(node, "gaps_in_frame_num_value_allowed_flag", bitio.Boolean, 1)
	p.Field(node, "pic_width_in_mbs_minus1", bitio.UnsignedExpGolomb, 0)
	p.Field(node, "pic_height_in_mbs_minus1", bitio.UnsignedExpGolomb, 0)
	frameMbsOnlyFlag := p.Field(node, "frame_mbs_only_flag", bitio.Boolean, 1)
	state.FrameMbsOnlyFlag = frameMbsOnlyFlag != 0
	if frameMbsOnlyFlag == 0 {
		p.Field(node, "mb_adaptive_frame_field_flag", bitio.Boolean, 1)
	}
	p.Field(node, "direct_8x8_inference_flag", bitio.Boolean, 1)
	frameCroppingFlag := p.Field(node, "frame_cropping_flag", bitio.Boolean, 1)
	if frameCroppingFlag != 0 {
		p.Field(node, "frame_crop_left_offset", bitio.UnsignedExpGolomb, 0)
		p.Field(node, "frame_crop_right_offset", bitio.UnsignedExpGolomb, 0)
		p.Field(node, "frame_crop_top_offset", bitio.UnsignedExpGolomb, 0)
		p.Field(node, "frame_crop_bottom_offset", bitio.UnsignedExpGolomb, 0)
	}
	vuiParametersPresentFlag := p.Field(node, "vui_parameters_present_flag", bitio.Boolean, 1)
	if vuiParametersPresentFlag != 0 {
		p.Payload(node, "unparsed_vui_params")
	} else {
		p.Payload(node, "trailing_bits")
	}
}
