package h264

import (
	"math"

	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/bitstream"
	"github.com/bugVanisher/h264syntax/codec/syntax"
)

// SliceHeader parses/serializes slice_header(), per H.264 §7.3.3.
func SliceHeader(node *syntax.Node, p bitstream.Processor, state *State, naluType, nalRefIdc int32) {
	p.Field(node, "first_mb_in_slice", bitio.UnsignedExpGolomb, 0)
	sliceType := sliceTypeFromCode(p.Field(node, "slice_type", bitio.UnsignedExpGolomb, 0))
	p.Field(node, "pic_parameter_set_id", bitio.UnsignedExpGolomb, 0)
	if state.SeparateColorPlaneFlag {
		p.Field(node, "color_plane_id", bitio.UnsignedInt, 2)
	}
	frameNumSize := int(state.Log2MaxFrameNumMinus4 + 4)
	p.Field(node, "frame_num", bitio.UnsignedInt, frameNumSize)

	fieldPicFlag := false
	if !state.FrameMbsOnlyFlag {
		fieldPicFlag = p.Field(node, "field_pic_flag", bitio.Boolean, 1) != 0
		if fieldPicFlag {
			p.Field(node, "bottom_field_flag", bitio.Boolean, 1)
		}
	}

	idrPicFlag := naluType == 5
	if idrPicFlag {
		p.Field(node, "idr_pic_id", bitio.UnsignedExpGolomb, 0)
	}

	if state.PicOrderCntType == 0 {
		picOrderCntLsbSize := int(state.Log2MaxPicOrderCntLsbMinus4 + 4)
		p.Field(node, "pic_order_cnt_lsb", bitio.UnsignedInt, picOrderCntLsbSize)
		if state.BottomFieldPicOrderInFramePresentFlag && !fieldPicFlag {
			p.Field(node, "delta_pic_order_cnt_bottom", bitio.SignedExpGolomb, 0)
		}
	}
	if state.PicOrderCntType == 1 && !state.DeltaPicOrderAlwaysZeroFlag {
		p.Field(node, "delta_pic_order_cnt", bitio.SignedExpGolomb, 0)
	}

	if state.RedundantPicCntPresentFlag {
		p.Field(node, "redundant_pic_cnt", bitio.UnsignedExpGolomb, 0)
	}

	if sliceType == SliceB {
		p.Field(node, "direct_spatial_mv_pred_flag", bitio.Boolean, 1)
	}

	// num_ref_idx_l{0,1}_active_minus1 overrides below are intentionally not
	// written back into state: PPS never records the default values either,
	// so state.NumRefIdxL{0,1}ActiveMinus1 stay at their zero value for the
	// life of the traversal, and pred_weight_table sizes its loops off those
	// zero values rather than the actual active count. This reproduces the
	// original tool's behavior bit-for-bit rather than the corrected H.264
	// semantics (see the Open Question this resolves in DESIGN.md).
	if sliceType == SliceP || sliceType == SliceSP || sliceType == SliceB {
		overrideFlag := p.Field(node, "num_ref_idx_active_override_flag", bitio.Boolean, 1) != 0
		if overrideFlag {
			p.Field(node, "num_ref_idx_l0_active_minus1", bitio.UnsignedExpGolomb, 0)
		}
		if sliceType == SliceB {
			p.Field(node, "num_ref_idx_l1_active_minus1", bitio.UnsignedExpGolomb, 0)
		}
	}

	refPicListName := "ref_pic_list_modification"
	if naluType == 20 || naluType == 21 {
		refPicListName = "ref_pic_list_mvc_modification"
	}
	p.Subnode(node, refPicListName, func(n *syntax.Node, pp bitstream.Processor) {
		RefPicListModification(n, pp, sliceType)
	})

	if (state.WeightedPredFlag && (sliceType == SliceP || sliceType == SliceSP)) ||
		(state.WeightedBipredIdc == 1 && sliceType == SliceB) {
		p.Subnode(node, "pred_weight_table", func(n *syntax.Node, pp bitstream.Processor) {
			PredWeightTable(n, pp, state, sliceType)
		})
	}

	if nalRefIdc != 0 {
		p.Subnode(node, "dec_ref_pic_marking", func(n *syntax.Node, pp bitstream.Processor) {
			DecRefPicMarking(n, pp, idrPicFlag)
		})
	}

	if state.EntropyCodingModeFlag && sliceType != SliceI && sliceType != SliceSI {
		p.Field(node, "cabac_init_idc", bitio.UnsignedExpGolomb, 0)
	}

	p.Field(node, "slice_qp_delta", bitio.SignedExpGolomb, 0)

	if sliceType == SliceSP || sliceType == SliceSI {
		if sliceType == SliceSP {
			p.Field(node, "sp_for_switch_flag", bitio.Boolean, 1)
		}
		p.Field(node, "slice_qs_delta", bitio.SignedExpGolomb, 0)
	}

	if state.DeblockingFilterControlPresentFlag {
		disableDeblockingFilterIdc := p.Field(node, "disable_deblocking_filter_idc", bitio.UnsignedExpGolomb, 0)
		if disableDeblockingFilterIdc != 1 {
			p.Field(node, "slice_alpha_c0_offset_div2", bitio.SignedExpGolomb, 0)
			p.Field(node, "slice_beta_offset_div2", bitio.SignedExpGolomb, 0)
		}
	}

	if state.NumSliceGroupsMinus1 > 0 && state.SliceGroupMapType >= 3 && state.SliceGroupMapType <= 5 {
		sliceGroupChangeCycleSize := int(math.Ceil(math.Log2(
			float64((state.PicSizeInMapUnitsMinus1+1)/(state.SliceGroupChangeRateMinus1+1) + 1))))
		p.Field(node, "slice_group_change_cycle", bitio.UnsignedInt, sliceGroupChangeCycleSize)
	}
}

// Slice parses/serializes slice(), the top-level node for NAL units of type
// 1-5: a slice_header subnode followed by an opaque slice_payload.
func Slice(node *syntax.Node, p bitstream.Processor, state *State, naluType, nalRefIdc int32) {
	p.Subnode(node, "slice_header", func(n *syntax.Node, pp bitstream.Processor) {
		SliceHeader(n, pp, state, naluType, nalRefIdc)
	})
	p.Payload(node, "slice_payload")
}
