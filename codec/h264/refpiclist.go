package h264

import (
	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/bitstream"
	"github.com/bugVanisher/h264syntax/codec/syntax"
)

// RefPicListModification parses/serializes ref_pic_list_modification(),
// per H.264 §7.3.3.1.
func RefPicListModification(node *syntax.Node, p bitstream.Processor, sliceType SliceType) {
	if sliceType != SliceI && sliceType != SliceSI {
		flag := p.Field(node, "ref_pic_list_modification_flag_l0", bitio.Boolean, 1)
		if flag != 0 {
			modificationLoop(node, p)
		}
	}
	if sliceType == SliceB {
		flag := p.Field(node, "ref_pic_list_modification_flag_l1", bitio.Boolean, 1)
		if flag != 0 {
			modificationLoop(node, p)
		}
	}
}

// modificationLoop reads one modification_of_pic_nums_idc run, handling the
// base H.264 cases (0,1,2) plus the MVC extension index case (4,5); idc==3
// terminates the loop.
func modificationLoop(node *syntax.Node, p bitstream.Processor) {
	for {
		idc := p.Field(node, "modification_of_pic_nums_idc", bitio.UnsignedExpGolomb, 0)
		switch idc {
		case 0, 1:
			p.Field(node, "abs_diff_pic_num_minus1", bitio.UnsignedExpGolomb, 0)
		case 2:
			p.Field(node, "long_term_pic_num", bitio.UnsignedExpGolomb, 0)
		case 4, 5:
			p.Field(node, "abs_diff_view_idx_minus1", bitio.UnsignedExpGolomb, 0)
		default:
			return
		}
	}
}
