package h264

import (
	"github.com/bugVanisher/h264syntax/codec/bitio"
	"github.com/bugVanisher/h264syntax/codec/bitstream"
	"github.com/bugVanisher/h264syntax/codec/syntax"
)

// DecRefPicMarking parses/serializes dec_ref_pic_marking(), per H.264
// §7.3.3.3 / Table 7-9.
func DecRefPicMarking(node *syntax.Node, p bitstream.Processor, idrPicFlag bool) {
	if idrPicFlag {
		p.Field(node, "no_output_of_prior_pics_flag", bitio.Boolean, 1)
		p.Field(node, "long_term_reference_flag", bitio.Boolean, 1)
		return
	}
	adaptiveRefPicMarkingModeFlag := p.Field(node, "adaptive_ref_pic_marking_mode_flag", bitio.Boolean, 1) != 0
	if !adaptiveRefPicMarkingModeFlag {
		return
	}
	for {
		mmco := p.Field(node, "memory_management_control_operation", bitio.UnsignedExpGolomb, 0)
		if mmco == 0 {
			return
		}
		if mmco == 1 || mmco == 3 {
			p.Field(node, "difference_of_pic_nums_minus1", bitio.UnsignedExpGolomb, 0)
		}
		if mmco == 2 {
			p.Field(node, "long_term_pic_num", bitio.UnsignedExpGolomb, 0)
		}
		if mmco == 3 || mmco == 6 {
			p.Field(node, "long_term_frame_idx", bitio.UnsignedExpGolomb, 0)
		}
		if mmco == 4 {
			p.Field(node, "max_long_term_frame_idx_plus1", bitio.UnsignedExpGolomb, 0)
		}
	}
}
