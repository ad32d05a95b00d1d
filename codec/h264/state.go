// Package h264 implements the declarative H.264 syntax traversal
// procedures of spec.md §4.4: SPS, PPS, slice header, ref-pic-list
// modification, pred-weight-table, dec-ref-pic-marking, scaling list, and
// NAL unit dispatch. Each procedure takes a *bitstream.Processor and
// therefore serves as both parser and serializer.
package h264

// State carries the fields whose values in one NAL unit affect parsing of
// later NAL units. It is owned by a single traversal (one Parse or one
// Serialize call) and passed explicitly; it is never shared or mutated
// concurrently.
type State struct {
	ChromaFormatIdc                           int32
	SeparateColorPlaneFlag                    bool
	FrameMbsOnlyFlag                          bool
	PicOrderCntType                           int32
	BottomFieldPicOrderInFramePresentFlag     bool
	DeltaPicOrderAlwaysZeroFlag               bool
	RedundantPicCntPresentFlag                bool
	WeightedPredFlag                          bool
	WeightedBipredIdc                         int32
	EntropyCodingModeFlag                     bool
	DeblockingFilterControlPresentFlag        bool
	NumSliceGroupsMinus1                      int32
	SliceGroupMapType                         int32
	Log2MaxFrameNumMinus4                     int32
	Log2MaxPicOrderCntLsbMinus4               int32
	NumRefIdxL0ActiveMinus1                   int32
	NumRefIdxL1ActiveMinus1                   int32
	PicSizeInMapUnitsMinus1                   int32
	SliceGroupChangeRateMinus1                int32
}

// NewState returns a freshly-initialized State, as at the start of a
// stream. chroma_format_idc defaults to 1 per the H.264 semantics when no
// SPS extension block has set it yet.
func NewState() *State {
	return &State{ChromaFormatIdc: 1}
}
