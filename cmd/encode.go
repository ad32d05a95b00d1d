package cmd

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bugVanisher/h264syntax/h264tool"
)

var encodeOut string

var encodeCmd = &cobra.Command{
	Use:   "encode <input.txt>",
	Short: "Encode a text syntax dump back into an Annex-B bitstream.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEncode(defaultFileIO, args[0], encodeOut)
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(io FileIO, in, out string) error {
	raw, err := io.ReadFile(in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", in)
	}
	buf, err := h264tool.Serialize(string(raw))
	if err != nil {
		return errors.Wrapf(err, "encoding %s", in)
	}
	log.Debug().Str("file", in).Int("bytes", len(buf)).Msg("encoded")
	return emit(io, out, buf)
}
