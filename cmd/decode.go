package cmd

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bugVanisher/h264syntax/h264tool"
)

var decodeOut string

var decodeCmd = &cobra.Command{
	Use:   "decode <input.h264>",
	Short: "Decode an Annex-B bitstream into its text syntax dump.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecode(defaultFileIO, args[0], decodeOut)
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOut, "out", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(io FileIO, in, out string) error {
	raw, err := io.ReadFile(in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", in)
	}
	text, err := h264tool.ParseToText(raw)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", in)
	}
	log.Debug().Str("file", in).Int("bytes", len(raw)).Msg("decoded")
	return emit(io, out, []byte(text))
}
