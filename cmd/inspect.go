package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bugVanisher/h264syntax/h264tool"
)

var (
	inspectOut  string
	inspectJSON bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.h264>",
	Short: "Decode a bitstream and print its syntax tree (text or JSON).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(defaultFileIO, args[0], inspectOut, inspectJSON)
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectOut, "out", "o", "", "output file (default: stdout)")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "render the syntax forest as JSON instead of text")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(io FileIO, in, out string, asJSON bool) error {
	raw, err := io.ReadFile(in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", in)
	}
	if asJSON {
		buf, err := h264tool.ParseToJSON(raw)
		if err != nil {
			return errors.Wrapf(err, "inspecting %s", in)
		}
		return emit(io, out, buf)
	}
	text, err := h264tool.ParseToText(raw)
	if err != nil {
		return errors.Wrapf(err, "inspecting %s", in)
	}
	return emit(io, out, []byte(text))
}

// emit writes data to out, or to stdout via the real filesystem helper if
// out is empty. FileIO has no stdout seam by design: only file targets are
// worth mocking, so the default path uses the package-level writeStdout.
func emit(io FileIO, out string, data []byte) error {
	if out == "" {
		return writeStdout(data)
	}
	return io.WriteFile(out, data)
}
