// Package h264tool is the library surface over the H.264 syntax engine:
// Parse turns an Annex-B byte stream into a syntax forest (and its text
// rendering); Serialize reverses that exactly. Both recover internal
// panics from common/errs and return them as ordinary errors, so callers
// never see a panic cross this boundary.
package h264tool

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/bugVanisher/h264syntax/codec/annexb"
	"github.com/bugVanisher/h264syntax/codec/bitstream"
	"github.com/bugVanisher/h264syntax/codec/h264"
	"github.com/bugVanisher/h264syntax/codec/syntax"
)

// Parse splits buf into NAL units and decodes each into a syntax.Node
// rooted at "nalu", returning the forest in stream order.
func Parse(buf []byte) (forest []syntax.Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toError(r)
		}
	}()

	state := h264.NewState()
	for _, raw := range annexb.Split(buf) {
		node := syntax.NewNode("nalu")
		reader := bitstream.NewReader(raw)
		h264.NALU(node, reader, state)
		log.Debug().Int("bytes", len(raw)).Msg("decoded nalu")
		forest = append(forest, node)
	}
	return forest, nil
}

// ParseToText is Parse followed by the text-format rendering of spec.md §4.6.
func ParseToText(buf []byte) (string, error) {
	forest, err := Parse(buf)
	if err != nil {
		return "", err
	}
	return syntax.ForestText(forest), nil
}

// ParseToJSON is Parse followed by a machine-readable JSON rendering of the
// same forest, for the `inspect --json` debug view. It is never the
// authoritative persisted form; Serialize only ever accepts text.
func ParseToJSON(buf []byte) ([]byte, error) {
	forest, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	return jsoniter.Marshal(jsonForest(forest))
}

// Serialize parses text (spec.md §4.6 format) into a syntax forest and
// re-encodes every nalu node into Annex-B bytes, concatenated with 4-byte
// start codes in stream order.
func Serialize(text string) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toError(r)
		}
	}()

	forest, parseErr := syntax.ParseForest(text)
	if parseErr != nil {
		return nil, errors.Wrapf(parseErr, "parsing syntax text")
	}

	state := h264.NewState()
	var nalus [][]byte
	for _, el := range forest {
		node, ok := el.(*syntax.Node)
		if !ok || node.Name != "nalu" {
			return nil, errors.Errorf("expected top-level %q node, found %q", "nalu", describeElement(el))
		}
		writer := bitstream.NewWriter()
		h264.NALU(node, writer, state)
		nalus = append(nalus, writer.Bytes())
	}
	return annexb.Join(nalus), nil
}

func toError(r interface{}) error {
	if err, ok := r.(error); ok {
		return errors.Wrapf(err, "h264tool")
	}
	return errors.Errorf("h264tool: %v", r)
}

func describeElement(e syntax.Element) string {
	switch v := e.(type) {
	case *syntax.Node:
		return v.Name
	case *syntax.Field:
		return v.Name
	case *syntax.Payload:
		return v.Name
	default:
		return "?"
	}
}

// jsonElement mirrors syntax.Element as a plain, marshalable value.
type jsonElement struct {
	Name     string        `json:"name"`
	Value    *int32        `json:"value,omitempty"`
	Data     string        `json:"data,omitempty"`
	Children []jsonElement `json:"children,omitempty"`
}

func jsonForest(forest []syntax.Element) []jsonElement {
	out := make([]jsonElement, 0, len(forest))
	for _, e := range forest {
		out = append(out, jsonElementOf(e))
	}
	return out
}

func jsonElementOf(e syntax.Element) jsonElement {
	switch v := e.(type) {
	case *syntax.Field:
		val := v.Value
		return jsonElement{Name: v.Name, Value: &val}
	case *syntax.Payload:
		return jsonElement{Name: v.Name, Data: hexString(v.Data)}
	case *syntax.Node:
		children := make([]jsonElement, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, jsonElementOf(c))
		}
		return jsonElement{Name: v.Name, Children: children}
	default:
		return jsonElement{Name: "?"}
	}
}

const hexDigits = "0123456789abcdef"

func hexString(data []byte) string {
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0xf]
	}
	return string(out)
}
