package h264tool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// S6 end-to-end: decode a filler NALU framed with a 4-byte start code,
// check the text dump, then serialize it back to the original bytes.
func TestParseSerializeFillerRoundTrip(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x00, 0x01, 0x0C, 0xFF, 0xFF, 0xFF, 0x80}

	text, err := ParseToText(raw)
	require.NoError(t, err)
	require.Contains(t, text, "filler_nalu")
	require.Contains(t, text, `filler_data: "FF FF FF 80"`)

	out, err := Serialize(text)
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

// S5 end-to-end: an unrecognized nal_unit_type round-trips as an opaque
// unparsed_nalu. The 3-byte start code comes back in the 4-byte form.
func TestParseSerializeUnparsedRoundTrip(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x01, byte(30), 0xDE, 0xAD, 0xBE, 0xEF}
	want := []byte{0x00, 0x00, 0x00, 0x01, byte(30), 0xDE, 0xAD, 0xBE, 0xEF}

	forest, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	text, err := ParseToText(raw)
	require.NoError(t, err)
	out, err := Serialize(text)
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestParseMultipleNALUs(t *testing.T) {
	raw := []byte{
		0x00, 0x00, 0x00, 0x01, 0x0C, 0xFF, 0x80,
		0x00, 0x00, 0x01, 0x0C, 0xAA,
	}
	text, err := ParseToText(raw)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(text, "nalu {"))

	// Serialize frames every NALU with the 4-byte start code.
	want := []byte{
		0x00, 0x00, 0x00, 0x01, 0x0C, 0xFF, 0x80,
		0x00, 0x00, 0x00, 0x01, 0x0C, 0xAA,
	}
	out, err := Serialize(text)
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestParseToJSONProducesValidDocument(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x00, 0x01, 0x0C, 0xFF, 0x80}
	doc, err := ParseToJSON(raw)
	require.NoError(t, err)
	require.Contains(t, string(doc), `"name":"nalu"`)
	require.Contains(t, string(doc), `"filler_nalu"`)
}

func TestSerializeTreeMismatchReturnsError(t *testing.T) {
	_, err := Serialize("not_a_nalu {\n}\n")
	require.Error(t, err)
}

func TestSerializeMalformedTextReturnsError(t *testing.T) {
	_, err := Serialize("nalu {\nforbidden_zero_bit\n}\n")
	require.Error(t, err)
}
