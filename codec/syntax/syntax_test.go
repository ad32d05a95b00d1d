package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintFieldNodePayload(t *testing.T) {
	root := NewNode("nalu")
	root.Append(&Field{Name: "forbidden_zero_bit", Value: 0})
	sub := NewNode("sps")
	sub.Append(&Field{Name: "profile_idc", Value: 66})
	root.Append(sub)
	root.Append(&Payload{Name: "trailing_bits", Data: []byte{0x80}})

	want := "nalu {\n" +
		"\tforbidden_zero_bit: 0\n" +
		"\tsps {\n" +
		"\t\tprofile_idc: 66\n" +
		"\t}\n" +
		"\ttrailing_bits: \"80\"\n" +
		"}\n"
	require.Equal(t, want, Text(root))
}

func TestEmptyPayloadRendersEmptyQuotes(t *testing.T) {
	p := &Payload{Name: "filler_data", Data: nil}
	require.Equal(t, "filler_data: \"\"\n", Text(p))
}

func TestParseRoundTrip(t *testing.T) {
	root := NewNode("nalu")
	root.Append(&Field{Name: "nal_ref_idc", Value: 3})
	sub := NewNode("slice")
	sub.Append(&Payload{Name: "slice_payload", Data: []byte{0x88, 0x81, 0x00}})
	root.Append(sub)

	text := Text(root)
	forest, err := ParseForest(text)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	require.Equal(t, text, Text(forest[0]))
}

func TestParserTolerantOfWhitespace(t *testing.T) {
	text := "   nalu {\n\n  \t  forbidden_zero_bit:    0  \n" +
		"\t\tsps {\n" +
		"profile_idc:66\n" +
		"}\n" +
		"}\n"
	forest, err := ParseForest(text)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	node, ok := forest[0].(*Node)
	require.True(t, ok)
	require.Equal(t, "nalu", node.Name)
	require.Len(t, node.Children, 2)
	f, ok := node.Children[0].(*Field)
	require.True(t, ok)
	require.EqualValues(t, 0, f.Value)
}

func TestParseEmptyNode(t *testing.T) {
	forest, err := ParseForest("nalu {\n}\n")
	require.NoError(t, err)
	require.Len(t, forest, 1)
	node := forest[0].(*Node)
	require.Empty(t, node.Children)
}

func TestParseMalformedLineErrors(t *testing.T) {
	_, err := ParseForest("nalu {\nnotafield\n}\n")
	require.Error(t, err)
}

func TestParseMalformedHexErrors(t *testing.T) {
	_, err := ParseForest("nalu {\npayload: \"ZZ\"\n}\n")
	require.Error(t, err)
}

func TestFIFOConsumption(t *testing.T) {
	node := NewNode("n")
	node.Append(&Field{Name: "a", Value: 1})
	node.Append(&Field{Name: "b", Value: 2})
	require.False(t, node.Empty())
	first := node.PopFront()
	require.Equal(t, &Field{Name: "a", Value: 1}, first)
	second := node.PopFront()
	require.Equal(t, &Field{Name: "b", Value: 2}, second)
	require.True(t, node.Empty())
	require.Nil(t, node.PopFront())
}
