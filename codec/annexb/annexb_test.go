package annexb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Property 5: applying the splitter to start_code . N1 . start_code . N2
// returns [N1, N2] whether the delimiters are 3-byte or 4-byte.
func TestSplitBothStartCodeWidths(t *testing.T) {
	n1 := []byte{0x67, 0x42, 0x00, 0x1E}
	n2 := []byte{0x68, 0xCE}

	fourByte := append(append(append([]byte{0x00, 0x00, 0x00, 0x01}, n1...), 0x00, 0x00, 0x00, 0x01), n2...)
	require.Equal(t, [][]byte{n1, n2}, Split(fourByte))

	threeByte := append(append(append([]byte{0x00, 0x00, 0x01}, n1...), 0x00, 0x00, 0x01), n2...)
	require.Equal(t, [][]byte{n1, n2}, Split(threeByte))
}

func TestSplitDropsEmptySegments(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x65, 0xAA}
	require.Equal(t, [][]byte{{0x65, 0xAA}}, Split(buf))
}

func TestSplitLeadingRegionWithoutStartCode(t *testing.T) {
	buf := []byte{0xAA, 0xBB, 0x00, 0x00, 0x00, 0x01, 0x67}
	require.Equal(t, [][]byte{{0xAA, 0xBB}, {0x67}}, Split(buf))
}

func TestJoinInsertsFourByteStartCodes(t *testing.T) {
	nalus := [][]byte{{0x67, 0x42}, {0x68, 0xCE}}
	got := Join(nalus)
	want := []byte{0x00, 0x00, 0x00, 0x01, 0x67, 0x42, 0x00, 0x00, 0x00, 0x01, 0x68, 0xCE}
	require.Equal(t, want, got)
}

func TestSplitJoinRoundTrip(t *testing.T) {
	nalus := [][]byte{{0x67, 0x42, 0x00, 0x1E}, {0x68, 0xCE, 0x3C, 0x80}, {0x65, 0xAA, 0xBB}}
	joined := Join(nalus)
	require.Equal(t, nalus, Split(joined))
}
