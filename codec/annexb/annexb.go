// Package annexb implements Annex-B byte-stream framing: splitting a raw
// byte stream into NAL units on decode, and re-inserting start codes on
// encode.
package annexb

// Split scans buf for start codes (00 00 01 or 00 00 00 01), consuming
// them, and returns the byte ranges between them as separate NAL units.
// An initial region with no preceding start code is emitted as a NALU if
// non-empty; empty segments between adjacent start codes are dropped.
func Split(buf []byte) [][]byte {
	var nalus [][]byte
	start := 0
	i := 0
	for i < len(buf) {
		if startsWithCode(buf, i, 4) {
			if i != start {
				nalus = append(nalus, buf[start:i])
			}
			i += 4
			start = i
			continue
		}
		if startsWithCode(buf, i, 3) {
			if i != start {
				nalus = append(nalus, buf[start:i])
			}
			i += 3
			start = i
			continue
		}
		i++
	}
	if start != len(buf) {
		nalus = append(nalus, buf[start:])
	}
	return nalus
}

// startsWithCode reports whether buf[i:] begins with a start code of the
// given length (3 or 4): n-1 zero bytes followed by 0x01.
func startsWithCode(buf []byte, i, n int) bool {
	if i+n > len(buf) {
		return false
	}
	for j := 0; j < n-1; j++ {
		if buf[i+j] != 0x00 {
			return false
		}
	}
	return buf[i+n-1] == 0x01
}

// Join concatenates nalus, prefixing each with the 4-byte start code
// 00 00 00 01. Input order is preserved; the 3-byte form is never used.
func Join(nalus [][]byte) []byte {
	out := make([]byte, 0)
	for _, n := range nalus {
		out = append(out, 0x00, 0x00, 0x00, 0x01)
		out = append(out, n...)
	}
	return out
}
