package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnsignedExpGolombRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, 2, 3, 4, 255, 1 << 20, (1 << 31) - 2} {
		w := NewWriter()
		w.Write(UnsignedExpGolomb, 0, v)
		r := NewReader(w.Bytes())
		got, ok := r.Read(UnsignedExpGolomb, 0)
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}

func TestSignedExpGolombRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, (1 << 30), -(1<<30 - 1)} {
		w := NewWriter()
		w.Write(SignedExpGolomb, 0, v)
		r := NewReader(w.Bytes())
		got, ok := r.Read(SignedExpGolomb, 0)
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}

func TestSignedExpGolombSequence(t *testing.T) {
	// S2: ue sequence {0,1,2,3,4} maps under se to {0, 1, -1, 2, -2}.
	want := []int32{0, 1, -1, 2, -2}
	for ue, se := range want {
		w := NewWriter()
		w.Write(UnsignedExpGolomb, 0, int32(ue))
		r := NewReader(w.Bytes())
		ueGot, ok := r.Read(UnsignedExpGolomb, 0)
		require.True(t, ok)
		require.Equal(t, int32(ue), ueGot)

		w2 := NewWriter()
		w2.Write(UnsignedExpGolomb, 0, int32(ue))
		r2 := NewReader(w2.Bytes())
		seGot, ok := r2.Read(SignedExpGolomb, 0)
		require.True(t, ok)
		require.Equal(t, se, seGot)
	}
}

func TestUnsignedIntRoundTrip(t *testing.T) {
	for n := 1; n <= 31; n++ {
		max := int32((1 << uint(n)) - 1)
		for _, v := range []int32{0, max, max / 2} {
			w := NewWriter()
			w.Write(UnsignedInt, n, v)
			r := NewReader(w.Bytes())
			got, ok := r.Read(UnsignedInt, n)
			require.True(t, ok)
			require.Equal(t, v, got)
		}
	}
}

func TestSignedIntRoundTrip(t *testing.T) {
	for n := 2; n <= 31; n++ {
		for _, v := range []int32{0, 1, -1} {
			w := NewWriter()
			w.Write(SignedInt, n, v)
			r := NewReader(w.Bytes())
			got, ok := r.Read(SignedInt, n)
			require.True(t, ok)
			require.Equal(t, v, got)
		}
	}
}

func TestBooleanRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Write(Boolean, 0, 1)
	w.Write(Boolean, 0, 0)
	r := NewReader(w.Bytes())
	v1, ok := r.Read(Boolean, 0)
	require.True(t, ok)
	require.EqualValues(t, 1, v1)
	v2, ok := r.Read(Boolean, 0)
	require.True(t, ok)
	require.EqualValues(t, 0, v2)
}

func TestReadTruncated(t *testing.T) {
	r := NewReader([]byte{0b10000000})
	// one ue(v) field reads fine
	v, ok := r.Read(UnsignedExpGolomb, 0)
	require.True(t, ok)
	require.EqualValues(t, 0, v)
	// nothing left
	_, ok = r.Read(Boolean, 0)
	require.False(t, ok)
}

func TestReadPanicsOnOversizeField(t *testing.T) {
	r := NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0})
	require.Panics(t, func() { r.Read(UnsignedInt, 65) })
}

func TestWritePanicsOnOversizeField(t *testing.T) {
	w := NewWriter()
	require.Panics(t, func() { w.Write(UnsignedInt, 65, 0) })
}

func TestS1ExpGolombScenario(t *testing.T) {
	r := NewReader([]byte{0b10000000})
	v, ok := r.Read(UnsignedExpGolomb, 0)
	require.True(t, ok)
	require.EqualValues(t, 0, v)

	r2 := NewReader([]byte{0b01000000, 0b00000000})
	v2, ok := r2.Read(UnsignedExpGolomb, 0)
	require.True(t, ok)
	require.EqualValues(t, 1, v2)
}

func TestMoreRBSPData(t *testing.T) {
	// trailing bits pattern: single 1 then zero-fill
	r := NewReader([]byte{0b10000000})
	require.False(t, r.MoreRBSPData())

	r2 := NewReader([]byte{0b11000000})
	require.True(t, r2.MoreRBSPData())

	r3 := NewReader([]byte{0xFF, 0b10000000})
	_, _ = r3.Read(UnsignedInt, 8)
	require.False(t, r3.MoreRBSPData())
}
