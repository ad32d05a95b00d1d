package cmd

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestRunDecodeWritesTextOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	io := NewMockFileIO(ctrl)
	io.EXPECT().ReadFile("in.h264").Return([]byte{0x0C, 0xFF, 0x80}, nil)
	io.EXPECT().WriteFile("out.txt", gomock.Any()).DoAndReturn(func(path string, data []byte) error {
		require.Contains(t, string(data), "filler_nalu")
		return nil
	})

	err := runDecode(io, "in.h264", "out.txt")
	require.NoError(t, err)
}

func TestRunDecodePropagatesReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	io := NewMockFileIO(ctrl)
	io.EXPECT().ReadFile("missing.h264").Return(nil, assertError("boom"))

	err := runDecode(io, "missing.h264", "out.txt")
	require.Error(t, err)
}

type assertError string

func (e assertError) Error() string { return string(e) }
