package lbytes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadUInt32(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	resultInt1, err := reader.ReadUInt32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(50594051), resultInt1)

	resultInt2, err := reader.ReadUInt32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1312301580), resultInt2)

	_, err = reader.ReadUInt32()
	assert.Error(t, err)
}

func TestReader_ReadBytesShort(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})

	bs, err := reader.ReadBytes(0)
	require.NoError(t, err)
	assert.Empty(t, bs)

	_, err = reader.ReadBytes(4)
	assert.Error(t, err)
}

func TestExecuteInstructions(t *testing.T) {
	type pair struct {
		Magic []byte `json:"magic"`
		Value uint32 `json:"value"`
	}
	reader := NewBytesReader([]byte{'A', 'B', 7, 0, 0, 0})
	instructions := []Instruction{
		{"magic", CreateNBytesReadFunction(reader, 2)},
		{"value", CreateUInt32ReadFunction(reader)},
	}

	result, err := ExecuteInstructions[pair](instructions)
	require.NoError(t, err)
	assert.Equal(t, []byte("AB"), result.Magic)
	assert.Equal(t, uint32(7), result.Value)
}

func TestSlice(t *testing.T) {
	bs := []byte{0, 1, 2, 3, 4, 5}

	window, err := Slice(bs, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3, 4}, window)

	_, err = Slice(bs, 4, 3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	// offset + length would wrap around in 64 bits
	_, err = Slice(bs, ^uint64(0)-1, 4)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestUInt32At(t *testing.T) {
	bs := EncodeValueUInt32(0xdeadbeef)

	value, err := UInt32At(bs, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), value)

	_, err = UInt32At(bs, 1)
	assert.Error(t, err)

	b, err := UInt8At(bs, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xde), b)
}
