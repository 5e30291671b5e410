package lbheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lbprobe/lbtable/lbchecksum"
)

func TestDecode(t *testing.T) {
	header := Header{
		Signature:      SignatureBytes,
		HeaderBytes:    DefaultHeaderSize,
		HeaderChecksum: 0x1234,
		TableBytes:     0x40,
		TableChecksum:  0xbeef,
		TableEntries:   3,
	}
	bs := Encode(header)
	require.Len(t, bs, DefaultHeaderSize)

	decoded, err := Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, header, *decoded)
	assert.True(t, IsValidSignature(decoded.Signature))
}

func TestDecode_Short(t *testing.T) {
	_, err := Decode([]byte("LBIO"))
	assert.Error(t, err)
}

func TestEncodeTable(t *testing.T) {
	records := []byte{1, 0, 0, 0, 8, 0, 0, 0}
	bs := EncodeTable(records, 1)

	header, err := Decode(bs)
	require.NoError(t, err)
	assert.True(t, lbchecksum.Valid(bs[:DefaultHeaderSize]))
	assert.Equal(t, uint32(lbchecksum.Compute(records)), header.TableChecksum)
	assert.Equal(t, uint32(len(records)), header.TableBytes)

	table := Table{Offset: 0x10, Header: *header}
	assert.Equal(t, uint64(0x10+DefaultHeaderSize), table.RecordsStart())
	assert.Equal(t, uint64(0x10+DefaultHeaderSize+8), table.RecordsEnd())
}
