package lbheader

import (
	"bytes"

	"github.com/pkg/errors"
	"lbprobe/lbytes"
)

func IsValidSignature(bs []byte) bool {
	return bytes.Equal(bs, SignatureBytes)
}

// Decode reads a header from the first DefaultHeaderSize bytes of bs. It does
// not validate anything besides the length of bs.
func Decode(bs []byte) (*Header, error) {
	if len(bs) < DefaultHeaderSize {
		return nil, errors.Wrapf(
			lbytes.ErrOutOfBounds,
			"lbheader.Decode error: need %d bytes, got %d", DefaultHeaderSize, len(bs),
		)
	}
	reader := lbytes.NewBytesReader(bs[:DefaultHeaderSize])
	read4Bytes := lbytes.CreateNBytesReadFunction(reader, 4)
	readUInt32 := lbytes.CreateUInt32ReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "signature", ReadFunction: read4Bytes},
		{Key: "header_bytes", ReadFunction: readUInt32},
		{Key: "header_checksum", ReadFunction: readUInt32},
		{Key: "table_bytes", ReadFunction: readUInt32},
		{Key: "table_checksum", ReadFunction: readUInt32},
		{Key: "table_entries", ReadFunction: readUInt32},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "lbheader.Decode error")
	}

	return header, nil
}
