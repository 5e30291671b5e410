package lbrecord

import (
	"lbprobe/lbytes"
)

// Encode lays out a record with the given payload; the size field covers the
// record header and the payload.
func Encode(tag uint32, payload []byte) []byte {
	bs := make([]byte, 0, DefaultHeaderSize+len(payload))
	bs = append(bs, lbytes.EncodeValueUInt32(tag)...)
	bs = append(bs, lbytes.EncodeValueUInt32(uint32(DefaultHeaderSize+len(payload)))...)
	bs = append(bs, payload...)
	return bs
}
