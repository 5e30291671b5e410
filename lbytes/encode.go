package lbytes

import (
	"encoding/binary"
)

func EncodeValueUInt32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}
