package lbheader

import (
	"lbprobe/lbtable/lbchecksum"
	"lbprobe/lbytes"
)

func Encode(header Header) []byte {
	bs := make([]byte, 0, DefaultHeaderSize)
	bs = append(bs, header.Signature...)
	bs = append(bs, lbytes.EncodeValueUInt32(header.HeaderBytes)...)
	bs = append(bs, lbytes.EncodeValueUInt32(header.HeaderChecksum)...)
	bs = append(bs, lbytes.EncodeValueUInt32(header.TableBytes)...)
	bs = append(bs, lbytes.EncodeValueUInt32(header.TableChecksum)...)
	bs = append(bs, lbytes.EncodeValueUInt32(header.TableEntries)...)
	return bs
}

// EncodeTable lays out a complete table the way firmware does: the header
// with both checksums filled in, followed by the record bytes.
func EncodeTable(records []byte, numEntries int) []byte {
	header := Header{
		Signature:     SignatureBytes,
		HeaderBytes:   DefaultHeaderSize,
		TableBytes:    uint32(len(records)),
		TableChecksum: uint32(lbchecksum.Compute(records)),
		TableEntries:  uint32(numEntries),
	}
	header.HeaderChecksum = uint32(lbchecksum.Compute(Encode(header)))

	bs := make([]byte, 0, DefaultHeaderSize+len(records))
	bs = append(bs, Encode(header)...)
	bs = append(bs, records...)
	return bs
}
