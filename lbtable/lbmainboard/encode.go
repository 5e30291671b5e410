package lbmainboard

import (
	"lbprobe/lbtable/lbrecord"
)

func truncate(s string) string {
	if len(s) > MaxStringLength/2 {
		return s[:MaxStringLength/2]
	}
	return s
}

// Encode lays out a mainboard record the way firmware writes it: vendor then
// part, each NUL-terminated, with the record size rounded up to 8 bytes.
func Encode(identity Identity) []byte {
	vendor := truncate(identity.Vendor)
	part := truncate(identity.Part)

	size := DefaultHeaderSize + len(vendor) + 1 + len(part) + 1
	size = (size + 7) &^ 7

	payload := make([]byte, size-lbrecord.DefaultHeaderSize)
	payload[VendorIndexOffset-lbrecord.DefaultHeaderSize] = 0
	payload[PartIndexOffset-lbrecord.DefaultHeaderSize] = uint8(len(vendor) + 1)
	strings := payload[StringsOffset-lbrecord.DefaultHeaderSize:]
	copy(strings, vendor)
	copy(strings[len(vendor)+1:], part)

	return lbrecord.Encode(lbrecord.TagMainboard, payload)
}
