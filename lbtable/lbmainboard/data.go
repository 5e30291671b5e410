package lbmainboard

type (
	Identity struct {
		Vendor string `json:"vendor"`
		Part   string `json:"part"`
	}
)

const (
	VendorIndexOffset = 8
	PartIndexOffset   = 9
	StringsOffset     = 10
	// DefaultHeaderSize is the size firmware compiles the record header to,
	// two bytes of tail padding included. It is what gets subtracted from the
	// record size to bound the strings.
	DefaultHeaderSize = 12
	// MaxStringLength matches the 256-byte buffers flashing tools copy the
	// strings into.
	MaxStringLength = 254
)

func (i Identity) IsEmpty() bool {
	return i.Vendor == "" && i.Part == ""
}
