package lbheader

type (
	Header struct {
		Signature      []byte `json:"signature"`
		HeaderBytes    uint32 `json:"header_bytes"`
		HeaderChecksum uint32 `json:"header_checksum"`
		TableBytes     uint32 `json:"table_bytes"`
		TableChecksum  uint32 `json:"table_checksum"`
		TableEntries   uint32 `json:"table_entries"`
	}
	// Table is a header that passed validation, together with the offset it
	// was found at inside the mapped view.
	Table struct {
		Offset uint64 `json:"offset"`
		Header Header `json:"header"`
	}
)

const (
	DefaultHeaderSize = 24
)

var (
	SignatureBytes = []byte("LBIO")
)

// RecordsStart is the view offset of the first record.
func (t Table) RecordsStart() uint64 {
	return t.Offset + uint64(t.Header.HeaderBytes)
}

// RecordsEnd is the view offset one past the last byte of the record area.
func (t Table) RecordsEnd() uint64 {
	return t.RecordsStart() + uint64(t.Header.TableBytes)
}
