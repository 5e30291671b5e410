// Package lbmainboard decodes the board-identity ("mainboard") record of a
// LinuxBIOS table.
package lbmainboard

import (
	"bytes"

	"github.com/pkg/errors"
	"lbprobe/lbtable/lbheader"
	"lbprobe/lbtable/lbrecord"
	"lbprobe/lbytes"
)

var (
	ErrNotMainboard = errors.New("lbmainboard: record is not a mainboard record")
	ErrShortRecord  = errors.New("lbmainboard: record too short")
)

// readString returns the string at idx inside the string blob. Its length is
// what remains of the record after idx, clamped to the record's bytes, and it
// stops at the first NUL. An index at or past the available bytes yields an
// empty string.
func readString(data []byte, idx uint8, available int64) string {
	n := available - int64(idx)
	if n <= 0 {
		return ""
	}
	start := uint64(StringsOffset) + uint64(idx)
	if n > MaxStringLength {
		n = MaxStringLength
	}
	end := start + uint64(n)
	if end > uint64(len(data)) {
		end = uint64(len(data))
	}
	if start >= end {
		return ""
	}
	bs := data[start:end]
	if i := bytes.IndexByte(bs, 0); i >= 0 {
		bs = bs[:i]
	}
	return string(bs)
}

func Decode(record lbrecord.Record) (*Identity, error) {
	if record.Tag != lbrecord.TagMainboard {
		return nil, errors.Wrapf(ErrNotMainboard, "Decode error: tag %#x", record.Tag)
	}
	vendorIdx, err := lbytes.UInt8At(record.Data, VendorIndexOffset)
	if err != nil {
		return nil, errors.Wrapf(ErrShortRecord, "Decode error: size %d", record.Size)
	}
	partIdx, err := lbytes.UInt8At(record.Data, PartIndexOffset)
	if err != nil {
		return nil, errors.Wrapf(ErrShortRecord, "Decode error: size %d", record.Size)
	}

	available := int64(record.Size) - DefaultHeaderSize
	return &Identity{
		Vendor: readString(record.Data, vendorIdx, available),
		Part:   readString(record.Data, partIdx, available),
	}, nil
}

// Find walks the records of a validated table and decodes the first mainboard
// record. Other records are skipped. A table without a usable mainboard
// record is not an error; found is false.
func Find(view []byte, table lbheader.Table) (identity Identity, found bool) {
	walker := lbrecord.NewWalker(view, table.Header, table.RecordsStart())
	for record, ok := walker.Next(); ok; record, ok = walker.Next() {
		if record.Tag != lbrecord.TagMainboard {
			continue
		}
		decoded, err := Decode(record)
		if err != nil {
			return Identity{}, false
		}
		return *decoded, true
	}
	return Identity{}, false
}
