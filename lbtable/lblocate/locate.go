// Package lblocate finds a LinuxBIOS table inside a window of mapped memory.
package lblocate

import (
	"lbprobe/ds"
	"lbprobe/lbtable/lbchecksum"
	"lbprobe/lbtable/lbheader"
	"lbprobe/lbtable/lbrecord"
	"lbprobe/lbytes"
)

const (
	Stride = 16
)

// Validate checks the candidate at offset. Checks run cheapest first:
// signature, header bounds, header size, record count, header checksum,
// table bounds and finally the table checksum. The returned Rejection carries
// ReasonOK, and the decoded header, when the candidate is a valid table.
func Validate(view []byte, offset uint64) (*lbheader.Table, Rejection) {
	reject := func(reason Reason, header *lbheader.Header, expected uint64, actual uint64) Rejection {
		return Rejection{
			Offset:   offset,
			Reason:   reason,
			Header:   header,
			Expected: expected,
			Actual:   actual,
		}
	}

	signature, err := lbytes.Slice(view, offset, uint64(len(lbheader.SignatureBytes)))
	if err != nil || !lbheader.IsValidSignature(signature) {
		return nil, reject(ReasonSignature, nil, 0, 0)
	}
	headerBytes, err := lbytes.Slice(view, offset, lbheader.DefaultHeaderSize)
	if err != nil {
		return nil, reject(ReasonTruncated, nil, offset+lbheader.DefaultHeaderSize, uint64(len(view)))
	}
	header, err := lbheader.Decode(headerBytes)
	if err != nil {
		return nil, reject(ReasonTruncated, nil, offset+lbheader.DefaultHeaderSize, uint64(len(view)))
	}

	if header.HeaderBytes != lbheader.DefaultHeaderSize {
		return nil, reject(ReasonHeaderSize, header, lbheader.DefaultHeaderSize, uint64(header.HeaderBytes))
	}
	tableStart := offset + lbheader.DefaultHeaderSize
	numRecords := lbrecord.Count(view, *header, tableStart)
	if uint64(numRecords) != uint64(header.TableEntries) {
		return nil, reject(ReasonRecordCount, header, uint64(header.TableEntries), uint64(numRecords))
	}
	if headerChecksum := lbchecksum.Compute(headerBytes); headerChecksum != 0 {
		return nil, reject(ReasonHeaderChecksum, header, 0, uint64(headerChecksum))
	}
	records, err := lbytes.Slice(view, tableStart, uint64(header.TableBytes))
	if err != nil {
		return nil, reject(ReasonTruncated, header, tableStart+uint64(header.TableBytes), uint64(len(view)))
	}
	if tableChecksum := lbchecksum.Compute(records); uint32(tableChecksum) != header.TableChecksum {
		return nil, reject(ReasonTableChecksum, header, uint64(header.TableChecksum), uint64(tableChecksum))
	}

	return &lbheader.Table{Offset: offset, Header: *header}, reject(ReasonOK, header, 0, 0)
}

// Find scans [start, end) of view at Stride steps and returns the first valid
// table. Candidates without the signature are skipped silently; every other
// failed candidate is returned as a Rejection so the caller can decide
// whether to report it.
func Find(view []byte, start uint64, end uint64) (*lbheader.Table, []Rejection) {
	rejections := make([]Rejection, 0)
	for _, offset := range ds.MakeRange(start, end, Stride) {
		table, rejection := Validate(view, offset)
		if rejection.Reason == ReasonOK {
			return table, rejections
		}
		if rejection.Reason == ReasonSignature {
			continue
		}
		rejections = append(rejections, rejection)
	}
	return nil, rejections
}
