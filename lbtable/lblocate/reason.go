package lblocate

import (
	"fmt"

	"lbprobe/lbtable/lbheader"
)

// Reason tells why a candidate offset was not accepted as a table.
type Reason int

const (
	ReasonOK Reason = iota
	ReasonSignature
	ReasonTruncated
	ReasonHeaderSize
	ReasonRecordCount
	ReasonHeaderChecksum
	ReasonTableChecksum
)

var reasonNames = map[Reason]string{
	ReasonOK:             "ok",
	ReasonSignature:      "bad signature",
	ReasonTruncated:      "table extends past mapped memory",
	ReasonHeaderSize:     "bad header size",
	ReasonRecordCount:    "bad record count",
	ReasonHeaderChecksum: "bad header checksum",
	ReasonTableChecksum:  "bad table checksum",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

type (
	// Rejection is the verdict on one candidate offset. Reason is ReasonOK for
	// a valid table; otherwise Expected and Actual hold the compared values
	// where the failed check is a comparison.
	Rejection struct {
		Offset   uint64           `json:"offset"`
		Reason   Reason           `json:"reason"`
		Header   *lbheader.Header `json:"header,omitempty"`
		Expected uint64           `json:"expected"`
		Actual   uint64           `json:"actual"`
	}
)

func (r Rejection) String() string {
	return fmt.Sprintf(
		"candidate at 0x%06x: %s (expected %#x, got %#x)",
		r.Offset, r.Reason, r.Expected, r.Actual,
	)
}
