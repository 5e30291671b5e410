package lbrecord

import (
	"encoding/binary"

	"lbprobe/lbtable/lbheader"
	"lbprobe/lbytes"
)

// Walker iterates the records of a table by stepping forward by each
// record's size. There is no end marker: iteration stops when the next record
// would cross the declared end of the record area or the end of the view, or
// when a record declares a zero size. A Walker cannot be rewound; create a new
// one to walk again.
type Walker struct {
	view []byte
	pos  uint64
	end  uint64
	done bool
}

// NewWalker walks header.TableBytes bytes of view starting at tableStart,
// the offset of the first byte after the header.
func NewWalker(view []byte, header lbheader.Header, tableStart uint64) *Walker {
	return &Walker{
		view: view,
		pos:  tableStart,
		end:  tableStart + uint64(header.TableBytes),
	}
}

func (w *Walker) Next() (Record, bool) {
	if w.done || w.pos >= w.end {
		w.done = true
		return Record{}, false
	}
	recordHeader, err := lbytes.Slice(w.view, w.pos, DefaultHeaderSize)
	if err != nil {
		w.done = true
		return Record{}, false
	}
	size := binary.LittleEndian.Uint32(recordHeader[4:8])
	if size < 1 {
		w.done = true
		return Record{}, false
	}
	next := w.pos + uint64(size)
	if next > w.end {
		w.done = true
		return Record{}, false
	}
	data, err := lbytes.Slice(w.view, w.pos, uint64(size))
	if err != nil {
		w.done = true
		return Record{}, false
	}

	record := Record{
		Offset: w.pos,
		Tag:    binary.LittleEndian.Uint32(recordHeader[0:4]),
		Size:   size,
		Data:   data,
	}
	w.pos = next
	return record, true
}

func Count(view []byte, header lbheader.Header, tableStart uint64) int {
	walker := NewWalker(view, header, tableStart)
	count := 0
	for _, ok := walker.Next(); ok; _, ok = walker.Next() {
		count++
	}
	return count
}

func Collect(view []byte, header lbheader.Header, tableStart uint64) []Record {
	walker := NewWalker(view, header, tableStart)
	records := make([]Record, 0)
	for record, ok := walker.Next(); ok; record, ok = walker.Next() {
		records = append(records, record)
	}
	return records
}
