package lbrecord

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"lbprobe/lbtable/lbheader"
	"lbprobe/lbytes"
)

func createRecords() []byte {
	bs := make([]byte, 0)
	bs = append(bs, Encode(TagMemory, lbytes.CreateZeroBytes(16))...)
	bs = append(bs, Encode(TagHWRPB, lbytes.CreateZeroBytes(4))...)
	bs = append(bs, Encode(TagMainboard, []byte{0, 2, 'a', 0, 'b', 0, 0, 0})...)
	return bs
}

func TestWalker_ExactEnd(t *testing.T) {
	records := createRecords()
	header := lbheader.Header{TableBytes: uint32(len(records))}

	collected := Collect(records, header, 0)
	assert.Equal(
		t,
		[]uint32{TagMemory, TagHWRPB, TagMainboard},
		lo.Map(collected, func(record Record, _ int) uint32 { return record.Tag }),
	)
	assert.Equal(
		t,
		[]uint64{0, 24, 36},
		lo.Map(collected, func(record Record, _ int) uint64 { return record.Offset }),
	)
	last, err := lo.Last(collected)
	assert.NoError(t, err)
	assert.Equal(t, uint64(len(records)), last.Offset+uint64(last.Size))
	assert.Len(t, last.Data, int(last.Size))
}

func TestWalker_StopsBeforeOverrun(t *testing.T) {
	records := createRecords()
	// the declared table ends one byte before the last record does
	header := lbheader.Header{TableBytes: uint32(len(records) - 1), TableEntries: 3}

	assert.Equal(t, 2, Count(records, header, 0))
	assert.NotEqual(t, int(header.TableEntries), Count(records, header, 0))
}

func TestWalker_ZeroSize(t *testing.T) {
	records := append(Encode(TagMemory, nil), lbytes.CreateZeroBytes(16)...)
	header := lbheader.Header{TableBytes: uint32(len(records))}

	assert.Equal(t, 1, Count(records, header, 0))
}

func TestWalker_DeclaredSizeBeyondView(t *testing.T) {
	records := createRecords()
	// a table that claims far more bytes than were mapped must not read past the view
	header := lbheader.Header{TableBytes: 0xFFFFFFFF}
	view := append(records, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F)

	assert.Equal(t, 3, Count(view, header, 0))
}

func TestWalker_HugeSize(t *testing.T) {
	record := Encode(TagMemory, nil)
	copy(record[4:], lbytes.EncodeValueUInt32(0xFFFFFFFF))
	header := lbheader.Header{TableBytes: 0xFFFFFFFF}

	assert.Equal(t, 0, Count(record, header, 0))
}

func TestWalker_Exhausted(t *testing.T) {
	records := createRecords()
	header := lbheader.Header{TableBytes: uint32(len(records))}
	walker := NewWalker(records, header, 0)

	for _, ok := walker.Next(); ok; _, ok = walker.Next() {
	}
	_, ok := walker.Next()
	assert.False(t, ok)
}

func TestTagName(t *testing.T) {
	assert.Equal(t, "mainboard", TagName(TagMainboard))
	assert.Equal(t, "tag-0x0010", TagName(0x10))
}
