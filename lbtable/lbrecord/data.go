package lbrecord

import (
	"fmt"
)

type (
	// Record is one entry of the record area. Data views the record's own
	// bytes, header included, and aliases the mapped memory.
	Record struct {
		Offset uint64 `json:"offset"`
		Tag    uint32 `json:"tag"`
		Size   uint32 `json:"size"`
		Data   []byte `json:"-"`
	}
)

const (
	DefaultHeaderSize = 8
)

const (
	TagUnused    uint32 = 0x0000
	TagMemory    uint32 = 0x0001
	TagHWRPB     uint32 = 0x0002
	TagMainboard uint32 = 0x0003
)

var tagNames = map[uint32]string{
	TagUnused:    "unused",
	TagMemory:    "memory",
	TagHWRPB:     "hwrpb",
	TagMainboard: "mainboard",
}

func TagName(tag uint32) string {
	if name, ok := tagNames[tag]; ok {
		return name
	}
	return fmt.Sprintf("tag-0x%04x", tag)
}
