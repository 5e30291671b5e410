// Package lbtable discovers the LinuxBIOS table in low physical memory and
// reports the mainboard it describes.
package lbtable

import (
	"log/slog"

	"github.com/pkg/errors"
	"lbprobe/lbtable/lbheader"
	"lbprobe/lbtable/lbmainboard"
)

type (
	Window struct {
		Start uint64 `json:"start"`
		End   uint64 `json:"end"`
	}
	Options struct {
		// Override, when set, is reported instead of whatever the table holds.
		Override *lbmainboard.Identity
		Logger   *slog.Logger
	}
	Result struct {
		Table lbheader.Table `json:"table"`
		// Identity is the effective identity: the override if one was given,
		// the discovered one otherwise.
		Identity   lbmainboard.Identity `json:"identity"`
		Discovered lbmainboard.Identity `json:"discovered"`
		// Found is false when the table has no mainboard record.
		Found      bool `json:"found"`
		Overridden bool `json:"overridden"`
	}
)

const (
	LowMemoryBase = 0x00000000
	LowMemorySize = 1024 * 1024
)

var (
	// Windows are searched in order; firmware places the table in one of them.
	Windows = []Window{
		{Start: 0x00000, End: 0x1000},
		{Start: 0xf0000, End: LowMemorySize},
	}

	ErrNoTable = errors.New("no LinuxBIOS table found")
)
