package lbtable

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"lbprobe/ds"
	"lbprobe/lbtable/lbheader"
	"lbprobe/lbtable/lblocate"
	"lbprobe/lbtable/lbmainboard"
	"lbprobe/lbtable/lbrecord"
	"lbprobe/physmem"
)

func hex(value uint64) string {
	return fmt.Sprintf("0x%06x", value)
}

// logCandidate reports a candidate whose signature matched, before any
// verdict on it is logged.
func logCandidate(logger *slog.Logger, offset uint64, header *lbheader.Header) {
	if header == nil {
		logger.Debug("candidate", "address", hex(offset))
		return
	}
	logger.Debug(
		"candidate",
		"address", hex(offset),
		"range", fmt.Sprintf("%s-%s", hex(offset), hex(offset+uint64(header.TableBytes))),
	)
}

func locate(view []byte, logger *slog.Logger) *lbheader.Table {
	for _, window := range Windows {
		table, rejections := lblocate.Find(view, window.Start, window.End)
		lo.ForEach(
			rejections,
			func(rejection lblocate.Rejection, _ int) {
				logCandidate(logger, rejection.Offset, rejection.Header)
				logger.Warn(
					"rejected candidate",
					"address", hex(rejection.Offset),
					"reason", rejection.Reason.String(),
					"expected", hex(rejection.Expected),
					"actual", hex(rejection.Actual),
				)
			},
		)
		if table != nil {
			logCandidate(logger, table.Offset, &table.Header)
			return table
		}
	}
	return nil
}

func logRecords(view []byte, table lbheader.Table, logger *slog.Logger) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	lo.ForEach(
		lbrecord.Collect(view, table.Header, table.RecordsStart()),
		func(record lbrecord.Record, _ int) {
			logger.Debug(
				"record",
				"address", hex(record.Offset),
				"tag", lbrecord.TagName(record.Tag),
				"size", record.Size,
			)
		},
	)
}

// Discover maps the first megabyte of physical memory through mapper, finds
// the LinuxBIOS table and extracts the mainboard identity from it.
//
// A mapping failure is returned as is (wrapped). ErrNoTable means neither
// window held a valid table. A table without a mainboard record is a success
// with Result.Found set to false.
func Discover(mapper physmem.Mapper, options Options) (*Result, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	view, err := mapper.Map(LowMemoryBase, LowMemorySize)
	if err != nil {
		return nil, errors.Wrap(err, "Discover error: can't map low 1MB")
	}
	defer func() {
		if err := view.Close(); err != nil {
			logger.Warn("unmapping low memory failed", "error", err)
		}
	}()
	bs := view.Bytes()

	table := locate(bs, logger)
	if table == nil {
		return nil, errors.WithStack(ErrNoTable)
	}
	logger.Info("found LinuxBIOS table", "address", hex(table.Offset))
	logger.Debug(
		"LinuxBIOS header",
		"range", fmt.Sprintf("%s-%s", hex(table.Offset), hex(table.RecordsEnd())),
		"header", ds.DumpJSON(table.Header),
	)
	logRecords(bs, *table, logger)

	identity, found := lbmainboard.Find(bs, *table)
	result := Result{
		Table:      *table,
		Identity:   identity,
		Discovered: identity,
		Found:      found,
	}
	if found {
		logger.Info("mainboard", "vendor", identity.Vendor, "part", identity.Part)
	} else {
		logger.Info("no mainboard record in LinuxBIOS table")
	}

	if options.Override != nil {
		result.Identity = *options.Override
		result.Overridden = true
		logger.Info(
			"mainboard overridden by command line",
			"vendor", options.Override.Vendor,
			"part", options.Override.Part,
			"discovered_vendor", identity.Vendor,
			"discovered_part", identity.Part,
		)
	}

	return &result, nil
}
