package cli

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
	"lbprobe/lbtable"
	"lbprobe/lbtable/lbmainboard"
)

func identityMap(identity lbmainboard.Identity) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("vendor", identity.Vendor)
	lhm.Set("part", identity.Part)
	return lhm
}

// Report renders a discovery result with a stable key order. A nil result
// means no table was found.
func Report(result *lbtable.Result) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	if result == nil {
		lhm.Set("table", nil)
		return lhm
	}

	header := result.Table.Header
	headerMap := orderedmap.New()
	lo.ForEach(
		[]lo.Tuple2[string, uint32]{
			{A: "header_bytes", B: header.HeaderBytes},
			{A: "header_checksum", B: header.HeaderChecksum},
			{A: "table_bytes", B: header.TableBytes},
			{A: "table_checksum", B: header.TableChecksum},
			{A: "table_entries", B: header.TableEntries},
		},
		func(field lo.Tuple2[string, uint32], _ int) {
			headerMap.Set(field.A, field.B)
		},
	)

	tableMap := orderedmap.New()
	tableMap.Set("address", fmt.Sprintf("0x%06x", result.Table.Offset))
	tableMap.Set("header", headerMap)

	lhm.Set("table", tableMap)
	lhm.Set("found", result.Found)
	lhm.Set("mainboard", identityMap(result.Identity))
	lhm.Set("overridden", result.Overridden)
	if result.Overridden {
		lhm.Set("discovered", identityMap(result.Discovered))
	}
	return lhm
}
