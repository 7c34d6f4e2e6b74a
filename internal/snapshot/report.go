package snapshot

import (
	"strconv"

	"github.com/FynnK/FestivalInventory/internal/ledger"
)

// reportHeader lists the fixed columns; one column per stage follows.
var reportHeader = []string{
	"Barcode ID",
	"Item Name",
	"Description",
	"Unit Quantity",
	"Unit Type",
	"Total Quantity",
	"Remaining",
	"Total Units Available",
}

// Report projects the ledger into a rectangular grid: the header row,
// then one row per item in ledger order. "Total Units Available" is
// remaining * unitQuantity when a unit quantity is set, else blank.
// Stage columns follow registry order and show the item's usage there,
// zero when absent. Read-only — no state is touched.
func Report(l *ledger.Ledger, stages *ledger.StageRegistry) [][]string {
	stageNames := stages.List()

	header := make([]string, 0, len(reportHeader)+len(stageNames))
	header = append(header, reportHeader...)
	header = append(header, stageNames...)

	grid := [][]string{header}
	for _, item := range l.List() {
		row := make([]string, 0, len(header))

		unitsAvailable := ""
		if item.UnitQuantity > 0 {
			unitsAvailable = strconv.Itoa(item.Remaining * item.UnitQuantity)
		}
		row = append(row,
			item.ID,
			item.Name,
			item.Description,
			strconv.Itoa(item.UnitQuantity),
			item.UnitType,
			strconv.Itoa(item.Total),
			strconv.Itoa(item.Remaining),
			unitsAvailable,
		)
		for _, stage := range stageNames {
			row = append(row, strconv.Itoa(item.Usage[stage]))
		}
		grid = append(grid, row)
	}
	return grid
}
