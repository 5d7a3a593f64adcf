package report

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/civicgis/addrmatch/internal/address"
)

// WriteMatchXLSX writes match records to a single-sheet workbook with
// the same columns as the CSV export. GIS staff review divergent
// records in spreadsheets, so this is the hand-off format.
func WriteMatchXLSX(records address.MatchRecords, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("matches")
	if err != nil {
		return eris.Wrap(err, "report: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range matchHeader {
		header.AddCell().Value = col
	}

	for _, rec := range records.Records {
		otherID := ""
		if rec.OtherID != nil {
			otherID = strconv.FormatInt(*rec.OtherID, 10)
		}
		row := sheet.AddRow()
		for _, val := range []string{
			string(rec.Status),
			rec.AddressLabel,
			strconv.FormatInt(rec.SelfID, 10),
			otherID,
			rec.SubaddressType,
			rec.Floor,
			rec.Building,
			rec.AddressStatus,
		} {
			row.AddCell().Value = val
		}
	}

	return eris.Wrap(f.Save(path), "report: save xlsx")
}
