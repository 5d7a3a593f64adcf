// Package report serializes match records and address lists to
// delimited text and spreadsheets, and reads match-record files back
// for filtering.
package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/civicgis/addrmatch/internal/address"
)

var matchHeader = []string{
	"match_status", "address_label", "self_id", "other_id",
	"subaddress_type", "floor", "building", "status",
}

// WriteMatchCSV writes one row per match record. Absent values render
// as empty columns.
func WriteMatchCSV(records address.MatchRecords, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "report: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(matchHeader); err != nil {
		return eris.Wrap(err, "report: write header")
	}
	for _, rec := range records.Records {
		otherID := ""
		if rec.OtherID != nil {
			otherID = strconv.FormatInt(*rec.OtherID, 10)
		}
		row := []string{
			string(rec.Status),
			rec.AddressLabel,
			strconv.FormatInt(rec.SelfID, 10),
			otherID,
			rec.SubaddressType,
			rec.Floor,
			rec.Building,
			rec.AddressStatus,
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "report: write row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "report: flush csv")
}

// ReadMatchCSV reads a previously written match-record file. Malformed
// rows are fatal; filtering a partially read file would silently drop
// records.
func ReadMatchCSV(path string) (address.MatchRecords, error) {
	f, err := os.Open(path)
	if err != nil {
		return address.MatchRecords{}, eris.Wrap(err, "report: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return address.MatchRecords{}, eris.Wrap(err, "report: read csv")
	}
	if len(rows) == 0 {
		return address.MatchRecords{}, eris.New("report: csv has no header row")
	}

	records := make([]address.MatchRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(matchHeader) {
			return address.MatchRecords{}, eris.Errorf("report: row %d has %d columns, want %d", i+1, len(row), len(matchHeader))
		}
		selfID, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return address.MatchRecords{}, eris.Wrapf(err, "report: row %d self_id", i+1)
		}
		var otherID *int64
		if row[3] != "" {
			id, err := strconv.ParseInt(row[3], 10, 64)
			if err != nil {
				return address.MatchRecords{}, eris.Wrapf(err, "report: row %d other_id", i+1)
			}
			otherID = &id
		}
		records = append(records, address.MatchRecord{
			Status:         address.MatchStatus(row[0]),
			AddressLabel:   row[1],
			SelfID:         selfID,
			OtherID:        otherID,
			SubaddressType: row[4],
			Floor:          row[5],
			Building:       row[6],
			AddressStatus:  row[7],
		})
	}
	return address.MatchRecords{Records: records}, nil
}

// WriteAddressCSV writes a canonical address list, one row per record.
// Used by the duplicates command.
func WriteAddressCSV(addrs address.Addresses, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "report: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"object_id", "label", "number", "number_suffix", "pre_directional",
		"street_name", "post_type", "subaddress_type", "subaddress_id",
		"floor", "building", "zip", "postal_community", "state", "status",
	}
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "report: write header")
	}
	for _, a := range addrs {
		floor := ""
		if a.Floor != nil {
			floor = strconv.FormatInt(*a.Floor, 10)
		}
		row := []string{
			strconv.FormatInt(a.ObjectID, 10),
			a.Label(),
			strconv.FormatInt(a.Number, 10),
			a.NumberSuffix,
			string(a.PreDirectional),
			a.StreetName,
			string(a.PostType),
			string(a.SubaddressType),
			a.SubaddressID,
			floor,
			a.Building,
			strconv.FormatInt(a.ZIP, 10),
			a.PostalCommunity,
			a.State,
			string(a.Status),
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "report: write row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "report: flush csv")
}
