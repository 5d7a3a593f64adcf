// Package source adapts per-vendor address exports (municipal CSV,
// county CSV, point shapefiles) into canonical addresses. Each adapter
// owns the column renaming and abbreviation decoding for its schema;
// the matching engine sees only the address.Record interface.
package source

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// table holds a parsed CSV: a header index map plus the data rows.
type table struct {
	colIdx map[string]int
	rows   [][]string
}

// readCSV loads a delimited export into memory. Header lookup is
// case-insensitive because vendor exports disagree on header casing.
func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "source: read csv")
	}
	if len(records) < 2 {
		return nil, eris.New("source: csv has no data rows")
	}

	colIdx := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return &table{colIdx: colIdx, rows: records[1:]}, nil
}

// require verifies that every named column is present.
func (t *table) require(cols ...string) error {
	for _, col := range cols {
		if _, ok := t.colIdx[strings.ToLower(col)]; !ok {
			return eris.Errorf("source: missing required column %q", col)
		}
	}
	return nil
}

// get returns the trimmed cell value for a column, or "" when the
// column is absent or the row is short.
func (t *table) get(row []string, col string) string {
	idx, ok := t.colIdx[strings.ToLower(col)]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// scrub normalizes ArcGIS placeholder values to absent.
func scrub(s string) string {
	switch strings.TrimSpace(s) {
	case "", "<Null>", "<NULL>", "<null>":
		return ""
	default:
		return strings.TrimSpace(s)
	}
}

// parseID parses a mandatory integer column.
func parseID(s, col string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "source: parse column %q", col)
	}
	return n, nil
}

// parseFloor decodes an optional floor column. Empty, placeholder, and
// zero values all mean absent; zero is a known county convention for
// "not recorded".
func parseFloor(s string) (*int64, error) {
	s = scrub(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, eris.Wrap(err, "source: parse floor")
	}
	if n == 0 {
		return nil, nil
	}
	return &n, nil
}
