package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicgis/addrmatch/internal/address"
)

func sampleRecords() address.MatchRecords {
	otherID := int64(42)
	return address.MatchRecords{Records: []address.MatchRecord{
		{
			Status:       address.StatusMatching,
			AddressLabel: "123 MAIN Street",
			SelfID:       1,
			OtherID:      &otherID,
		},
		{
			Status:        address.StatusDivergent,
			AddressLabel:  "125 MAIN Street",
			SelfID:        2,
			OtherID:       &otherID,
			AddressStatus: "Current not equal to Retired",
		},
		{
			Status:       address.StatusMissing,
			AddressLabel: "old barn",
			SelfID:       3,
		},
	}}
}

func TestMatchCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.csv")
	records := sampleRecords()

	require.NoError(t, WriteMatchCSV(records, path))

	got, err := ReadMatchCSV(path)
	require.NoError(t, err)
	assert.Equal(t, records.Records, got.Records)

	// the file is consumable by the filter command
	missing := got.Filter("missing")
	require.Equal(t, 1, missing.Len())
	assert.Nil(t, missing.Records[0].OtherID)
}

func TestWriteMatchCSVColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.csv")
	require.NoError(t, WriteMatchCSV(sampleRecords(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "match_status,address_label,self_id,other_id,subaddress_type,floor,building,status", lines[0])
	require.Len(t, lines, 4)
	// Missing row renders empty optional columns.
	assert.Equal(t, "Missing,old barn,3,,,,,", lines[3])
}

func TestReadMatchCSVMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("match_status,address_label\nMatching,foo\n"), 0o644))

	_, err := ReadMatchCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestReadMatchCSVMissingFile(t *testing.T) {
	_, err := ReadMatchCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestWriteAddressCSV(t *testing.T) {
	floor := int64(2)
	addrs := address.Addresses{{
		Number:          500,
		PreDirectional:  address.DirNorthwest,
		StreetName:      "HILLSIDE",
		PostType:        address.PostTypeAvenue,
		ZIP:             97526,
		PostalCommunity: "GRANTS PASS",
		State:           "OR",
		Floor:           &floor,
		Status:          address.StatusCurrent,
		ObjectID:        7,
	}}

	path := filepath.Join(t.TempDir(), "addresses.csv")
	require.NoError(t, WriteAddressCSV(addrs, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "500 Northwest HILLSIDE Avenue")
	assert.Contains(t, lines[1], ",2,") // floor column
}

func TestMatchXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.xlsx")
	require.NoError(t, WriteMatchXLSX(sampleRecords(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
