package source

import (
	"path/filepath"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicgis/addrmatch/internal/address"
)

// writeTempShapefile builds a two-point address shapefile with county
// attribute columns. The second feature has no street type.
func writeTempShapefile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.shp")

	w, err := shp.Create(path, shp.POINT)
	require.NoError(t, err)

	fields := []shp.Field{
		shp.StringField("oid", 10),
		shp.StringField("stnum", 10),
		shp.StringField("stnumsuf", 5),
		shp.StringField("predir", 10),
		shp.StringField("name", 30),
		shp.StringField("type", 10),
		shp.StringField("unit_type", 10),
		shp.StringField("unit", 10),
		shp.StringField("floor", 5),
		shp.StringField("zip", 10),
		shp.StringField("postcomm", 30),
		shp.StringField("state", 5),
		shp.StringField("status", 10),
	}
	w.SetFields(fields)

	rows := [][]string{
		{"1", "123", "A", "", "MAIN", "ST", "APT", "4", "0", "97526", "GRANTS PASS", "OR", "active"},
		{"2", "900", "", "NW", "LEGACY", "", "", "", "0", "97527", "GRANTS PASS", "OR", "active"},
	}
	points := []shp.Point{{X: -123.32, Y: 42.44}, {X: -123.33, Y: 42.45}}
	for i := range rows {
		w.Write(&points[i])
		for col, val := range rows[i] {
			require.NoError(t, w.WriteAttribute(i, col, val))
		}
	}
	w.Close()
	return path
}

func TestLoadShapefile(t *testing.T) {
	records, err := LoadShapefile(writeTempShapefile(t), Schema{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	first, err := records[0].Canonical()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ObjectID)
	assert.Equal(t, int64(123), first.Number)
	assert.Equal(t, address.PostTypeStreet, first.PostType)
	assert.Equal(t, address.SubaddressApartment, first.SubaddressType)
	assert.Equal(t, address.StatusCurrent, first.Status)
	assert.Nil(t, first.Floor)
	assert.InDelta(t, -123.32, records[0].X, 1e-9)
	assert.InDelta(t, 42.44, records[0].Y, 1e-9)

	// blank street type surfaces at conversion, not at load
	_, err = records[1].Canonical()
	require.Error(t, err)
}

func TestGeoAddressesDropsFailedConversions(t *testing.T) {
	records, err := LoadShapefile(writeTempShapefile(t), Schema{})
	require.NoError(t, err)

	geo, dropped := GeoAddresses(records)
	require.Len(t, geo, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "123 A MAIN Street Apartment 4", geo[0].Label())
	assert.InDelta(t, -123.32, geo[0].X, 1e-9)
}

func TestLoadShapefileMissingFile(t *testing.T) {
	_, err := LoadShapefile(filepath.Join(t.TempDir(), "absent.shp"), Schema{})
	require.Error(t, err)
}
