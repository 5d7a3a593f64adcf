package drift

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicgis/addrmatch/internal/address"
	"github.com/civicgis/addrmatch/internal/source"
)

func geoAddress(id int64, number int64, x, y float64) source.GeoAddress {
	return source.GeoAddress{
		Address: address.Address{
			Number:          number,
			StreetName:      "MAIN",
			PostType:        address.PostTypeStreet,
			ZIP:             97526,
			PostalCommunity: "GRANTS PASS",
			State:           "OR",
			Status:          address.StatusCurrent,
			ObjectID:        id,
		},
		X: x,
		Y: y,
	}
}

func TestDeltas(t *testing.T) {
	src := []source.GeoAddress{
		geoAddress(1, 123, 0, 0),
		geoAddress(2, 200, 10, 10),
		geoAddress(3, 300, 5, 5),
	}
	tgt := []source.GeoAddress{
		geoAddress(11, 123, 30, 40), // moved 50 units
		geoAddress(12, 200, 10, 10), // did not move
		geoAddress(13, 999, 0, 0),   // different address entirely
	}

	deltas := Deltas(src, tgt, 1.0)
	require.Len(t, deltas, 1)
	assert.Equal(t, int64(1), deltas[0].SelfID)
	assert.Equal(t, int64(11), deltas[0].OtherID)
	assert.InDelta(t, 30.0, deltas[0].DeltaX, 1e-9)
	assert.InDelta(t, 40.0, deltas[0].DeltaY, 1e-9)
	assert.InDelta(t, 50.0, deltas[0].Distance, 1e-9)
	assert.Equal(t, "123 MAIN Street", deltas[0].Label)
}

func TestDeltasThreshold(t *testing.T) {
	src := []source.GeoAddress{geoAddress(1, 123, 0, 0)}
	tgt := []source.GeoAddress{geoAddress(2, 123, 3, 4)} // distance 5

	assert.Len(t, Deltas(src, tgt, 5.0), 1)
	assert.Empty(t, Deltas(src, tgt, 5.1))
}

func TestDeltasNoCoincidentPairs(t *testing.T) {
	src := []source.GeoAddress{geoAddress(1, 123, 0, 0)}
	tgt := []source.GeoAddress{geoAddress(2, 456, 0, 0)}

	assert.Empty(t, Deltas(src, tgt, 0))
}

func TestWriteCSV(t *testing.T) {
	deltas := []Delta{{
		Label:    "123 MAIN Street",
		SelfID:   1,
		OtherID:  11,
		DeltaX:   30,
		DeltaY:   40,
		Distance: 50,
	}}

	path := filepath.Join(t.TempDir(), "drift.csv")
	require.NoError(t, WriteCSV(deltas, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "address_label,self_id,other_id,delta_x,delta_y,distance", lines[0])
	assert.Equal(t, "123 MAIN Street,1,11,30,40,50", lines[1])
}
