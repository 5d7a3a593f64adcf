package source

import (
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/civicgis/addrmatch/internal/address"
)

// SpatialRecord is one feature of a point-geometry address shapefile.
// Attribute columns follow the county schema; X and Y come from the
// geometry.
type SpatialRecord struct {
	CountyRecord
	X float64
	Y float64
}

// GeoAddress pairs a canonical address with its coordinates for drift
// computation and persistence.
type GeoAddress struct {
	address.Address
	X float64
	Y float64
}

// GeoAddresses converts spatial records, dropping features that fail
// canonical conversion. The drop count is returned for logging.
func GeoAddresses(records []SpatialRecord) ([]GeoAddress, int) {
	out := make([]GeoAddress, 0, len(records))
	dropped := 0
	for _, rec := range records {
		a, err := rec.Canonical()
		if err != nil {
			dropped++
			continue
		}
		out = append(out, GeoAddress{Address: a, X: rec.X, Y: rec.Y})
	}
	return out, dropped
}

// LoadShapefile reads a point shapefile of addresses. Features with
// nil or non-point geometry are skipped and counted; attribute parsing
// follows the county conventions (abbreviations, zero floors, blank
// street types).
func LoadShapefile(path string, schema Schema) ([]SpatialRecord, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	colIdx := make(map[string]int, len(fields))
	for i, f := range fields {
		name := strings.TrimRight(f.String(), "\x00")
		colIdx[strings.ToLower(name)] = i
	}

	attr := func(field, fallback string) func() string {
		col := strings.ToLower(schema.column(field, fallback))
		idx, ok := colIdx[col]
		if !ok {
			return func() string { return "" }
		}
		return func() string {
			return strings.TrimSpace(strings.TrimRight(reader.Attribute(idx), "\x00"))
		}
	}

	getID := attr("object_id", "oid")
	getNumber := attr("number", "stnum")
	getSuffix := attr("number_suffix", "stnumsuf")
	getPreDir := attr("pre_directional", "predir")
	getStreet := attr("street_name", "name")
	getPostType := attr("post_type", "type")
	getSubType := attr("subaddress_type", "unit_type")
	getSubID := attr("subaddress_id", "unit")
	getFloor := attr("floor", "floor")
	getZIP := attr("zip", "zip")
	getCommunity := attr("postal_community", "postcomm")
	getState := attr("state", "state")
	getStatus := attr("status", "status")

	var records []SpatialRecord
	var row, skipped int
	for reader.Next() {
		row++
		_, shape := reader.Shape()
		point, ok := shape.(*shp.Point)
		if !ok || point == nil {
			skipped++
			continue
		}

		id, err := parseID(getID(), "oid")
		if err != nil {
			return nil, eris.Wrapf(err, "source: shapefile feature %d", row)
		}
		number, err := parseID(getNumber(), "stnum")
		if err != nil {
			return nil, eris.Wrapf(err, "source: shapefile feature %d", row)
		}
		zip, err := parseID(getZIP(), "zip")
		if err != nil {
			return nil, eris.Wrapf(err, "source: shapefile feature %d", row)
		}
		status, ok := address.ParseStatus(getStatus())
		if !ok {
			return nil, eris.Errorf("source: shapefile feature %d: unknown status %q", row, getStatus())
		}
		floor, err := parseFloor(getFloor())
		if err != nil {
			return nil, eris.Wrapf(err, "source: shapefile feature %d", row)
		}

		postType, hasPostType := address.ParsePostType(scrub(getPostType()))
		preDir, _ := address.ParseDirectional(scrub(getPreDir()))
		subType, _ := address.ParseSubaddressType(scrub(getSubType()))

		records = append(records, SpatialRecord{
			CountyRecord: CountyRecord{
				ObjectID:        id,
				Number:          number,
				NumberSuffix:    scrub(getSuffix()),
				PreDirectional:  preDir,
				StreetName:      getStreet(),
				PostType:        postType,
				hasPostType:     hasPostType,
				SubaddressType:  subType,
				SubaddressID:    scrub(getSubID()),
				Floor:           floor,
				ZIP:             zip,
				PostalCommunity: getCommunity(),
				State:           getState(),
				Status:          status,
			},
			X: point.X,
			Y: point.Y,
		})
	}

	if skipped > 0 {
		zap.L().Debug("source: skipped non-point shapefile features",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}
	return records, nil
}
