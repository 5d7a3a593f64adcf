package source

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/civicgis/addrmatch/internal/address"
)

// ErrNoPostType marks a county record whose street type column was
// empty or unrecognized. Such records cannot be compared and are
// excluded from the pool by callers, never defaulted.
var ErrNoPostType = eris.New("source: record has no street name post type")

// CountyRecord is one row of a county GIS address export. Directionals,
// street types, and unit types arrive abbreviated (N, AVE, APT) and
// the street type column is frequently blank on legacy rows, so
// conversion is fallible.
type CountyRecord struct {
	ObjectID        int64
	Taxlot          string
	Number          int64
	NumberSuffix    string
	PreDirectional  address.Directional
	StreetName      string
	PostType        address.PostType // zero when the source column was blank
	hasPostType     bool
	SubaddressType  address.SubaddressType
	SubaddressID    string
	Floor           *int64
	ZIP             int64
	PostalCommunity string
	State           string
	Status          address.Status
}

// Canonical implements address.Record. County exports have no building
// column; the canonical building field is always absent.
func (r CountyRecord) Canonical() (address.Address, error) {
	if !r.hasPostType {
		return address.Address{}, ErrNoPostType
	}
	return address.Address{
		Number:          r.Number,
		NumberSuffix:    r.NumberSuffix,
		PreDirectional:  r.PreDirectional,
		StreetName:      r.StreetName,
		PostType:        r.PostType,
		SubaddressID:    r.SubaddressID,
		ZIP:             r.ZIP,
		PostalCommunity: r.PostalCommunity,
		State:           r.State,
		SubaddressType:  r.SubaddressType,
		Floor:           r.Floor,
		Status:          r.Status,
		ObjectID:        r.ObjectID,
	}, nil
}

// LoadCounty reads a county export. Rows must parse; missing post
// types are tolerated here and surface later as conversion failures.
func LoadCounty(path string, schema Schema) ([]CountyRecord, error) {
	t, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	colID := schema.column("object_id", "OID_")
	colTaxlot := schema.column("taxlot", "taxlot")
	colNumber := schema.column("number", "stnum")
	colSuffix := schema.column("number_suffix", "stnumsuf")
	colPreDir := schema.column("pre_directional", "predir")
	colStreet := schema.column("street_name", "name")
	colPostType := schema.column("post_type", "type")
	colSubType := schema.column("subaddress_type", "unit_type")
	colSubID := schema.column("subaddress_id", "unit")
	colFloor := schema.column("floor", "floor")
	colZIP := schema.column("zip", "zip")
	colCommunity := schema.column("postal_community", "postcomm")
	colState := schema.column("state", "state")
	colStatus := schema.column("status", "status")

	if err := t.require(colID, colNumber, colStreet, colZIP, colCommunity, colStatus); err != nil {
		return nil, err
	}

	records := make([]CountyRecord, 0, len(t.rows))
	missingType := 0
	for i, row := range t.rows {
		id, err := parseID(t.get(row, colID), colID)
		if err != nil {
			return nil, eris.Wrapf(err, "source: county row %d", i+1)
		}
		number, err := parseID(t.get(row, colNumber), colNumber)
		if err != nil {
			return nil, eris.Wrapf(err, "source: county row %d", i+1)
		}
		zip, err := parseID(t.get(row, colZIP), colZIP)
		if err != nil {
			return nil, eris.Wrapf(err, "source: county row %d", i+1)
		}
		status, ok := address.ParseStatus(t.get(row, colStatus))
		if !ok {
			return nil, eris.Errorf("source: county row %d: unknown status %q", i+1, t.get(row, colStatus))
		}
		floor, err := parseFloor(t.get(row, colFloor))
		if err != nil {
			return nil, eris.Wrapf(err, "source: county row %d", i+1)
		}

		postType, hasPostType := address.ParsePostType(scrub(t.get(row, colPostType)))
		if !hasPostType {
			missingType++
		}
		preDir, _ := address.ParseDirectional(scrub(t.get(row, colPreDir)))
		subType, _ := address.ParseSubaddressType(scrub(t.get(row, colSubType)))

		records = append(records, CountyRecord{
			ObjectID:        id,
			Taxlot:          scrub(t.get(row, colTaxlot)),
			Number:          number,
			NumberSuffix:    scrub(t.get(row, colSuffix)),
			PreDirectional:  preDir,
			StreetName:      t.get(row, colStreet),
			PostType:        postType,
			hasPostType:     hasPostType,
			SubaddressType:  subType,
			SubaddressID:    scrub(t.get(row, colSubID)),
			Floor:           floor,
			ZIP:             zip,
			PostalCommunity: t.get(row, colCommunity),
			State:           t.get(row, colState),
			Status:          status,
		})
	}

	zap.L().Debug("source: county export loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("missing_post_type", missingType),
	)
	return records, nil
}
