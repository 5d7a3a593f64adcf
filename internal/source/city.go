package source

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/civicgis/addrmatch/internal/address"
)

// CityRecord is one row of a municipal GIS address export. The export
// spells directionals and street types out in full and always carries
// a post type, so conversion to the canonical model cannot fail.
// Provenance columns (notes, edit audit, global id) are read but
// dropped at conversion; matching has no use for them.
type CityRecord struct {
	ObjectID        int64
	Number          int64
	NumberSuffix    string
	PreDirectional  address.Directional
	StreetName      string
	PostType        address.PostType
	SubaddressType  address.SubaddressType
	SubaddressID    string
	Floor           *int64
	Building        string
	ZIP             int64
	PostalCommunity string
	State           string
	Status          address.Status

	Notes          string
	GlobalID       string
	LastEditedUser string
}

// Canonical implements address.Record. City rows always resolve every
// mandatory canonical field.
func (r CityRecord) Canonical() (address.Address, error) {
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
		Building:        r.Building,
		Status:          r.Status,
		ObjectID:        r.ObjectID,
	}, nil
}

// LoadCity reads a municipal export. Malformed rows and unparseable
// mandatory fields abort the load; adapters must surface bad files
// rather than substitute defaults.
func LoadCity(path string, schema Schema) ([]CityRecord, error) {
	t, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	colID := schema.column("object_id", "OID_")
	colNumber := schema.column("number", "Add_Number")
	colSuffix := schema.column("number_suffix", "AddNum_Suf")
	colPreDir := schema.column("pre_directional", "St_PreDir")
	colStreet := schema.column("street_name", "St_Name")
	colPostType := schema.column("post_type", "St_PosTyp")
	colSubType := schema.column("subaddress_type", "Subaddress_Type")
	colSubID := schema.column("subaddress_id", "Subaddress_Identifier")
	colFloor := schema.column("floor", "Floor")
	colBuilding := schema.column("building", "Building")
	colZIP := schema.column("zip", "Post_Code")
	colCommunity := schema.column("postal_community", "Post_Comm")
	colState := schema.column("state", "State_Name")
	colStatus := schema.column("status", "STATUS")

	if err := t.require(colID, colNumber, colStreet, colPostType, colZIP, colCommunity, colStatus); err != nil {
		return nil, err
	}

	records := make([]CityRecord, 0, len(t.rows))
	for i, row := range t.rows {
		id, err := parseID(t.get(row, colID), colID)
		if err != nil {
			return nil, eris.Wrapf(err, "source: city row %d", i+1)
		}
		number, err := parseID(t.get(row, colNumber), colNumber)
		if err != nil {
			return nil, eris.Wrapf(err, "source: city row %d", i+1)
		}
		zip, err := parseID(t.get(row, colZIP), colZIP)
		if err != nil {
			return nil, eris.Wrapf(err, "source: city row %d", i+1)
		}

		postType, ok := address.ParsePostType(t.get(row, colPostType))
		if !ok {
			return nil, eris.Errorf("source: city row %d: unknown post type %q", i+1, t.get(row, colPostType))
		}
		status, ok := address.ParseStatus(t.get(row, colStatus))
		if !ok {
			return nil, eris.Errorf("source: city row %d: unknown status %q", i+1, t.get(row, colStatus))
		}

		floor, err := parseFloor(t.get(row, colFloor))
		if err != nil {
			return nil, eris.Wrapf(err, "source: city row %d", i+1)
		}

		// Unrecognized directionals and subaddress types decode as
		// absent; the export is known to contain stray free text here.
		preDir, _ := address.ParseDirectional(scrub(t.get(row, colPreDir)))
		subType, _ := address.ParseSubaddressType(scrub(t.get(row, colSubType)))

		records = append(records, CityRecord{
			ObjectID:        id,
			Number:          number,
			NumberSuffix:    scrub(t.get(row, colSuffix)),
			PreDirectional:  preDir,
			StreetName:      t.get(row, colStreet),
			PostType:        postType,
			SubaddressType:  subType,
			SubaddressID:    scrub(t.get(row, colSubID)),
			Floor:           floor,
			Building:        scrub(t.get(row, colBuilding)),
			ZIP:             zip,
			PostalCommunity: t.get(row, colCommunity),
			State:           t.get(row, colState),
			Status:          status,
			Notes:           scrub(t.get(row, "NOTES")),
			GlobalID:        t.get(row, "GlobalID"),
			LastEditedUser:  t.get(row, "last_edited_user"),
		})
	}

	zap.L().Debug("source: city export loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return records, nil
}
