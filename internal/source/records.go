package source

import (
	"github.com/rotisserie/eris"

	"github.com/civicgis/addrmatch/internal/address"
)

// Records widens a concrete adapter slice to the interface slice the
// matching engine consumes.
func Records[T address.Record](records []T) []address.Record {
	out := make([]address.Record, len(records))
	for i := range records {
		out[i] = records[i]
	}
	return out
}

// Load reads a dataset by its type tag ("city", "county", "shp") and
// returns it as classifier input.
func Load(path, sourceType string, schema Schema) ([]address.Record, error) {
	switch sourceType {
	case "city":
		records, err := LoadCity(path, schema)
		if err != nil {
			return nil, err
		}
		return Records(records), nil
	case "county":
		records, err := LoadCounty(path, schema)
		if err != nil {
			return nil, err
		}
		return Records(records), nil
	case "shp":
		records, err := LoadShapefile(path, schema)
		if err != nil {
			return nil, err
		}
		return Records(records), nil
	default:
		return nil, errUnknownSourceType(sourceType)
	}
}

func errUnknownSourceType(sourceType string) error {
	return eris.Errorf("source: unknown dataset type %q (want city, county, or shp)", sourceType)
}
