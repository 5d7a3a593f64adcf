package source

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Schema maps logical field names to the column headers a particular
// export vintage uses. Vendors rename columns between releases; a
// schema file lets an operator remap them without a rebuild.
type Schema struct {
	Columns map[string]string `yaml:"columns"`
}

// column resolves a logical field to its column header, falling back
// to the built-in default.
func (s Schema) column(field, fallback string) string {
	if col, ok := s.Columns[field]; ok && col != "" {
		return col
	}
	return fallback
}

// LoadSchema reads a YAML column-override file. An empty path returns
// the zero schema, which resolves every field to its default column.
func LoadSchema(path string) (Schema, error) {
	if path == "" {
		return Schema{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, eris.Wrap(err, "source: read schema file")
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, eris.Wrap(err, "source: parse schema file")
	}
	return s, nil
}
