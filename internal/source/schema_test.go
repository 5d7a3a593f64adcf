package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSchemaEmptyPath(t *testing.T) {
	s, err := LoadSchema("")
	require.NoError(t, err)
	assert.Equal(t, "OID_", s.column("object_id", "OID_"))
}

func TestLoadSchemaOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	content := `columns:
  object_id: FID
  street_name: STREETNAME
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "FID", s.column("object_id", "OID_"))
	assert.Equal(t, "STREETNAME", s.column("street_name", "name"))
	// unmapped fields keep their defaults
	assert.Equal(t, "zip", s.column("zip", "zip"))
}

func TestLoadSchemaBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [not a map"), 0o644))

	_, err := LoadSchema(path)
	require.Error(t, err)
}

func TestLoadSchemaMissingFile(t *testing.T) {
	_, err := LoadSchema(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
