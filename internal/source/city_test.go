package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicgis/addrmatch/internal/address"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const cityCSV = `OID_,Add_Number,AddNum_Suf,St_PreDir,St_Name,St_PosTyp,Subaddress_Type,Subaddress_Identifier,Floor,Building,Post_Code,Post_Comm,State_Name,STATUS,NOTES,GlobalID,last_edited_user
1,123,A,,MAIN,Street,Apartment,4,,,97526,GRANTS PASS,OR,Current,,{abc},editor
2,500,,Northwest,HILLSIDE,Avenue,,,2,,97526,GRANTS PASS,OR,Retired,legacy row,{def},editor
3,77,,<Null>,ROGUE RIVER,Highway,,,0,<Null>,97527,GRANTS PASS,OR,Pending,,{ghi},editor
`

func TestLoadCity(t *testing.T) {
	records, err := LoadCity(writeTempCSV(t, cityCSV), Schema{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	first, err := records[0].Canonical()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ObjectID)
	assert.Equal(t, int64(123), first.Number)
	assert.Equal(t, "A", first.NumberSuffix)
	assert.Equal(t, address.PostTypeStreet, first.PostType)
	assert.Equal(t, address.SubaddressApartment, first.SubaddressType)
	assert.Equal(t, "4", first.SubaddressID)
	assert.Nil(t, first.Floor)
	assert.Equal(t, "123 A MAIN Street Apartment 4", first.Label())

	second, err := records[1].Canonical()
	require.NoError(t, err)
	assert.Equal(t, address.DirNorthwest, second.PreDirectional)
	require.NotNil(t, second.Floor)
	assert.Equal(t, int64(2), *second.Floor)
	assert.Equal(t, address.StatusRetired, second.Status)

	// <Null> placeholders and zero floors decode as absent.
	third, err := records[2].Canonical()
	require.NoError(t, err)
	assert.Equal(t, address.Directional(""), third.PreDirectional)
	assert.Nil(t, third.Floor)
	assert.Empty(t, third.Building)
}

func TestLoadCityUnknownPostTypeIsFatal(t *testing.T) {
	csv := `OID_,Add_Number,St_Name,St_PosTyp,Post_Code,Post_Comm,State_Name,STATUS
1,123,MAIN,Gardenway,97526,GRANTS PASS,OR,Current
`
	_, err := LoadCity(writeTempCSV(t, csv), Schema{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown post type")
}

func TestLoadCityMissingColumn(t *testing.T) {
	csv := `OID_,Add_Number,St_Name
1,123,MAIN
`
	_, err := LoadCity(writeTempCSV(t, csv), Schema{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestLoadCityEmptyFile(t *testing.T) {
	_, err := LoadCity(writeTempCSV(t, "OID_,Add_Number\n"), Schema{})
	require.Error(t, err)
}

func TestLoadCitySchemaOverride(t *testing.T) {
	csv := `ObjectID,HouseNum,St_Name,St_PosTyp,Post_Code,Post_Comm,State_Name,STATUS
9,42,PINE,Lane,97526,GRANTS PASS,OR,Current
`
	schema := Schema{Columns: map[string]string{
		"object_id": "ObjectID",
		"number":    "HouseNum",
	}}
	records, err := LoadCity(writeTempCSV(t, csv), schema)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(9), records[0].ObjectID)
	assert.Equal(t, int64(42), records[0].Number)
}
