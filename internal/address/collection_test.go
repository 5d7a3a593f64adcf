package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecordsDropsFailures(t *testing.T) {
	good := baseAddress()
	addrs, dropped := FromRecords([]Record{good, brokenRecord{}, good})
	assert.Len(t, addrs, 2)
	assert.Equal(t, 1, dropped)
}

func TestFilterDuplicate(t *testing.T) {
	a := baseAddress()
	b := baseAddress()
	b.ObjectID = 2 // object id never participates in identity
	c := baseAddress()
	c.ObjectID = 3
	c.Number = 456

	dupes := Addresses{a, b, c}.Filter("duplicate")
	require.Len(t, dupes, 2)
	assert.Equal(t, int64(1), dupes[0].ObjectID)
	assert.Equal(t, int64(2), dupes[1].ObjectID)
}

func TestFilterStatus(t *testing.T) {
	current := baseAddress()
	retired := baseAddress()
	retired.ObjectID = 2
	retired.Status = StatusRetired
	set := Addresses{current, retired}

	assert.Len(t, set.Filter("current"), 1)
	assert.Len(t, set.Filter("retired"), 1)
	assert.Empty(t, set.Filter("unknown"))
}

func TestExcludeRetired(t *testing.T) {
	current := baseAddress()
	retired := baseAddress()
	retired.ObjectID = 2
	retired.Status = StatusRetired
	pending := baseAddress()
	pending.ObjectID = 3
	pending.Status = StatusPending

	kept := Addresses{current, retired, pending}.ExcludeRetired()
	require.Len(t, kept, 2)
	assert.Equal(t, int64(1), kept[0].ObjectID)
	assert.Equal(t, int64(3), kept[1].ObjectID)

	assert.Empty(t, Addresses{retired}.ExcludeRetired())
}

func TestFilterDuplicateAgreesWithCoincident(t *testing.T) {
	a := baseAddress()
	b := baseAddress()
	b.ObjectID = 2
	b.NumberSuffix = "A " // stray whitespace survives a raw export

	// Not coincident, so not duplicates either.
	assert.False(t, a.Coincident(b).Coincident)
	assert.Empty(t, Addresses{a, b}.Filter("duplicate"))
}

func TestOrphanStreets(t *testing.T) {
	onMain := baseAddress()
	onOak := baseAddress()
	onOak.StreetName = "OAK"
	onOak.PostType = PostTypeAvenue
	onElm := baseAddress()
	onElm.StreetName = "ELM"

	src := Addresses{onMain, onOak, onElm, onElm}
	tgt := Addresses{onMain}

	orphans := src.OrphanStreets(tgt)
	assert.Equal(t, []string{"ELM Street", "OAK Avenue"}, orphans)
}

func TestOrphanStreetsNoneMissing(t *testing.T) {
	a := baseAddress()
	assert.Empty(t, Addresses{a}.OrphanStreets(Addresses{a}))
}

func TestStandardize(t *testing.T) {
	a := baseAddress()
	a.StreetName = "ROGUE RIVER"
	a.PostalCommunity = "GRANTS PASS"
	a.State = "OREGON"

	std := Addresses{a}.Standardize()
	require.Len(t, std, 1)
	assert.Equal(t, "Rogue River", std[0].StreetName)
	assert.Equal(t, "Grants Pass", std[0].PostalCommunity)
	assert.Equal(t, "Oregon", std[0].State)

	// input unchanged
	assert.Equal(t, "ROGUE RIVER", a.StreetName)
}
