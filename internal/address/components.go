// Package address holds the canonical civic address model and the
// matching engine: coincidence comparison, mismatch accounting, and
// record classification across whole datasets.
package address

import "strings"

// Directional is a street name pre-directional. The zero value means
// the address has no directional; it never equals a real variant.
type Directional string

const (
	DirNorth     Directional = "North"
	DirNortheast Directional = "Northeast"
	DirEast      Directional = "East"
	DirSoutheast Directional = "Southeast"
	DirSouth     Directional = "South"
	DirSouthwest Directional = "Southwest"
	DirWest      Directional = "West"
	DirNorthwest Directional = "Northwest"
)

var directionals = map[string]Directional{
	"NORTH": DirNorth, "N": DirNorth,
	"NORTHEAST": DirNortheast, "NE": DirNortheast,
	"EAST": DirEast, "E": DirEast,
	"SOUTHEAST": DirSoutheast, "SE": DirSoutheast,
	"SOUTH": DirSouth, "S": DirSouth,
	"SOUTHWEST": DirSouthwest, "SW": DirSouthwest,
	"WEST": DirWest, "W": DirWest,
	"NORTHWEST": DirNorthwest, "NW": DirNorthwest,
}

// ParseDirectional decodes a full or abbreviated pre-directional.
// Unknown inputs return false.
func ParseDirectional(s string) (Directional, bool) {
	d, ok := directionals[normalize(s)]
	return d, ok
}

// PostType is a street name post type (Street, Avenue, ...). Mandatory
// on every canonical address.
type PostType string

const (
	PostTypeStreet    PostType = "Street"
	PostTypeAvenue    PostType = "Avenue"
	PostTypeCourt     PostType = "Court"
	PostTypeDrive     PostType = "Drive"
	PostTypeLane      PostType = "Lane"
	PostTypeRoad      PostType = "Road"
	PostTypeBoulevard PostType = "Boulevard"
	PostTypeCircle    PostType = "Circle"
	PostTypeLoop      PostType = "Loop"
	PostTypePlace     PostType = "Place"
	PostTypeTerrace   PostType = "Terrace"
	PostTypeWay       PostType = "Way"
	PostTypeHighway   PostType = "Highway"
	PostTypePark      PostType = "Park"
	PostTypeAlley     PostType = "Alley"
)

var postTypes = map[string]PostType{
	"STREET": PostTypeStreet, "ST": PostTypeStreet,
	"AVENUE": PostTypeAvenue, "AVE": PostTypeAvenue, "AV": PostTypeAvenue,
	"COURT": PostTypeCourt, "CT": PostTypeCourt,
	"DRIVE": PostTypeDrive, "DR": PostTypeDrive,
	"LANE": PostTypeLane, "LN": PostTypeLane,
	"ROAD": PostTypeRoad, "RD": PostTypeRoad,
	"BOULEVARD": PostTypeBoulevard, "BLVD": PostTypeBoulevard,
	"CIRCLE": PostTypeCircle, "CIR": PostTypeCircle,
	"LOOP": PostTypeLoop,
	"PLACE": PostTypePlace, "PL": PostTypePlace,
	"TERRACE": PostTypeTerrace, "TER": PostTypeTerrace,
	"WAY": PostTypeWay,
	"HIGHWAY": PostTypeHighway, "HWY": PostTypeHighway,
	"PARK": PostTypePark,
	"ALLEY": PostTypeAlley, "ALY": PostTypeAlley,
}

// ParsePostType decodes a full or abbreviated street name post type.
func ParsePostType(s string) (PostType, bool) {
	p, ok := postTypes[normalize(s)]
	return p, ok
}

// SubaddressType identifies the kind of subaddress (Apartment, Suite,
// ...). Zero value means no subaddress type.
type SubaddressType string

const (
	SubaddressApartment SubaddressType = "Apartment"
	SubaddressBuilding  SubaddressType = "Building"
	SubaddressFloor     SubaddressType = "Floor"
	SubaddressOffice    SubaddressType = "Office"
	SubaddressRoom      SubaddressType = "Room"
	SubaddressSuite     SubaddressType = "Suite"
	SubaddressTrailer   SubaddressType = "Trailer"
	SubaddressUnit      SubaddressType = "Unit"
)

var subaddressTypes = map[string]SubaddressType{
	"APARTMENT": SubaddressApartment, "APT": SubaddressApartment,
	"BUILDING": SubaddressBuilding, "BLDG": SubaddressBuilding,
	"FLOOR": SubaddressFloor, "FL": SubaddressFloor,
	"OFFICE": SubaddressOffice, "OFC": SubaddressOffice,
	"ROOM": SubaddressRoom, "RM": SubaddressRoom,
	"SUITE": SubaddressSuite, "STE": SubaddressSuite,
	"TRAILER": SubaddressTrailer, "TRLR": SubaddressTrailer,
	"UNIT": SubaddressUnit,
}

// ParseSubaddressType decodes a full or abbreviated subaddress type.
func ParseSubaddressType(s string) (SubaddressType, bool) {
	t, ok := subaddressTypes[normalize(s)]
	return t, ok
}

// Status is the lifecycle state of an address record.
type Status string

const (
	StatusCurrent   Status = "Current"
	StatusPending   Status = "Pending"
	StatusRetired   Status = "Retired"
	StatusTemporary Status = "Temporary"
	StatusVirtual   Status = "Virtual"
)

var statuses = map[string]Status{
	"CURRENT":   StatusCurrent,
	"ACTIVE":    StatusCurrent, // county exports say "active"
	"PENDING":   StatusPending,
	"RETIRED":   StatusRetired,
	"TEMPORARY": StatusTemporary,
	"VIRTUAL":   StatusVirtual,
}

// ParseStatus decodes an address status value.
func ParseStatus(s string) (Status, bool) {
	st, ok := statuses[normalize(s)]
	return st, ok
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
