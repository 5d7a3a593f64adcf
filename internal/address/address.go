package address

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is the canonical, source-agnostic representation of one
// civic address record. Identity fields (number through State) decide
// whether two records denote the same physical unit; secondary fields
// (SubaddressType, Floor, Building, Status) are compared only after an
// identity match and their divergence is reported, never disqualifying.
// Addresses are immutable once built; comparisons never mutate.
type Address struct {
	Number          int64
	NumberSuffix    string // empty = absent
	PreDirectional  Directional
	StreetName      string
	PostType        PostType
	SubaddressID    string // empty = absent
	ZIP             int64
	PostalCommunity string
	State           string

	SubaddressType SubaddressType
	Floor          *int64 // nil = absent; 0 is never a real floor in source data
	Building       string // empty = absent
	Status         Status

	// ObjectID is the per-source record identifier. Reporting only,
	// never part of equality.
	ObjectID int64
}

// MismatchField names the secondary attribute a Mismatch refers to.
type MismatchField string

const (
	FieldSubaddressType MismatchField = "subaddress_type"
	FieldFloor          MismatchField = "floor"
	FieldBuilding       MismatchField = "building"
	FieldStatus         MismatchField = "status"
)

// Mismatch records disagreement between two coincident addresses on
// exactly one secondary attribute. The message carries both values,
// rendered descriptively for reporting.
type Mismatch struct {
	Field   MismatchField
	Message string
}

func newMismatch(field MismatchField, from, to string) Mismatch {
	return Mismatch{Field: field, Message: fmt.Sprintf("%s not equal to %s", from, to)}
}

// Match is the outcome of one pairwise comparison.
type Match struct {
	Coincident bool
	Mismatches []Mismatch
}

// Coincident reports whether a and other denote the same physical
// unit, and if so, which secondary fields disagree. All nine identity
// fields must be equal (absent compares equal to absent). Secondary
// fields are only examined for coincident pairs, and all four are
// always checked.
func (a Address) Coincident(other Address) Match {
	same := a.Number == other.Number &&
		a.NumberSuffix == other.NumberSuffix &&
		a.PreDirectional == other.PreDirectional &&
		a.StreetName == other.StreetName &&
		a.PostType == other.PostType &&
		a.SubaddressID == other.SubaddressID &&
		a.ZIP == other.ZIP &&
		a.PostalCommunity == other.PostalCommunity &&
		a.State == other.State
	if !same {
		return Match{}
	}

	var mismatches []Mismatch
	if a.SubaddressType != other.SubaddressType {
		mismatches = append(mismatches, newMismatch(FieldSubaddressType,
			renderSubaddressType(a.SubaddressType), renderSubaddressType(other.SubaddressType)))
	}
	if !floorsEqual(a.Floor, other.Floor) {
		mismatches = append(mismatches, newMismatch(FieldFloor,
			renderFloor(a.Floor), renderFloor(other.Floor)))
	}
	if a.Building != other.Building {
		mismatches = append(mismatches, newMismatch(FieldBuilding,
			renderString(a.Building), renderString(other.Building)))
	}
	if a.Status != other.Status {
		mismatches = append(mismatches, newMismatch(FieldStatus,
			string(a.Status), string(other.Status)))
	}
	return Match{Coincident: true, Mismatches: mismatches}
}

func floorsEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func renderFloor(f *int64) string {
	if f == nil {
		return "none"
	}
	return strconv.FormatInt(*f, 10)
}

func renderSubaddressType(t SubaddressType) string {
	if t == "" {
		return "none"
	}
	return string(t)
}

func renderString(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// Label reconstructs a human-readable address string from the
// structured fields. Composition: complete number, then directional +
// street name + post type, then the subaddress segment. An identifier
// with no known type is prefixed with "#"; a type with no identifier
// renders alone; the segment is omitted when both are absent.
func (a Address) Label() string {
	number := strconv.FormatInt(a.Number, 10)
	if a.NumberSuffix != "" {
		number += " " + a.NumberSuffix
	}

	street := a.StreetName + " " + string(a.PostType)
	if a.PreDirectional != "" {
		street = string(a.PreDirectional) + " " + street
	}

	var subaddress string
	switch {
	case a.SubaddressID != "" && a.SubaddressType != "":
		subaddress = string(a.SubaddressType) + " " + a.SubaddressID
	case a.SubaddressID != "":
		subaddress = "#" + a.SubaddressID
	case a.SubaddressType != "":
		subaddress = string(a.SubaddressType)
	}

	parts := []string{number, street}
	if subaddress != "" {
		parts = append(parts, subaddress)
	}
	return strings.Join(parts, " ")
}

// StreetLabel renders the directional + name + post type portion only.
// Used for orphan street reporting.
func (a Address) StreetLabel() string {
	street := a.StreetName + " " + string(a.PostType)
	if a.PreDirectional != "" {
		street = string(a.PreDirectional) + " " + street
	}
	return street
}
