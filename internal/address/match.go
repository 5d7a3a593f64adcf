package address

import (
	"strings"

	"golang.org/x/sync/errgroup"
)

// Record is any source-specific address record that can fallibly
// convert itself to the canonical model. The classifier depends only
// on this interface, never on concrete source schemas.
type Record interface {
	// Canonical returns the canonical form of the record, or an error
	// when a mandatory field (notably the street name post type) is
	// absent from the source.
	Canonical() (Address, error)
}

// MatchStatus classifies one source address against a candidate set.
type MatchStatus string

const (
	StatusMatching  MatchStatus = "Matching"
	StatusDivergent MatchStatus = "Divergent"
	StatusMissing   MatchStatus = "Missing"
)

// MatchRecord is one row of classification output. The four secondary
// columns hold rendered mismatch messages and are empty unless that
// field diverged on a coincident candidate.
type MatchRecord struct {
	Status         MatchStatus
	AddressLabel   string
	SelfID         int64
	OtherID        *int64 // nil for Missing records
	SubaddressType string
	Floor          string
	Building       string
	AddressStatus  string
}

// Classify compares one canonical source address against every
// candidate. Candidates failing conversion are silently skipped;
// non-coincident candidates produce no record. Each coincident
// candidate yields one Matching or Divergent record; when none is
// coincident the result is exactly one Missing record. The result is
// never empty and never mixes Missing with another status.
func Classify(src Address, candidates []Record) []MatchRecord {
	label := src.Label()

	var records []MatchRecord
	for _, candidate := range candidates {
		other, err := candidate.Canonical()
		if err != nil {
			continue
		}
		match := src.Coincident(other)
		if !match.Coincident {
			continue
		}
		otherID := other.ObjectID
		rec := MatchRecord{
			Status:       StatusMatching,
			AddressLabel: label,
			SelfID:       src.ObjectID,
			OtherID:      &otherID,
		}
		if len(match.Mismatches) > 0 {
			rec.Status = StatusDivergent
			for _, m := range match.Mismatches {
				switch m.Field {
				case FieldSubaddressType:
					rec.SubaddressType = m.Message
				case FieldFloor:
					rec.Floor = m.Message
				case FieldBuilding:
					rec.Building = m.Message
				case FieldStatus:
					rec.AddressStatus = m.Message
				}
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		records = append(records, MatchRecord{
			Status:       StatusMissing,
			AddressLabel: label,
			SelfID:       src.ObjectID,
		})
	}
	return records
}

// MatchRecords is the ordered classification output for one dataset
// pass: one source dataset compared against one candidate dataset.
type MatchRecords struct {
	Records []MatchRecord
}

// Compare classifies every source record against the full candidate
// list. Source records failing conversion are excluded from the pass.
// With workers > 1 the source list is partitioned across goroutines;
// per-index result slots keep the output order identical to the
// sequential pass. Candidates are shared immutably, so no locking is
// needed beyond the join.
func Compare(sources, targets []Record, workers int) MatchRecords {
	converted := make([]*Address, len(sources))
	for i, src := range sources {
		if a, err := src.Canonical(); err == nil {
			converted[i] = &a
		}
	}

	slots := make([][]MatchRecord, len(sources))
	if workers <= 1 {
		for i, a := range converted {
			if a != nil {
				slots[i] = Classify(*a, targets)
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, a := range converted {
			if a == nil {
				continue
			}
			i, a := i, a
			g.Go(func() error {
				slots[i] = Classify(*a, targets)
				return nil
			})
		}
		_ = g.Wait() // classification never errors
	}

	var records []MatchRecord
	for _, slot := range slots {
		records = append(records, slot...)
	}
	return MatchRecords{Records: records}
}

// Filter returns the records whose status matches the given name
// ("matching", "divergent", "missing"), preserving relative order.
// Unknown names select nothing.
func (m MatchRecords) Filter(status string) MatchRecords {
	want := MatchStatus("")
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "matching":
		want = StatusMatching
	case "divergent":
		want = StatusDivergent
	case "missing":
		want = StatusMissing
	}

	var filtered []MatchRecord
	for _, rec := range m.Records {
		if rec.Status == want {
			filtered = append(filtered, rec)
		}
	}
	return MatchRecords{Records: filtered}
}

// Len returns the number of records in the set.
func (m MatchRecords) Len() int { return len(m.Records) }

// IsEmpty reports whether the set holds no records.
func (m MatchRecords) IsEmpty() bool { return len(m.Records) == 0 }
