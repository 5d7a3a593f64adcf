package address

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Addresses is a converted dataset of canonical addresses.
type Addresses []Address

// FromRecords converts a slice of source records, dropping records
// that fail conversion. The second return value reports how many were
// dropped so callers can log the exclusion count.
func FromRecords(records []Record) (Addresses, int) {
	addrs := make(Addresses, 0, len(records))
	dropped := 0
	for _, rec := range records {
		a, err := rec.Canonical()
		if err != nil {
			dropped++
			continue
		}
		addrs = append(addrs, a)
	}
	return addrs, dropped
}

// Records adapts the collection back to the Record interface consumed
// by the classifier.
func (a Addresses) Records() []Record {
	records := make([]Record, len(a))
	for i := range a {
		records[i] = a[i]
	}
	return records
}

// Canonical implements Record; a canonical address converts to itself.
func (a Address) Canonical() (Address, error) { return a, nil }

// Filter selects addresses by a named predicate, preserving order:
// "duplicate" keeps records identity-coincident with at least one
// other record in the set, "current" and "retired" select by status.
func (a Addresses) Filter(pred string) Addresses {
	var out Addresses
	switch strings.ToLower(strings.TrimSpace(pred)) {
	case "duplicate":
		counts := make(map[string]int, len(a))
		for _, addr := range a {
			counts[addr.identityKey()]++
		}
		for _, addr := range a {
			if counts[addr.identityKey()] > 1 {
				out = append(out, addr)
			}
		}
	case "current":
		for _, addr := range a {
			if addr.Status == StatusCurrent {
				out = append(out, addr)
			}
		}
	case "retired":
		for _, addr := range a {
			if addr.Status == StatusRetired {
				out = append(out, addr)
			}
		}
	}
	return out
}

// ExcludeRetired keeps every address whose status is not Retired.
// Comparison runs exclude retired source records by default; they
// denote units that no longer exist and would all classify as Missing.
func (a Addresses) ExcludeRetired() Addresses {
	var out Addresses
	for _, addr := range a {
		if addr.Status != StatusRetired {
			out = append(out, addr)
		}
	}
	return out
}

// identityKey folds the nine identity fields into a map key, raw and
// untrimmed so it agrees with Coincident on every input. Used only for
// duplicate screening inside one dataset; cross-dataset comparison
// stays a field-by-field conjunction.
func (a Address) identityKey() string {
	var b strings.Builder
	for _, part := range []string{
		a.NumberSuffix,
		string(a.PreDirectional),
		a.StreetName,
		string(a.PostType),
		a.SubaddressID,
		a.PostalCommunity,
		a.State,
	} {
		b.WriteString(part)
		b.WriteByte('\x1f')
	}
	b.WriteString(strconv.FormatInt(a.Number, 10))
	b.WriteByte('\x1f')
	b.WriteString(strconv.FormatInt(a.ZIP, 10))
	return b.String()
}

// OrphanStreets returns the distinct street labels present in this
// dataset but absent from other, sorted alphabetically.
func (a Addresses) OrphanStreets(other Addresses) []string {
	known := make(map[string]bool, len(other))
	for _, addr := range other {
		known[addr.StreetLabel()] = true
	}
	seen := make(map[string]bool)
	var orphans []string
	for _, addr := range a {
		label := addr.StreetLabel()
		if known[label] || seen[label] {
			continue
		}
		seen[label] = true
		orphans = append(orphans, label)
	}
	sort.Strings(orphans)
	return orphans
}

var titleCaser = cases.Title(language.AmericanEnglish)

// Standardize returns a copy of the dataset with street names and
// postal communities folded to title case. County exports arrive in
// all caps while city exports are mixed; comparing across them needs
// one convention.
func (a Addresses) Standardize() Addresses {
	out := make(Addresses, len(a))
	for i, addr := range a {
		addr.StreetName = titleCaser.String(strings.ToLower(addr.StreetName))
		addr.PostalCommunity = titleCaser.String(strings.ToLower(addr.PostalCommunity))
		addr.State = titleCaser.String(strings.ToLower(addr.State))
		out[i] = addr
	}
	return out
}
