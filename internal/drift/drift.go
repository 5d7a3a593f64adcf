// Package drift measures coordinate movement between two vintages of
// the same address dataset. Addresses are paired by identity
// coincidence; the planar offset between their points is the drift.
package drift

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"github.com/civicgis/addrmatch/internal/source"
)

// Delta is the recorded movement of one address between datasets.
// Coordinates are in the projection of the source data, so dx, dy, and
// distance share its linear unit.
type Delta struct {
	Label    string
	SelfID   int64
	OtherID  int64
	DeltaX   float64
	DeltaY   float64
	Distance float64
}

// Deltas pairs every source address with its identity-coincident
// counterpart in target and keeps pairs that moved at least min units.
// Addresses with no coincident counterpart contribute nothing; missing
// records are the compare command's concern, not drift's.
func Deltas(src, tgt []source.GeoAddress, min float64) []Delta {
	var deltas []Delta
	for _, s := range src {
		for _, t := range tgt {
			if !s.Coincident(t.Address).Coincident {
				continue
			}
			from := geom.Coord{s.X, s.Y}
			to := geom.Coord{t.X, t.Y}
			dist := xy.Distance(from, to)
			if dist < min {
				continue
			}
			deltas = append(deltas, Delta{
				Label:    s.Label(),
				SelfID:   s.ObjectID,
				OtherID:  t.ObjectID,
				DeltaX:   t.X - s.X,
				DeltaY:   t.Y - s.Y,
				Distance: dist,
			})
		}
	}
	return deltas
}

// WriteCSV writes drift rows for review.
func WriteCSV(deltas []Delta, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "drift: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"address_label", "self_id", "other_id", "delta_x", "delta_y", "distance"}
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "drift: write header")
	}
	for _, d := range deltas {
		row := []string{
			d.Label,
			strconv.FormatInt(d.SelfID, 10),
			strconv.FormatInt(d.OtherID, 10),
			strconv.FormatFloat(d.DeltaX, 'f', -1, 64),
			strconv.FormatFloat(d.DeltaY, 'f', -1, 64),
			strconv.FormatFloat(d.Distance, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "drift: write row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "drift: flush csv")
}
