// Package render maps filtered records onto the structures the browser-side
// plotting collaborator consumes: a 3D point cloud plus a Plotly scatter3d
// figure. The package never filters or reorders — output length and order
// always match the input.
package render

import (
	"math"

	"github.com/couchcryptid/omni-storm-viz/internal/domain"
)

// UnknownTimeLabel is the hover text for rows whose timestamp did not compose.
const UnknownTimeLabel = "unknown time"

// timeLabelFormat matches the original dashboard's hover annotation format.
const timeLabelFormat = "2006-01-02 15:04"

// PointCloud is the geometric form of a filtered record set: one point per
// record in input order, colored by field-magnitude average.
type PointCloud struct {
	X     []float64
	Y     []float64
	Z     []float64
	Color []float64
	Text  []string

	// Color domain over the whole filtered set, NaN values excluded. Both are
	// zero when no finite magnitude exists.
	ColorMin float64
	ColorMax float64
}

// Len returns the number of points.
func (pc PointCloud) Len() int { return len(pc.X) }

// ToPointCloud converts records into a point cloud. Every input record
// produces exactly one point; records with a zero DateTime get the
// UnknownTimeLabel hover text instead of a formatted timestamp.
func ToPointCloud(records []domain.Record) PointCloud {
	pc := PointCloud{
		X:     make([]float64, len(records)),
		Y:     make([]float64, len(records)),
		Z:     make([]float64, len(records)),
		Color: make([]float64, len(records)),
		Text:  make([]string, len(records)),
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for i, r := range records {
		pc.X[i] = r.BX
		pc.Y[i] = r.BY
		pc.Z[i] = r.BZ
		pc.Color[i] = r.FieldMagnitudeAvg

		if r.DateTime.IsZero() {
			pc.Text[i] = UnknownTimeLabel
		} else {
			pc.Text[i] = r.DateTime.Format(timeLabelFormat)
		}

		if v := r.FieldMagnitudeAvg; !math.IsNaN(v) {
			found = true
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if found {
		pc.ColorMin, pc.ColorMax = lo, hi
	}
	return pc
}
