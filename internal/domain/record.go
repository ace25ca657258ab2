package domain

import (
	"math"
	"time"
)

// Record is one OMNI time sample. DateTime is derived from the four time
// components; the zero time means the composition failed for this row.
type Record struct {
	Year   int `json:"year"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`

	FieldMagnitudeAvg float64 `json:"field_magnitude_avg"`
	BX                float64 `json:"bx"`
	BY                float64 `json:"by"`
	BZ                float64 `json:"bz"`
	Speed             float64 `json:"speed"`
	ProtonDensity     float64 `json:"proton_density"`
	ProtonTemperature float64 `json:"proton_temperature"`
	ElectricField     float64 `json:"electric_field"`
	PlasmaBeta        float64 `json:"plasma_beta"`
	AlfvenMachNumber  float64 `json:"alfven_mach_number"`
	AEIndex           float64 `json:"ae_index"`
	ALIndex           float64 `json:"al_index"`
	AUIndex           float64 `json:"au_index"`
	SYMD              float64 `json:"sym_d"`
	SYMH              float64 `json:"sym_h"`

	DateTime time.Time `json:"date_time"`
}

// Dataset is the immutable snapshot built once at startup. All interactive
// handlers filter over this value; nothing mutates it after Parse returns.
type Dataset struct {
	Records    []Record
	SourcePath string
	LoadedAt   time.Time
}

// Len returns the number of records in the dataset.
func (d Dataset) Len() int { return len(d.Records) }

// Empty reports whether the dataset holds no records.
func (d Dataset) Empty() bool { return len(d.Records) == 0 }

// Years returns the distinct years present in the dataset in ascending order.
// Year 0 (rows whose time components failed to decode) is excluded.
func (d Dataset) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range d.Records {
		if r.Year == 0 || seen[r.Year] {
			continue
		}
		seen[r.Year] = true
		years = append(years, r.Year)
	}
	// Insertion sort; the distinct-year count is tiny.
	for i := 1; i < len(years); i++ {
		for j := i; j > 0 && years[j] < years[j-1]; j-- {
			years[j], years[j-1] = years[j-1], years[j]
		}
	}
	return years
}

// MinYear returns the smallest year in the dataset, or 0 when no row carries
// a decodable year. The dashboard uses it as the default year selection.
func (d Dataset) MinYear() int {
	years := d.Years()
	if len(years) == 0 {
		return 0
	}
	return years[0]
}

// MagnitudeRange returns the (min, max) of FieldMagnitudeAvg across the
// dataset, skipping NaN values. Returns (0, 0) when no finite value exists.
func (d Dataset) MagnitudeRange() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for _, r := range d.Records {
		v := r.FieldMagnitudeAvg
		if math.IsNaN(v) {
			continue
		}
		found = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if !found {
		return 0, 0
	}
	return lo, hi
}

// MagnitudeMean returns the NaN-skipping mean of FieldMagnitudeAvg, or 0 when
// no finite value exists. The dashboard uses it as the default slider value.
func (d Dataset) MagnitudeMean() float64 {
	var sum float64
	var n int
	for _, r := range d.Records {
		if math.IsNaN(r.FieldMagnitudeAvg) {
			continue
		}
		sum += r.FieldMagnitudeAvg
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// NullTimestamps returns the number of rows whose DateTime composition failed.
func (d Dataset) NullTimestamps() int {
	var n int
	for _, r := range d.Records {
		if r.DateTime.IsZero() {
			n++
		}
	}
	return n
}
