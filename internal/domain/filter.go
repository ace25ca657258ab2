package domain

// Filter returns every record whose Year equals year and whose
// FieldMagnitudeAvg is at or below maxMagnitude, preserving dataset order.
// NaN magnitudes never satisfy the bound. The function is pure: repeated
// calls with the same arguments over the same dataset return equal results,
// and concurrent calls are safe because the dataset is never mutated.
func Filter(d Dataset, year int, maxMagnitude float64) []Record {
	var out []Record
	for _, r := range d.Records {
		if r.Year != year {
			continue
		}
		if !(r.FieldMagnitudeAvg <= maxMagnitude) {
			continue
		}
		out = append(out, r)
	}
	return out
}
